// Package loader reads and writes the CSV dataset layout: interactions.csv,
// members.csv, and tasks.csv under a data directory. Reading performs the
// cleaning pass the analysis engine assumes: malformed records are dropped,
// blank targets become broadcasts, and interactions come back sorted by
// timestamp.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/teampulse/teampulse/schema"
)

// Dataset file names inside the data directory.
const (
	InteractionsFile = "interactions.csv"
	MembersFile      = "members.csv"
	TasksFile        = "tasks.csv"
)

// LoadDataset reads all three tables from dataDir. An unreadable members or
// interactions file, or an empty member table, is a hard error; a missing
// tasks file yields an empty task table.
func LoadDataset(dataDir string) (*schema.Dataset, error) {
	members, err := LoadMembers(filepath.Join(dataDir, MembersFile))
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("member table in %s is empty", dataDir)
	}

	interactions, err := LoadInteractions(filepath.Join(dataDir, InteractionsFile))
	if err != nil {
		return nil, err
	}

	tasks, err := LoadTasks(filepath.Join(dataDir, TasksFile))
	if err != nil {
		if os.IsNotExist(err) {
			tasks = nil
		} else {
			return nil, err
		}
	}

	return &schema.Dataset{
		Members:      members,
		Interactions: interactions,
		Tasks:        tasks,
	}, nil
}

// header maps column names to their positions in the CSV header row.
type header map[string]int

func readHeader(record []string) header {
	h := make(header, len(record))
	for i, name := range record {
		h[name] = i
	}
	return h
}

// field returns the named column value, or the empty string if the column is
// absent or the row is short.
func (h header) field(record []string, name string) string {
	idx, ok := h[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// parseTime accepts the timestamp layouts the generator and external tools
// produce.
func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func openCSV(path string) (*os.File, *csv.Reader, header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	headerRec, err := r.Read()
	if err != nil {
		_ = f.Close()
		if err == io.EOF {
			return nil, nil, nil, fmt.Errorf("%s is empty", path)
		}
		return nil, nil, nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	return f, r, readHeader(headerRec), nil
}

// LoadInteractions reads and cleans the interaction log. Rows with an
// unparseable timestamp, a missing source, or a non-positive weight are
// dropped. The result is sorted chronologically.
func LoadInteractions(path string) ([]schema.Interaction, error) {
	f, r, h, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var out []schema.Interaction
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		ts, err := parseTime(h.field(record, "timestamp"))
		if err != nil {
			continue
		}
		source := h.field(record, "source")
		if source == "" {
			continue
		}
		weight, err := strconv.ParseFloat(h.field(record, "weight"), 64)
		if err != nil || weight <= 0 {
			continue
		}

		var target *string
		if t := h.field(record, "target"); t != "" {
			target = &t
		}

		out = append(out, schema.Interaction{
			Timestamp: ts,
			Source:    source,
			Target:    target,
			Type:      schema.InteractionType(h.field(record, "interaction_type")),
			Platform:  h.field(record, "platform"),
			Weight:    weight,
			Content:   h.field(record, "content"),
		})
	}

	sortInteractions(out)
	return out, nil
}

// LoadMembers reads the member table. Rows without a member_id are dropped;
// an unparseable joined_at is zeroed rather than fatal.
func LoadMembers(path string) ([]schema.Member, error) {
	f, r, h, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var out []schema.Member
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		id := h.field(record, "member_id")
		if id == "" {
			continue
		}

		m := schema.Member{
			MemberID: id,
			Name:     h.field(record, "name"),
			Role:     schema.Role(h.field(record, "role")),
		}
		if t, err := parseTime(h.field(record, "joined_at")); err == nil {
			m.JoinedAt = t
		}
		if v, err := strconv.ParseFloat(h.field(record, "estimated_contribution"), 64); err == nil {
			m.EstimatedContribution = v
		}

		out = append(out, m)
	}
	return out, nil
}

// LoadTasks reads the task table. Rows without a task_id or with an
// unparseable assigned_at are dropped.
func LoadTasks(path string) ([]schema.Task, error) {
	f, r, h, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var out []schema.Task
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		id := h.field(record, "task_id")
		if id == "" {
			continue
		}
		assignedAt, err := parseTime(h.field(record, "assigned_at"))
		if err != nil {
			continue
		}

		t := schema.Task{
			TaskID:      id,
			AssignedBy:  h.field(record, "assigned_by"),
			AssignedTo:  h.field(record, "assigned_to"),
			AssignedAt:  assignedAt,
			Status:      schema.TaskStatus(h.field(record, "status")),
			CompletedBy: h.field(record, "completed_by"),
		}
		if d, err := parseTime(h.field(record, "due_date")); err == nil {
			t.DueDate = d
		}
		if c, err := parseTime(h.field(record, "completed_at")); err == nil {
			t.CompletedAt = &c
		}

		out = append(out, t)
	}
	return out, nil
}

func sortInteractions(log []schema.Interaction) {
	// Stable so same-timestamp events keep file order.
	sort.SliceStable(log, func(i, j int) bool {
		return log[i].Timestamp.Before(log[j].Timestamp)
	})
}
