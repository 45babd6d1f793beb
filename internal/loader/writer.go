package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/teampulse/teampulse/schema"
)

// WriteDataset writes all three tables to dataDir, creating it if needed.
// The column layout matches what LoadDataset reads back.
func WriteDataset(dataDir, teamID string, ds *schema.Dataset) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	if err := writeInteractions(filepath.Join(dataDir, InteractionsFile), teamID, ds.Interactions); err != nil {
		return err
	}
	if err := writeMembers(filepath.Join(dataDir, MembersFile), teamID, ds.Members); err != nil {
		return err
	}
	return writeTasks(filepath.Join(dataDir, TasksFile), teamID, ds.Tasks)
}

func writeCSVFile(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeInteractions(path, teamID string, log []schema.Interaction) error {
	rows := make([][]string, 0, len(log)+1)
	rows = append(rows, []string{"timestamp", "team_id", "source", "target", "interaction_type", "platform", "weight", "content"})
	for _, ia := range log {
		rows = append(rows, []string{
			ia.Timestamp.Format(time.RFC3339),
			teamID,
			ia.Source,
			ia.TargetID(),
			string(ia.Type),
			ia.Platform,
			strconv.FormatFloat(ia.Weight, 'f', -1, 64),
			ia.Content,
		})
	}
	return writeCSVFile(path, rows)
}

func writeMembers(path, teamID string, members []schema.Member) error {
	rows := make([][]string, 0, len(members)+1)
	rows = append(rows, []string{"member_id", "team_id", "name", "role", "joined_at", "estimated_contribution"})
	for _, m := range members {
		rows = append(rows, []string{
			m.MemberID,
			teamID,
			m.Name,
			string(m.Role),
			m.JoinedAt.Format(time.RFC3339),
			strconv.FormatFloat(m.EstimatedContribution, 'f', -1, 64),
		})
	}
	return writeCSVFile(path, rows)
}

func writeTasks(path, teamID string, tasks []schema.Task) error {
	rows := make([][]string, 0, len(tasks)+1)
	rows = append(rows, []string{"task_id", "team_id", "assigned_by", "assigned_to", "assigned_at", "due_date", "status", "completed_by", "completed_at"})
	for _, t := range tasks {
		completedAt := ""
		if t.CompletedAt != nil {
			completedAt = t.CompletedAt.Format(time.RFC3339)
		}
		rows = append(rows, []string{
			t.TaskID,
			teamID,
			t.AssignedBy,
			t.AssignedTo,
			t.AssignedAt.Format(time.RFC3339),
			t.DueDate.Format(time.RFC3339),
			string(t.Status),
			t.CompletedBy,
			completedAt,
		})
	}
	return writeCSVFile(path, rows)
}
