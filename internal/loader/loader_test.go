package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse/schema"
)

// writeFile drops CSV content into dir under name.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// TestLoadInteractionsCleaning verifies the cleaning rules: malformed rows
// are dropped silently and survivors come back sorted by timestamp.
func TestLoadInteractionsCleaning(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, InteractionsFile,
		"timestamp,team_id,source,target,interaction_type,platform,weight,content\n"+
			"2025-06-02T10:00:00Z,T01,M002,M001,reply,slack,1.5,later\n"+
			"2025-06-01T09:00:00Z,T01,M001,M002,message,slack,1.0,first\n"+
			"not-a-timestamp,T01,M001,M002,message,slack,1.0,dropped\n"+
			"2025-06-01T11:00:00Z,T01,,M002,message,slack,1.0,dropped\n"+
			"2025-06-01T12:00:00Z,T01,M001,M002,message,slack,-3,dropped\n"+
			"2025-06-01T13:00:00Z,T01,M001,M002,message,slack,abc,dropped\n"+
			"2025-06-01T14:00:00Z,T01,M003,,message,slack,2.0,broadcast\n")

	log, err := LoadInteractions(filepath.Join(dir, InteractionsFile))
	require.NoError(t, err)
	require.Len(t, log, 3)

	t.Run("sorted chronologically", func(t *testing.T) {
		assert.Equal(t, "M001", log[0].Source)
		assert.Equal(t, "M003", log[1].Source)
		assert.Equal(t, "M002", log[2].Source)
	})

	t.Run("blank target becomes broadcast", func(t *testing.T) {
		assert.False(t, log[1].HasTarget())
		assert.True(t, log[0].HasTarget())
		assert.Equal(t, "M002", log[0].TargetID())
	})

	t.Run("fields survive the round trip", func(t *testing.T) {
		assert.Equal(t, schema.TypeMessage, log[0].Type)
		assert.Equal(t, "slack", log[0].Platform)
		assert.InDelta(t, 1.0, log[0].Weight, 1e-9)
		assert.Equal(t, "first", log[0].Content)
	})
}

// TestLoadMembers tests member table parsing.
func TestLoadMembers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, MembersFile,
		"member_id,team_id,name,role,joined_at,estimated_contribution\n"+
			"M001,T01,Alex Patel,leader,2025-05-01T00:00:00Z,12.5\n"+
			",T01,No Id,regular,2025-05-01T00:00:00Z,1\n"+
			"M002,T01,Sam Singh,active,garbage-date,3.25\n")

	members, err := LoadMembers(filepath.Join(dir, MembersFile))
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.Equal(t, "M001", members[0].MemberID)
	assert.Equal(t, schema.RoleLeader, members[0].Role)
	assert.InDelta(t, 12.5, members[0].EstimatedContribution, 1e-9)

	// Bad joined_at zeroes the field instead of dropping the member.
	assert.Equal(t, "M002", members[1].MemberID)
	assert.True(t, members[1].JoinedAt.IsZero())
}

// TestLoadTasks tests task table parsing.
func TestLoadTasks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TasksFile,
		"task_id,team_id,assigned_by,assigned_to,assigned_at,due_date,status,completed_by,completed_at\n"+
			"TASK-1,T01,M001,M002,2025-06-01T09:00:00Z,2025-06-03T09:00:00Z,completed,M002,2025-06-02T09:00:00Z\n"+
			"TASK-2,T01,M001,M003,2025-06-01T10:00:00Z,2025-06-05T10:00:00Z,assigned,,\n"+
			",T01,M001,M003,2025-06-01T10:00:00Z,,assigned,,\n"+
			"TASK-3,T01,M001,M003,bad-date,,assigned,,\n")

	tasks, err := LoadTasks(filepath.Join(dir, TasksFile))
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, schema.TaskCompleted, tasks[0].Status)
	assert.Equal(t, "M002", tasks[0].CompletedBy)
	require.NotNil(t, tasks[0].CompletedAt)

	assert.Equal(t, schema.TaskAssigned, tasks[1].Status)
	assert.Nil(t, tasks[1].CompletedAt)
}

// TestLoadDataset tests the top-level loading rules.
func TestLoadDataset(t *testing.T) {
	t.Run("empty member table is an error", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, MembersFile, "member_id,team_id,name,role,joined_at,estimated_contribution\n")
		writeFile(t, dir, InteractionsFile, "timestamp,team_id,source,target,interaction_type,platform,weight,content\n")

		_, err := LoadDataset(dir)
		assert.ErrorContains(t, err, "empty")
	})

	t.Run("missing tasks file is tolerated", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, MembersFile,
			"member_id,team_id,name,role,joined_at,estimated_contribution\nM001,T01,Alex,leader,2025-05-01T00:00:00Z,0\n")
		writeFile(t, dir, InteractionsFile,
			"timestamp,team_id,source,target,interaction_type,platform,weight,content\n")

		ds, err := LoadDataset(dir)
		require.NoError(t, err)
		assert.Empty(t, ds.Tasks)
		assert.Len(t, ds.Members, 1)
	})

	t.Run("missing members file is an error", func(t *testing.T) {
		_, err := LoadDataset(t.TempDir())
		assert.Error(t, err)
	})
}

// TestWriteAndLoadRoundTrip verifies WriteDataset output loads back intact.
func TestWriteAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	target := "M002"
	completedAt := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	ds := &schema.Dataset{
		Members: []schema.Member{
			{MemberID: "M001", Name: "Alex Patel", Role: schema.RoleLeader, JoinedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), EstimatedContribution: 4.2},
			{MemberID: "M002", Name: "Sam Singh", Role: schema.RoleActive, JoinedAt: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)},
		},
		Interactions: []schema.Interaction{
			{Timestamp: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), Source: "M001", Target: &target, Type: schema.TypeMessage, Platform: "slack", Weight: 1.25, Content: "hello"},
			{Timestamp: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), Source: "M002", Type: schema.TypeMessage, Platform: "github", Weight: 2},
		},
		Tasks: []schema.Task{
			{TaskID: "TASK-deadbeef", AssignedBy: "M001", AssignedTo: "M002", AssignedAt: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), DueDate: time.Date(2025, 6, 4, 9, 30, 0, 0, time.UTC), Status: schema.TaskCompleted, CompletedBy: "M002", CompletedAt: &completedAt},
		},
	}

	require.NoError(t, WriteDataset(dir, "T01", ds))

	loaded, err := LoadDataset(dir)
	require.NoError(t, err)

	require.Len(t, loaded.Members, 2)
	assert.Equal(t, ds.Members[0].MemberID, loaded.Members[0].MemberID)
	assert.InDelta(t, ds.Members[0].EstimatedContribution, loaded.Members[0].EstimatedContribution, 1e-9)
	assert.True(t, ds.Members[0].JoinedAt.Equal(loaded.Members[0].JoinedAt))

	require.Len(t, loaded.Interactions, 2)
	assert.Equal(t, "M002", loaded.Interactions[0].TargetID())
	assert.False(t, loaded.Interactions[1].HasTarget())
	assert.InDelta(t, 1.25, loaded.Interactions[0].Weight, 1e-9)

	require.Len(t, loaded.Tasks, 1)
	assert.Equal(t, ds.Tasks[0].TaskID, loaded.Tasks[0].TaskID)
	assert.Equal(t, schema.TaskCompleted, loaded.Tasks[0].Status)
	require.NotNil(t, loaded.Tasks[0].CompletedAt)
	assert.True(t, completedAt.Equal(*loaded.Tasks[0].CompletedAt))
}
