// Package schema has configs, models and constants for all parts of teampulse.
package schema

import "time"

// Member represents one person on the team. Roles are assigned once at team
// setup and never change afterwards.
type Member struct {
	MemberID string    `json:"member_id"`
	Name     string    `json:"name"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joined_at"`

	// EstimatedContribution is a generator-side estimate written alongside
	// synthetic datasets: 0.7*sum_weight + 1.6*tasks_completed.
	EstimatedContribution float64 `json:"estimated_contribution,omitempty"`
}

// Interaction is a single immutable interaction event. A nil Target denotes
// a broadcast or channel message with no single recipient.
type Interaction struct {
	Timestamp time.Time       `json:"timestamp"`
	Source    string          `json:"source"`
	Target    *string         `json:"target,omitempty"`
	Type      InteractionType `json:"interaction_type"`
	Platform  string          `json:"platform"`
	Weight    float64         `json:"weight"`
	Content   string          `json:"content,omitempty"`
}

// HasTarget reports whether the interaction is directed at a single member.
func (i *Interaction) HasTarget() bool {
	return i.Target != nil && *i.Target != ""
}

// TargetID returns the target member ID, or the empty string for broadcasts.
func (i *Interaction) TargetID() string {
	if i.Target == nil {
		return ""
	}
	return *i.Target
}

// Task tracks a single unit of assigned work. A task transitions from
// assigned to completed at most once; no other transitions exist.
type Task struct {
	TaskID      string     `json:"task_id"`
	AssignedBy  string     `json:"assigned_by"`
	AssignedTo  string     `json:"assigned_to"`
	AssignedAt  time.Time  `json:"assigned_at"`
	DueDate     time.Time  `json:"due_date"`
	Status      TaskStatus `json:"status"`
	CompletedBy string     `json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Dataset bundles the three tables a single analysis run operates on.
type Dataset struct {
	Members      []Member
	Interactions []Interaction
	Tasks        []Task
}
