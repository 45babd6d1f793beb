package schema

// Custom string types for type safety.
type (
	// Role represents a member's organizational role, fixed at team setup.
	Role string

	// InteractionType represents the kind of a single interaction event.
	InteractionType string

	// TaskStatus represents the lifecycle state of a task.
	TaskStatus string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// All roles supported. Exactly one member holds RoleLeader per team.
const (
	RoleLeader   Role = "leader"
	RoleActive   Role = "active"
	RoleRegular  Role = "regular"
	RolePassive  Role = "passive"
	RoleIsolated Role = "isolated"
)

// All interaction types supported.
const (
	TypeMessage      InteractionType = "message"
	TypeReply        InteractionType = "reply"
	TypeTaskAssign   InteractionType = "task_assign"
	TypeTaskComplete InteractionType = "task_complete"
	TypeComment      InteractionType = "comment"
	TypeReview       InteractionType = "review"
	TypeMention      InteractionType = "mention"
)

// All task statuses supported.
const (
	TaskAssigned  TaskStatus = "assigned"
	TaskCompleted TaskStatus = "completed"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All run-store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidRoles lists all valid member roles.
var ValidRoles = map[Role]struct{}{
	RoleLeader:   {},
	RoleActive:   {},
	RoleRegular:  {},
	RolePassive:  {},
	RoleIsolated: {},
}

// ValidInteractionTypes lists all valid interaction types.
var ValidInteractionTypes = map[InteractionType]struct{}{
	TypeMessage:      {},
	TypeReply:        {},
	TypeTaskAssign:   {},
	TypeTaskComplete: {},
	TypeComment:      {},
	TypeReview:       {},
	TypeMention:      {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid run-store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// SourceWeight returns the weighted-choice weight used when picking an
// interaction source by role.
func SourceWeight(r Role) float64 {
	switch r {
	case RoleLeader:
		return 2.2
	case RoleActive:
		return 1.8
	case RolePassive:
		return 0.5
	case RoleIsolated:
		return 0.25
	default:
		return 1.0
	}
}

// BaseWeight returns the base interaction weight for a type before affinity
// scaling and jitter. Task completions rank highest, plain messages lowest.
func BaseWeight(t InteractionType) float64 {
	switch t {
	case TypeTaskComplete:
		return 2.6
	case TypeTaskAssign:
		return 2.1
	case TypeReview:
		return 1.8
	case TypeComment:
		return 1.3
	case TypeReply:
		return 1.2
	default: // message, mention
		return 1.0
	}
}
