package schema

// PairPattern identifies one directed edge flagged as a strong or weak
// collaboration pair, together with its aggregated weight.
type PairPattern struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Patterns is the full output of one pattern-detection run. Members and
// pairs may appear in multiple categories; an empty RoleMismatch list means
// no mismatch was detected (or no leader exists).
type Patterns struct {
	IsolatedMembers []string      `json:"isolated_members"`
	PassiveMembers  []string      `json:"passive_members"`
	DominantMembers []string      `json:"dominant_members"`
	StrongPairs     []PairPattern `json:"strong_pairs"`
	WeakPairs       []PairPattern `json:"weak_pairs"`
	Subgroups       [][]string    `json:"subgroups"`
	RoleMismatch    []string      `json:"role_mismatch"`
}
