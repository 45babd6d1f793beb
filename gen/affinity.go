package gen

import "github.com/teampulse/teampulse/schema"

// affinityTable holds directed pairwise propensities. A missing pair reads
// as the neutral base of 1.0.
type affinityTable map[string]map[string]float64

func (t affinityTable) get(source, target string) float64 {
	if row, ok := t[source]; ok {
		if v, ok := row[target]; ok {
			return v
		}
	}
	return 1.0
}

func (t affinityTable) set(source, target string, v float64) {
	row, ok := t[source]
	if !ok {
		row = make(map[string]float64)
		t[source] = row
	}
	row[target] = v
}

// buildAffinity assigns every ordered pair a base affinity of 1.0, then
// layers on structure: a clique of roughly half the team gets a shared
// bonus factor, leaders send more to everyone, and isolated members are
// rarely targeted.
func (g *Generator) buildAffinity(ids []string, roles map[string]schema.Role) affinityTable {
	t := make(affinityTable, len(ids))
	for _, a := range ids {
		for _, b := range ids {
			if a != b {
				t.set(a, b, 1.0)
			}
		}
	}

	if len(ids) >= 4 {
		clique := make(map[string]bool)
		for _, idx := range g.sample(len(ids), max(2, len(ids)/2)) {
			clique[ids[idx]] = true
		}
		bonus := g.uniform(2.0, 3.5)
		for a := range clique {
			for b := range clique {
				if a != b {
					t.set(a, b, t.get(a, b)*bonus)
				}
			}
		}
	}

	for _, a := range ids {
		for _, b := range ids {
			if a == b {
				continue
			}
			if roles[a] == schema.RoleLeader {
				t.set(a, b, t.get(a, b)*1.6)
			}
			if roles[b] == schema.RoleIsolated {
				t.set(a, b, t.get(a, b)*0.3)
			}
		}
	}

	return t
}
