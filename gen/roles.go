package gen

import (
	"fmt"
	"time"

	"github.com/teampulse/teampulse/schema"
)

var (
	firstNames = []string{
		"Alex", "Sam", "Chris", "Taylor", "Jordan", "Casey",
		"Riley", "Morgan", "Avery", "Jamie", "Kai", "Lee",
	}
	lastNames = []string{
		"Patel", "Singh", "Kumar", "Sharma", "Das", "Iyer",
		"Gupta", "Rao", "Verma", "Nair", "Fernandes",
	}
)

// buildTeam creates the member table and assigns roles: exactly one leader,
// one or two actives, a passive pick on teams of five or more, and a 50%
// chance of one isolated member. The isolated pick excludes the leader and
// actives but may land on the passive member, replacing that role; everyone
// else stays regular.
func (g *Generator) buildTeam(start time.Time) []schema.Member {
	size := g.cfg.MinMembers + g.rng.Intn(g.cfg.MaxMembers-g.cfg.MinMembers+1)
	members := make([]schema.Member, size)
	for i := range members {
		members[i] = schema.Member{
			MemberID: fmt.Sprintf("M%03d", i+1),
			Name:     g.randName(),
			Role:     schema.RoleRegular,
			JoinedAt: start.AddDate(0, 0, -g.rng.Intn(61)),
		}
	}

	byID := make(map[string]*schema.Member, size)
	ids := make([]string, size)
	for i := range members {
		byID[members[i].MemberID] = &members[i]
		ids[i] = members[i].MemberID
	}

	leader := ids[g.rng.Intn(len(ids))]
	byID[leader].Role = schema.RoleLeader

	remaining := exclude(ids, map[string]bool{leader: true})
	numActive := min(2, max(1, len(remaining)/3))
	core := map[string]bool{leader: true}
	for _, idx := range g.sample(len(remaining), numActive) {
		byID[remaining[idx]].Role = schema.RoleActive
		core[remaining[idx]] = true
	}

	if size >= 5 {
		if pool := exclude(ids, core); len(pool) > 0 {
			byID[pool[g.rng.Intn(len(pool))]].Role = schema.RolePassive
		}
	}

	if g.rng.Float64() < 0.5 {
		if pool := exclude(ids, core); len(pool) > 0 {
			byID[pool[g.rng.Intn(len(pool))]].Role = schema.RoleIsolated
		}
	}

	return members
}

// randName draws a plausible member name from the fixed pools.
func (g *Generator) randName() string {
	return firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))]
}

// exclude returns ids not present in the skip set, preserving order.
func exclude(ids []string, skip map[string]bool) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !skip[id] {
			out = append(out, id)
		}
	}
	return out
}
