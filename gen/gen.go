// Package gen produces synthetic interaction logs for one team. The
// generator drives everything from a single seeded random source, so a run
// is fully reproducible from its seed and parameters.
package gen

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/teampulse/teampulse/schema"
)

// Default simulation parameters.
const (
	DefaultTeamID     = "T01"
	DefaultMinMembers = 5
	DefaultMaxMembers = 6
	DefaultDays       = 30
	DefaultTarget     = 7000
	DefaultSeed       = 123
	DefaultPeakHour   = 15.0
)

// Per-day rhythm parameters. Roughly one day in eight is a burst day and,
// independently, about one pass in seventeen over a day is quiet.
const (
	burstDayDivisor = 8
	quietDayChance  = 0.06
	broadcastChance = 0.09
	hourStdDev      = 4.0
	minHour         = 8
	maxHour         = 23
)

// platforms and their sampling weights.
var (
	platforms       = []string{"slack", "whatsapp", "github", "trello", "googledocs"}
	platformWeights = []float64{0.40, 0.25, 0.12, 0.13, 0.10}
)

// interaction type categorical distribution; task events are rare.
var (
	eventTypes = []schema.InteractionType{
		schema.TypeMessage,
		schema.TypeReply,
		schema.TypeTaskAssign,
		schema.TypeTaskComplete,
		schema.TypeComment,
		schema.TypeReview,
	}
	eventTypeWeights = []float64{0.48, 0.18, 0.07, 0.05, 0.16, 0.06}
)

// Config holds the simulation parameters for one generator run.
type Config struct {
	TeamID     string
	MinMembers int
	MaxMembers int
	Days       int
	Target     int
	Seed       int64
	PeakHour   float64

	// Start is the beginning of the simulated window. A zero value means
	// Days before the current time.
	Start time.Time
}

// DefaultConfig returns the standard simulation parameters.
func DefaultConfig() Config {
	return Config{
		TeamID:     DefaultTeamID,
		MinMembers: DefaultMinMembers,
		MaxMembers: DefaultMaxMembers,
		Days:       DefaultDays,
		Target:     DefaultTarget,
		Seed:       DefaultSeed,
		PeakHour:   DefaultPeakHour,
	}
}

// Validate checks the simulation parameters.
func (c *Config) Validate() error {
	if c.MinMembers < 2 {
		return fmt.Errorf("min members must be at least 2, got %d", c.MinMembers)
	}
	if c.MaxMembers < c.MinMembers {
		return fmt.Errorf("max members %d is below min members %d", c.MaxMembers, c.MinMembers)
	}
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1, got %d", c.Days)
	}
	if c.Target < 1 {
		return fmt.Errorf("target interactions must be at least 1, got %d", c.Target)
	}
	if c.PeakHour < minHour || c.PeakHour > maxHour {
		return fmt.Errorf("peak hour must be within [%d,%d], got %g", minHour, maxHour, c.PeakHour)
	}
	return nil
}

// Generator produces synthetic datasets. All randomness flows through the
// one seeded source.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a Generator for the given parameters.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}
}

// Generate runs the full simulation: members with roles, a pairwise
// affinity model, day-by-day event sampling, and a consistent task table.
// Generation proceeds in whole-day passes, re-iterating the day range until
// the event count reaches the target; the final day is never truncated, so
// output may overshoot the target by up to one day's worth of events.
func (g *Generator) Generate() (*schema.Dataset, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	start := g.cfg.Start
	if start.IsZero() {
		start = time.Now().AddDate(0, 0, -g.cfg.Days)
	}

	members := g.buildTeam(start)
	ids := schema.MemberIDs(members)
	roles := schema.RolesByID(members)
	affinity := g.buildAffinity(ids, roles)

	burstDays := make(map[int]bool)
	for _, d := range g.sample(g.cfg.Days, max(1, g.cfg.Days/burstDayDivisor)) {
		burstDays[d] = true
	}

	var interactions []schema.Interaction
	registry := newTaskRegistry()

	for len(interactions) < g.cfg.Target {
		for day := 0; day < g.cfg.Days; day++ {
			date := start.AddDate(0, 0, day)
			baseLambda := float64(max(4, len(ids)*10))
			if burstDays[day] {
				baseLambda = math.Floor(baseLambda * g.uniform(2.0, 3.0))
			}
			if g.rng.Float64() < quietDayChance {
				baseLambda = math.Floor(baseLambda * g.uniform(0.1, 0.6))
			}
			for range g.poisson(baseLambda) {
				interactions = append(interactions, g.nextEvent(date, ids, roles, affinity, registry))
			}
			if len(interactions) >= g.cfg.Target {
				break
			}
		}
	}

	sort.SliceStable(interactions, func(i, j int) bool {
		return interactions[i].Timestamp.Before(interactions[j].Timestamp)
	})

	estimateContributions(members, interactions, registry.all())

	return &schema.Dataset{
		Members:      members,
		Interactions: interactions,
		Tasks:        registry.all(),
	}, nil
}

// nextEvent samples one interaction and applies its task side effects.
func (g *Generator) nextEvent(
	date time.Time,
	ids []string,
	roles map[string]schema.Role,
	affinity affinityTable,
	registry *taskRegistry,
) schema.Interaction {
	hour := clampInt(g.normal(g.cfg.PeakHour, hourStdDev), minHour, maxHour)
	ts := time.Date(date.Year(), date.Month(), date.Day(), hour, g.rng.Intn(60), g.rng.Intn(60), 0, date.Location())

	sourceWeights := make([]float64, len(ids))
	for i, id := range ids {
		sourceWeights[i] = schema.SourceWeight(roles[id])
	}
	source := ids[g.weightedIndex(sourceWeights)]

	itype := eventTypes[g.weightedIndex(eventTypeWeights)]

	// Target by affinity from the source, with a small broadcast chance.
	others := make([]string, 0, len(ids)-1)
	targetWeights := make([]float64, 0, len(ids)-1)
	for _, id := range ids {
		if id == source {
			continue
		}
		others = append(others, id)
		targetWeights = append(targetWeights, affinity.get(source, id))
	}
	var target *string
	if g.rng.Float64() >= broadcastChance && len(others) > 0 {
		chosen := others[g.weightedIndex(targetWeights)]
		target = &chosen
	}

	platform := platforms[g.weightedIndex(platformWeights)]

	affinityScale := 1.0
	if target != nil {
		affinityScale = affinity.get(source, *target)
	}
	weight := round3(schema.BaseWeight(itype) * affinityScale * g.uniform(0.85, 1.25))

	ia := schema.Interaction{
		Timestamp: ts,
		Source:    source,
		Target:    target,
		Type:      itype,
		Platform:  platform,
		Weight:    weight,
		Content:   g.content(itype),
	}

	switch itype {
	case schema.TypeTaskAssign:
		assignedTo := source
		if target != nil {
			assignedTo = *target
		}
		registry.assign(schema.Task{
			TaskID:     g.taskID(),
			AssignedBy: source,
			AssignedTo: assignedTo,
			AssignedAt: ts,
			DueDate:    ts.AddDate(0, 0, 1+g.rng.Intn(10)),
			Status:     schema.TaskAssigned,
		})
	case schema.TypeTaskComplete:
		// Completion picks uniformly among currently-assigned tasks, not
		// necessarily one involving the acting member. Preserved as
		// documented behavior: restricting the pool would change the
		// statistical shape of generated datasets.
		registry.completeRandom(g.rng, source, ts)
	}

	return ia
}

// content builds a placeholder body sized like a real message.
func (g *Generator) content(itype schema.InteractionType) string {
	mean := 140.0
	if itype == schema.TypeMessage || itype == schema.TypeReply {
		mean = 60.0
	}
	length := clampInt(g.normal(mean, 25), 5, 600)
	return fmt.Sprintf("<%s> %s", itype, strings.Repeat("x", max(4, length/2)))
}

// estimateContributions fills each member's contribution estimate from the
// sum of sent interaction weights and completed task count.
func estimateContributions(members []schema.Member, interactions []schema.Interaction, tasks []schema.Task) {
	sumWeight := make(map[string]float64)
	for i := range interactions {
		sumWeight[interactions[i].Source] += interactions[i].Weight
	}
	completed := make(map[string]int)
	for i := range tasks {
		if tasks[i].Status == schema.TaskCompleted {
			completed[tasks[i].CompletedBy]++
		}
	}
	for i := range members {
		id := members[i].MemberID
		members[i].EstimatedContribution = sumWeight[id]*0.7 + float64(completed[id])*1.6
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
