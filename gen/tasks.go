package gen

import (
	"encoding/hex"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse/schema"
)

// taskRegistry owns every task emitted during a run. Tasks live in a single
// arena slice; the open index tracks which arena slots are still assigned so
// completion can pick among them without scanning.
type taskRegistry struct {
	arena []schema.Task
	open  []int
}

func newTaskRegistry() *taskRegistry {
	return &taskRegistry{}
}

func (r *taskRegistry) assign(t schema.Task) {
	r.arena = append(r.arena, t)
	r.open = append(r.open, len(r.arena)-1)
}

// completeRandom marks one currently-assigned task completed, chosen
// uniformly. No-op when nothing is open.
func (r *taskRegistry) completeRandom(rng *rand.Rand, by string, at time.Time) {
	if len(r.open) == 0 {
		return
	}
	i := rng.Intn(len(r.open))
	idx := r.open[i]
	r.open[i] = r.open[len(r.open)-1]
	r.open = r.open[:len(r.open)-1]

	t := &r.arena[idx]
	t.Status = schema.TaskCompleted
	t.CompletedBy = by
	completedAt := at
	t.CompletedAt = &completedAt
}

// all returns the arena in assignment order.
func (r *taskRegistry) all() []schema.Task {
	return r.arena
}

// taskID derives an id from the generator's seeded source so runs stay
// reproducible.
func (g *Generator) taskID() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// rand.Rand.Read never fails.
		panic(err)
	}
	return "TASK-" + hex.EncodeToString(id[:4])
}
