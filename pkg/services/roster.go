package services

import (
	"math/rand/v2"
	"sync"

	"github.com/mbcars/lead-router/pkg/config"
)

// Roster is the fixed pool of sales agent numbers a lead can be sent to.
type Roster struct {
	numbers []string

	mu   sync.Mutex
	rand *rand.Rand
}

// NewRoster returns a roster drawing from the global random source.
func NewRoster(numbers []string) (*Roster, error) {
	return NewRosterWithRand(numbers, nil)
}

// NewRosterWithRand returns a roster drawing from r. A nil r uses the global
// source.
func NewRosterWithRand(numbers []string, r *rand.Rand) (*Roster, error) {
	if len(numbers) == 0 {
		return nil, config.ErrEmptyRoster
	}

	return &Roster{
		numbers: append([]string(nil), numbers...),
		rand:    r,
	}, nil
}

// Pick returns one agent number chosen uniformly at random.
func (r *Roster) Pick() string {
	if r.rand == nil {
		return r.numbers[rand.IntN(len(r.numbers))]
	}

	// *rand.Rand is not safe for concurrent use.
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.numbers[r.rand.IntN(len(r.numbers))]
}

// Len returns the number of agents in the roster.
func (r *Roster) Len() int {
	return len(r.numbers)
}
