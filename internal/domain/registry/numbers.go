package registry

import (
	"math/rand/v2"
	"time"
)

const (
	// MaxRegistrationNumber is the largest registration number handed out.
	MaxRegistrationNumber = 9999

	// RegistrationSpace is the number of distinct registration numbers.
	RegistrationSpace = MaxRegistrationNumber + 1

	// DefaultMaxAttempts bounds random draws before falling back to a scan.
	DefaultMaxAttempts = 64
)

// NumberSource produces uniform integers in [0, n). *rand.Rand satisfies it.
type NumberSource interface {
	IntN(n int) int
}

// NewNumberSource returns a PCG-backed source. A zero seed draws the seed
// from the clock, any other value gives a reproducible sequence.
func NewNumberSource(seed uint64) NumberSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // G115: sign bit irrelevant for a seed
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // G404: registration numbers are not secrets
}

// numberAllocator hands out unique registration numbers.
type numberAllocator struct {
	source      NumberSource
	maxAttempts int
	taken       map[int]struct{}
}

func newNumberAllocator(source NumberSource, maxAttempts int) *numberAllocator {
	return &numberAllocator{
		source:      source,
		maxAttempts: maxAttempts,
		taken:       make(map[int]struct{}),
	}
}

// next picks a free number without claiming it.
func (a *numberAllocator) next() (int, error) {
	if a.exhausted() {
		return 0, ErrRegistrationSpaceExhausted
	}

	n := 0
	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		n = a.source.IntN(RegistrationSpace)
		if !a.isTaken(n) {
			return n, nil
		}
	}

	// Too many collisions: walk forward from the last draw.
	for i := 0; i < RegistrationSpace; i++ {
		candidate := (n + i) % RegistrationSpace
		if !a.isTaken(candidate) {
			return candidate, nil
		}
	}
	return 0, ErrRegistrationSpaceExhausted
}

func (a *numberAllocator) claim(n int) {
	a.taken[n] = struct{}{}
}

func (a *numberAllocator) isTaken(n int) bool {
	_, ok := a.taken[n]
	return ok
}

func (a *numberAllocator) exhausted() bool {
	return len(a.taken) >= RegistrationSpace
}

func (a *numberAllocator) free() int {
	return RegistrationSpace - len(a.taken)
}
