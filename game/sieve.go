package game

import (
	"github.com/primevis/primevis/util/collections"
)

// sieve is a resumable Sieve of Eratosthenes over [2, limit]. Each Step call
// performs exactly one unit of work, so a caller can animate the algorithm
// one classification per frame instead of computing the final result at once.
type sieve struct {
	limit uint

	// marks is indexed by value; index 0 is unused.
	marks   []CellState
	unknown collections.Set[uint]

	// candidate is the smallest value not yet fully processed. multiple is
	// the next multiple of candidate to cross out, or 0 when no sweep is in
	// progress.
	candidate uint
	multiple  uint

	seededOne bool
	done      bool
}

// sieveStep reports the value classified (or re-swept) by a single Step call.
type sieveStep struct {
	value uint
	state CellState
}

func newSieve(limit uint) *sieve {
	s := &sieve{
		limit:     limit,
		marks:     make([]CellState, limit+1),
		unknown:   make(collections.Set[uint]),
		candidate: 2,
	}
	for value := uint(2); value <= limit; value++ {
		s.unknown.Add(value)
	}
	return s
}

func (s *sieve) Limit() uint {
	return s.limit
}

func (s *sieve) Candidate() uint {
	return s.candidate
}

func (s *sieve) Done() bool {
	return s.done
}

// StateOf returns the current classification of a value, or Unknown for
// values outside [1, limit].
func (s *sieve) StateOf(value uint) CellState {
	if value < 1 || value > s.limit {
		return Unknown
	}
	return s.marks[value]
}

// Step performs one unit of progress and reports the affected value. It
// returns false once the sieve is done; further calls never change state.
//
// The animation order matches the classical presentation: the current
// candidate is confirmed prime on its own tick, then its multiples are swept
// one per tick starting at candidate². Once candidate² exceeds the limit,
// every remaining unknown value is confirmed prime, one per tick.
func (s *sieve) Step() (sieveStep, bool) {
	if s.done {
		return sieveStep{}, false
	}

	// Value 1 occupies the first grid cell but is neither prime nor a sieve
	// candidate; it is crossed out on the very first tick.
	if !s.seededOne {
		s.seededOne = true
		if s.limit >= 1 {
			s.mark(1, Composite)
			if s.limit < 2 {
				s.done = true
			}
			return sieveStep{value: 1, state: Composite}, true
		}
	}

	if s.candidate > s.limit {
		s.done = true
		return sieveStep{}, false
	}

	if s.multiple != 0 {
		value := s.multiple
		s.mark(value, Composite)

		s.multiple += s.candidate
		if s.multiple > s.limit {
			s.multiple = 0
			s.advanceCandidate()
		}
		return sieveStep{value: value, state: Composite}, true
	}

	// The candidate survived every earlier sweep, so it has no prime factor
	// smaller than itself: it is prime.
	value := s.candidate
	s.mark(value, Prime)

	if square := value * value; square <= s.limit {
		s.multiple = square
	} else {
		s.advanceCandidate()
	}
	return sieveStep{value: value, state: Prime}, true
}

// mark classifies a value, if it has not been classified already. Sweeps may
// revisit values crossed out by a smaller prime; those re-marks are no-ops.
func (s *sieve) mark(value uint, state CellState) {
	if s.marks[value] == Unknown {
		s.marks[value] = state
		s.unknown.Remove(value)
	}
}

func (s *sieve) advanceCandidate() {
	next := s.candidate + 1
	for next <= s.limit && !s.unknown.Contains(next) {
		next++
	}
	s.candidate = next

	if next > s.limit {
		s.done = true
	}
}
