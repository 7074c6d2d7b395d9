package game

import (
	"testing"
)

// primesUpTo computes the reference prime set by trial division, independent
// of the sieve under test.
func primesUpTo(limit uint) map[uint]bool {
	primes := make(map[uint]bool)
	for n := uint(2); n <= limit; n++ {
		isPrime := true
		for d := uint(2); d*d <= n; d++ {
			if n%d == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes[n] = true
		}
	}
	return primes
}

// runSieve steps the sieve to completion, failing the test if it does not
// terminate within a generous tick budget.
func runSieve(t *testing.T, s *sieve) (ticks int) {
	t.Helper()

	maxTicks := int(10*s.Limit()) + 10
	for !s.Done() {
		if _, ok := s.Step(); !ok {
			break
		}
		ticks++
		if ticks > maxTicks {
			t.Fatalf("sieve over [2, %d] did not finish within %d ticks", s.Limit(), maxTicks)
		}
	}
	return ticks
}

func TestSieveFindsPrimes(t *testing.T) {
	for _, limit := range []uint{2, 3, 4, 10, 25, 100, 324} {
		s := newSieve(limit)
		runSieve(t, s)

		primes := primesUpTo(limit)
		for value := uint(2); value <= limit; value++ {
			want := Composite
			if primes[value] {
				want = Prime
			}
			if got := s.StateOf(value); got != want {
				t.Errorf("limit %d: value %d classified %v, want %v", limit, value, got, want)
			}
		}

		if s.StateOf(1) != Composite {
			t.Errorf("limit %d: value 1 should be crossed out", limit)
		}
	}
}

func TestSieveBoundaries(t *testing.T) {
	cases := []struct {
		limit      uint
		primes     []uint
		composites []uint
	}{
		{2, []uint{2}, nil},
		{3, []uint{2, 3}, nil},
		{4, []uint{2, 3}, []uint{4}},
	}

	for _, c := range cases {
		s := newSieve(c.limit)
		runSieve(t, s)

		for _, value := range c.primes {
			if s.StateOf(value) != Prime {
				t.Errorf("limit %d: %d should be prime", c.limit, value)
			}
		}
		for _, value := range c.composites {
			if s.StateOf(value) != Composite {
				t.Errorf("limit %d: %d should be composite", c.limit, value)
			}
		}
	}
}

func TestSieveTrivialLimits(t *testing.T) {
	// No values to classify below 2; the sieve finishes almost immediately.
	for _, limit := range []uint{0, 1} {
		s := newSieve(limit)
		runSieve(t, s)
		if !s.Done() {
			t.Errorf("limit %d: sieve should be done", limit)
		}
	}
}

func TestSieveMonotonicity(t *testing.T) {
	s := newSieve(144)

	classified := make(map[uint]CellState)
	for !s.Done() {
		step, ok := s.Step()
		if !ok {
			break
		}
		if prev, seen := classified[step.value]; seen && prev != step.state {
			t.Fatalf("value %d reclassified from %v to %v", step.value, prev, step.state)
		}
		classified[step.value] = step.state
	}
}

func TestSieveIdempotence(t *testing.T) {
	first := newSieve(100)
	second := newSieve(100)
	runSieve(t, first)
	runSieve(t, second)

	for value := uint(1); value <= 100; value++ {
		if first.StateOf(value) != second.StateOf(value) {
			t.Errorf("value %d: runs disagree (%v vs %v)",
				value, first.StateOf(value), second.StateOf(value))
		}
	}
}

func TestSieveDoneIsSticky(t *testing.T) {
	s := newSieve(25)
	runSieve(t, s)

	var before [26]CellState
	for value := uint(1); value <= 25; value++ {
		before[value] = s.StateOf(value)
	}

	for i := 0; i < 5; i++ {
		if _, ok := s.Step(); ok {
			t.Fatal("Step reported progress after completion")
		}
	}

	for value := uint(1); value <= 25; value++ {
		if s.StateOf(value) != before[value] {
			t.Errorf("value %d changed state after completion", value)
		}
	}
}

func TestSieveAnimationOrder(t *testing.T) {
	// Over [2, 10]: 1 is crossed out first, then 2 is confirmed prime and its
	// multiples swept from 4, then 3 with its remaining multiple 9, then 5
	// and 7 are confirmed one tick apiece.
	s := newSieve(10)

	want := []sieveStep{
		{1, Composite},
		{2, Prime},
		{4, Composite},
		{6, Composite},
		{8, Composite},
		{10, Composite},
		{3, Prime},
		{9, Composite},
		{5, Prime},
		{7, Prime},
	}

	for i, expected := range want {
		got, ok := s.Step()
		if !ok {
			t.Fatalf("sieve finished early at tick %d", i)
		}
		if got != expected {
			t.Errorf("tick %d: got %+v, want %+v", i, got, expected)
		}
	}

	if !s.Done() {
		t.Error("sieve should be done after the final prime is confirmed")
	}
}
