package md4coll

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// closure is Stage 2. Each trial draws a fresh Q[1], closes round 1 by recovering X[0..4] and runs
// the first four round-2 steps. A Stage-1 sample that admits no passing trial within
// Limits.Stage2 trials is abandoned.
func (s *Searcher) closure(st *state) bool {
	for n := s.limits.Stage2; n > 0; n-- {
		s.stats.Stage2++
		if s.draw(&st[0], &st[1]) && extend(&st[0], &st[1], 20) {
			return true
		}
	}
	return false
}

// draw picks Q[1], identical on both lanes, and checks the message words it determines.
func (s *Searcher) draw(l0, l1 *lane) bool {
	q := masks[1].apply(s.src.Uint32(), l0.q[off]) | l0.q[2+off]&next1
	l0.q[1+off], l1.q[1+off] = q, q
	for j := 0; j <= 4; j++ {
		if !message[j].holds(l0.invert(j), l1.invert(j)) {
			return false
		}
	}
	return true
}

// extend steps both lanes forward from Q[17] through Q[last], stopping at the first state word
// whose lanes break their relation.
func extend(l0, l1 *lane, last int) bool {
	for i := 17; i <= last; i++ {
		if !states[i].holds(l0.step(i), l1.step(i)) {
			return false
		}
	}
	return true
}
