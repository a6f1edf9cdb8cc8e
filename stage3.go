package md4coll

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// extension is Stage 3: the trials of Stage 2 carried through all 48 steps. Only a Stage-1 sample
// already known to pass Stage 2 reaches it, yet most such samples still exhaust Limits.Stage3
// trials. On success every message word of both lanes is fixed.
func (s *Searcher) extension(st *state) bool {
	for n := s.limits.Stage3; n > 0; n-- {
		s.stats.Stage3++
		if s.draw(&st[0], &st[1]) && extend(&st[0], &st[1], 48) {
			return true
		}
	}
	return false
}
