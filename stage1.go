package md4coll

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// sparse is Stage 1. It samples Q[2..16] under their bit conditions, derives lane 1 from lane 0 by
// the path's subtractive differences and recovers X[5..15] along the way. Every failed check
// restarts the sample at Q[2]; at most Limits.Stage1 samples are attempted.
func (s *Searcher) sparse(st *state) bool {
	for n := s.limits.Stage1; n > 0; n-- {
		s.stats.Stage1++
		if s.sample(&st[0], &st[1]) {
			return true
		}
	}
	return false
}

func (s *Searcher) sample(l0, l1 *lane) bool {
	for i := 2; i <= 16; i++ {
		q := masks[i].apply(s.src.Uint32(), l0.q[i+off-1])
		l0.q[i+off] = q
		l1.q[i+off] = q - states[i].delta
		if i < 6 {
			continue
		}

		j := i - 1
		x := l0.invert(j)
		if !message[j].holds(x, l1.invert(j)) {
			return false
		}
		if j == 5 && s.bias != nil && (x>>s.bias.Shift)&0xff != uint32(s.bias.Byte) {
			return false
		}
	}
	return true
}
