package md4coll

import . "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The round functions of MD4 as used by the search, in both directions: forward to compute a state
// word from its window and a message word, and inverted to recover a message word from two known
// state windows.

const (
	k1, k2 = 0x5a827999, 0x6ed9eba1
	off    = 3 /* Q[-3] lives at q[0]; see state. */
)

var (
	/* Shift for step i is shifts[i>>4][i&3]. */
	shifts = [3][4]int{{3, 7, 11, 19}, {3, 5, 9, 13}, {3, 9, 11, 15}}
	/* Message word consumed by step i+1. */
	order = [48]int{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15,
		0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}
)

func f(b, c, d uint32) uint32 { return (c^d)&b ^ d }

func g(b, c, d uint32) uint32 { return b&c | b&d | c&d }

func h(b, c, d uint32) uint32 { return b ^ c ^ d }

func rl(x uint32, n int) uint32 { return RotateLeft32(x, n) }

func rr(x uint32, n int) uint32 { return RotateLeft32(x, -n) }

// lane is one path of the search: the 49 state words Q[0..48] preceded by the three chaining words
// that act as Q[-3..-1], and the 16 message words.
type lane struct {
	q [49 + off]uint32
	x [16]uint32
}

func (l *lane) seed(cv ChainingValue) {
	l.q[0], l.q[1], l.q[2], l.q[3] = cv[0], cv[3], cv[2], cv[1]
}

// invert recovers X[j] from Q[j-3..j+1]. Valid for round-1 steps only.
func (l *lane) invert(j int) uint32 {
	q := l.q[j:]
	l.x[j] = rr(q[4], shifts[0][j&3]) - f(q[3], q[2], q[1]) - q[0]
	return l.x[j]
}

// step computes Q[i] forward from Q[i-4..i-1] and the message word the step consumes. i > 0.
func (l *lane) step(i int) uint32 {
	q, s := l.q[i-1:], i-1
	var t uint32
	switch s >> 4 {
	case 0:
		t = f(q[3], q[2], q[1])
	case 1:
		t = g(q[3], q[2], q[1]) + k1
	default:
		t = h(q[3], q[2], q[1]) + k2
	}
	q[4] = rl(q[0]+t+l.x[order[s]], shifts[s>>4][s&3])
	return q[4]
}
