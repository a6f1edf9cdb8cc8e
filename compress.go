package md4coll

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The MD4 compression function, as specified in RFC 1320, from an arbitrary chaining value.

// Compress runs the 48 steps of MD4 over b starting from cv and returns the next chaining value.
func Compress(cv ChainingValue, b *Block) ChainingValue {
	a, bb, c, d := cv[0], cv[1], cv[2], cv[3]
	for i := 0; i < 48; i++ {
		var t uint32
		switch i >> 4 {
		case 0:
			t = f(bb, c, d)
		case 1:
			t = g(bb, c, d) + k1
		default:
			t = h(bb, c, d) + k2
		}
		/* Registers rotate one place per step, so after 48 steps each is back in place. */
		a, bb, c, d = d, rl(a+t+b[order[i]], shifts[i>>4][i&3]), bb, c
	}
	return ChainingValue{cv[0] + a, cv[1] + bb, cv[2] + c, cv[3] + d}
}
