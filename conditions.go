package md4coll

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The differential path of Wang et al. for MD4, written as data: per-word relations between the
// two lanes and the sufficient bit conditions on the first sixteen state words.

type relation uint8

const (
	equal relation = iota
	xorDiff
	subDiff
)

// condition relates a word of lane 0 (a) to the same word of lane 1 (b).
type condition struct {
	rel   relation
	delta uint32
}

func (c condition) holds(a, b uint32) bool {
	switch c.rel {
	case xorDiff:
		return a^b == c.delta
	case subDiff:
		return a-b == c.delta
	}
	return a == b
}

// Delta is the message difference of the attack: block1[i] == block0[i] ^ Delta[i].
var Delta = Block{1: 0x80000000, 2: 0x90000000, 12: 0x00010000}

/* Relation required of each message word; every one is an XOR mask taken from Delta. */
var message [16]condition

func init() {
	for i, d := range Delta {
		if d != 0 {
			message[i] = condition{xorDiff, d}
		}
	}
}

// mask holds the sufficient conditions on one of Q[1..16]: bits forced to one, bits forced to zero
// and bits copied from Q[i-1].
type mask struct {
	set, clear, copy uint32
}

func (m mask) apply(r, prev uint32) uint32 {
	return (r|m.set)&^(m.clear|m.copy) | prev&m.copy
}

func (m mask) holds(q, prev uint32) bool {
	return q&m.set == m.set && q&m.clear == 0 && (q^prev)&m.copy == 0
}

/* Q[1] is drawn by stages 2 and 3 and also borrows next bits from Q[2]. */
const next1 = 0x00000480

var masks = [17]mask{
	1:  {0, next1, 0x00000040},
	2:  {0, 0x00000040, 0},
	3:  {0x000000c0, 0x00000800, 0x02000000},
	4:  {0x00000040, 0x02000480, 0},
	5:  {0x00000480, 0x02000000, 0x00002000},
	6:  {0x02000000, 0x00002000, 0x003c0000},
	7:  {0x00100000, 0x002c2000, 0x00005000},
	8:  {0x00003000, 0x003c4000, 0x00010000},
	9:  {0x00207000, 0x001d0000, 0x02400000},
	10: {0x02307000, 0x00490000, 0x20000000},
	11: {0x20010000, 0x02780000, 0x80000000},
	12: {0x02300000, 0xa0080000, 0x00400000},
	13: {0x20000000, 0x82400000, 0x14000000},
	14: {0x94000000, 0x22400000, 0},
	15: {0x02400000, 0x34000000, 0x00040000},
	16: {0x14000000, 0x20040000, 0},
}

// states holds the relation of Q[i] in lane 0 to Q[i] in lane 1 for every step of the path.
var states = [49]condition{
	2:  {subDiff, 0xffffffc0},
	3:  {subDiff, 0xfffffc80},
	4:  {subDiff, 0xfe000000},
	6:  {subDiff, 0xffffe000},
	7:  {subDiff, 0xffe40000},
	8:  {subDiff, 0xfffff000},
	9:  {subDiff, 0xffff0000},
	10: {subDiff, 0x01e80000},
	11: {subDiff, 0x20000000},
	12: {subDiff, 0x80000000},
	13: {subDiff, 0xfdc00000},
	14: {subDiff, 0xf4000000},
	16: {subDiff, 0xfffc0000},
	17: {subDiff, 0x8e000000},
	20: {subDiff, 0xa0000000},
	21: {subDiff, 0x70000000},
	36: {xorDiff, 0x80000000},
	37: {xorDiff, 0x80000000},
}
