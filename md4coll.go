// Package md4coll finds pairs of distinct 64-byte blocks on which the MD4 compression function
// agrees, following the differential attack of Wang, Lai, Feng, Chen and Yu (EUROCRYPT 2005).
package md4coll

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains the package's public types and the search entry points.

// ChainingValue is the register state (a, b, c, d) the compression function starts from.
type ChainingValue [4]uint32

// IV is the standard MD4 initialization value.
var IV = ChainingValue{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

// Block is one 64-byte message block as sixteen little-endian words.
type Block [16]uint32

// Bytes returns the 64 bytes of b.
func (b *Block) Bytes() []byte {
	buf := make([]byte, BlockSize)
	for i, w := range b {
		binary.LittleEndian.PutUint32(buf[i<<2:], w)
	}
	return buf
}

// BlockFromBytes parses exactly BlockSize bytes.
func BlockFromBytes(p []byte) (Block, error) {
	var b Block
	if len(p) != BlockSize {
		return b, fmt.Errorf("md4coll: block must be %d bytes, got %d", BlockSize, len(p))
	}
	for i := range b {
		b[i] = binary.LittleEndian.Uint32(p[i<<2:])
	}
	return b, nil
}

// Pair is a colliding pair of blocks. Pair[1][i] == Pair[0][i] ^ Delta[i] for every i.
type Pair [2]Block

// Verify reports whether p holds two distinct blocks that compress to the same value from cv.
func (p *Pair) Verify(cv ChainingValue) bool {
	return p[0] != p[1] && Compress(cv, &p[0]) == Compress(cv, &p[1])
}

// Bias pins the eight bits of X[5] starting at bit Shift to Byte, so that successive calls can
// shape the first derived message word of each block.
type Bias struct {
	Byte  uint8
	Shift uint
}

// Limits bound every loop of the search. Stage1 caps the samples drawn per Stage-1 run, Stage2 and
// Stage3 cap the trials spent on one Stage-1 sample and Restarts caps how often Stage 1 reruns.
type Limits struct {
	Stage1, Stage2, Stage3, Restarts uint64
}

var DefaultLimits = Limits{Stage1: 1 << 32, Stage2: 100, Stage3: 1 << 26, Restarts: 1 << 20}

// Config configures a Searcher. A nil Bias disables the bias check and a zero Limits selects
// DefaultLimits. Logf, if set, receives a line on every Stage-3 restart and on success.
type Config struct {
	CV     ChainingValue
	Bias   *Bias
	Limits Limits
	Logf   func(format string, v ...any)
}

// Stats counts the work done by the last call to Search.
type Stats struct {
	Stage1, Stage2, Stage3, Restarts uint64
}

var (
	ErrInvalidConfig = errors.New("md4coll: invalid configuration")
	ErrExhausted     = errors.New("md4coll: search exhausted")
)

// ExhaustedError reports the stage whose limit ended the search.
type ExhaustedError struct {
	Stage int
	Stats Stats
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("md4coll: search exhausted at stage %d after %d restarts", e.Stage, e.Stats.Restarts)
}

func (e *ExhaustedError) Unwrap() error { return ErrExhausted }

// ParseChainingValue parses four integers in any base strconv accepts with base 0.
func ParseChainingValue(words []string) (ChainingValue, error) {
	var cv ChainingValue
	if len(words) != len(cv) {
		return cv, fmt.Errorf("%w: chaining value needs %d words, got %d", ErrInvalidConfig, len(cv), len(words))
	}
	for i, w := range words {
		v, err := strconv.ParseUint(w, 0, 32)
		if err != nil {
			return cv, fmt.Errorf("%w: chaining value word %d: %v", ErrInvalidConfig, i, err)
		}
		cv[i] = uint32(v)
	}
	return cv, nil
}

// Generate searches for a colliding pair from cv whose X[5] carries b at bit shift, using a fresh
// ChaCha source seeded by NewSeed.
func Generate(cv ChainingValue, b uint8, shift uint) (Block, Block, error) {
	return generate(Config{CV: cv, Bias: &Bias{b, shift}})
}

// GenerateUnbiased is Generate without the bias check.
func GenerateUnbiased(cv ChainingValue) (Block, Block, error) {
	return generate(Config{CV: cv})
}

func generate(cfg Config) (Block, Block, error) {
	s, err := New(NewChaCha(NewSeed()), cfg)
	if err != nil {
		return Block{}, Block{}, err
	}
	p, err := s.Search()
	return p[0], p[1], err
}
