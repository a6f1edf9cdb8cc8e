package md4coll

import "testing"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func BenchmarkDigest(b *testing.B) {
	d, msg := NewDigest(IV), make([]byte, 1<<10)
	sum := make([]byte, 0, Size)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Write(msg)
		d.Sum(sum[:0])
	}
	b.StopTimer()
	d.Reset()
}

func BenchmarkCompress(b *testing.B) {
	var blk Block
	cv := IV
	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		blk[0] = uint32(i)
		cv = Compress(cv, &blk)
	}
}

// BenchmarkNewSeed covers the xxh3 condensation of the seed material.
func BenchmarkNewSeed(b *testing.B) {
	var seed uint64
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seed ^= NewSeed()
	}
	b.StopTimer()
	_ = seed
}

// BenchmarkNewChaCha covers the blake3 key derivation and cipher setup.
func BenchmarkNewChaCha(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewChaCha(uint64(i))
	}
}

func BenchmarkChaCha(b *testing.B) {
	src := NewChaCha(0)
	var w uint32
	b.SetBytes(4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w ^= src.Uint32()
	}
	b.StopTimer()
	_ = w
}

// BenchmarkTrial measures one Stage-3 trial on a candidate that already passed Stage 2.
func BenchmarkTrial(b *testing.B) {
	if testing.Short() {
		b.Skip("finding a candidate is slow")
	}
	st := candidate(b, 300, nil)
	s := mustSearcher(b, NewChaCha(301), Config{CV: IV})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.draw(&st[0], &st[1]) {
			extend(&st[0], &st[1], 48)
		}
	}
}
