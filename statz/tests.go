package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/p7r0x7/md4coll"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const ints = uint32(5e4)

// meanBias returns the mean deviation, in percent, of each bit position's count of ones from
// half of the words sampled.
func meanBias(words []uint32) float64 {
	var tally [32]int64
	for _, w := range words {
		for i := range tally {
			tally[i] += int64(w >> i & 1)
		}
	}
	var total int64
	half := int64(len(words) >> 1)
	for _, t := range tally {
		if t -= half; t < 0 {
			total -= t
		} else {
			total += t
		}
	}
	return float64(total) / float64(len(tally)) / float64(half) * 100
}

func draw(src md4coll.Source) []uint32 {
	words := make([]uint32, ints)
	for i := range words {
		words[i] = src.Uint32()
	}
	return words
}

func sourceTests() {
	seed := md4coll.NewSeed()
	fmt.Printf("ChaCha8 Monobit test:        %5.3f%%\n", meanBias(draw(md4coll.NewChaCha(seed))))
	fmt.Printf("Legacy LCG Monobit test:     %5.3f%%\n", meanBias(draw(md4coll.NewLCG(uint32(seed)))))

	digests, in := make([]uint32, 0, ints*4), make([]byte, 4)
	for i := ints; i > 0; i-- {
		binary.BigEndian.PutUint32(in, i)
		sum := md4coll.Sum(md4coll.IV, in)
		for j := 0; j < md4coll.Size; j += 4 {
			digests = append(digests, binary.LittleEndian.Uint32(sum[j:]))
		}
	}
	fmt.Printf("MD4 integer Monobit test:    %5.3f%%\n", meanBias(digests))
}

// trialTest runs one short, bounded search and reports the time and cycles it spent per
// Stage-3 trial, Stage 1 and Stage 2 included.
func trialTest() {
	limits := md4coll.DefaultLimits
	limits.Stage3, limits.Restarts = 1<<16, 4
	s, err := md4coll.New(md4coll.NewChaCha(md4coll.NewSeed()), md4coll.Config{CV: md4coll.IV, Limits: limits})
	if err != nil {
		panic(err)
	}

	stop := make(chan struct{})
	hz := sampleHz(stop)
	start := time.Now()
	_, err = s.Search()
	elapsed := time.Since(start)
	close(stop)
	if err != nil && !errors.Is(err, md4coll.ErrExhausted) {
		panic(err)
	}

	st := s.Stats()
	if st.Stage3 == 0 {
		fmt.Println("Stage 3 never reached.")
		return
	}
	per := elapsed.Seconds() / float64(st.Stage3)
	fmt.Printf("Stage-3 trial:              %s", time.Duration(per*1e9))
	if c := hz() * per; c > 0 {
		fmt.Printf(" (%.4g cycles)", c)
	}
	fmt.Printf(" over %d trials\n", st.Stage3)
}
