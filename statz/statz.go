package main

import (
	. "fmt"
	"github.com/dterei/gotsc"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/md4coll"
	"github.com/zeebo/blake3"
	"math"
	"runtime"
	"sync"
	"testing"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var sizes = [...]int{64, 512 << 10, 64 << 20, 1 << 30}
var bytes, calltime = []byte(nil), gotsc.TSCOverhead()

// algs are the one-shot digests compared at every size, in report order.
var algs = []struct {
	name string
	sum  func([]byte)
}{
	{"github.com/p7r0x7/md4coll", func(p []byte) { md4coll.Sum(md4coll.IV, p) }},
	{"github.com/minio/sha256-simd", func(p []byte) { sha256.Sum256(p) }},
	{"github.com/zeebo/blake3", func(p []byte) { blake3.Sum256(p) }},
}

// benchSum wraps a one-shot digest as a benchmark over the current input.
func benchSum(sum func([]byte)) func(b *testing.B) {
	return func(b *testing.B) {
		b.SetBytes(int64(len(bytes)))
		b.ResetTimer()
		for i := b.N; i > 0; i-- {
			sum(bytes)
		}
	}
}

// sampleHz polls the TSC in the background until stop is closed and returns a function that
// reports the mean cycles per second observed.
func sampleHz(stop <-chan struct{}) func() float64 {
	totalHz, polls, mut := uint64(0), uint64(0), &sync.Mutex{}
	if calltime > 0 {
		go func() {
			for {
				select {
				case <-stop:
					return
				default:
				}
				tsc1 := gotsc.BenchStart()
				time.Sleep(time.Millisecond)
				tsc2 := gotsc.BenchEnd()

				mut.Lock()
				totalHz += tsc2 - tsc1 - calltime
				polls++
				mut.Unlock()

				time.Sleep(time.Millisecond * 9)
			}
		}()
	}
	return func() float64 {
		mut.Lock()
		defer mut.Unlock()
		if polls == 0 {
			return 0
		}
		return float64(totalHz*1000) / float64(polls)
	}
}

func benchAlg(alg func(b *testing.B)) {
	const s = len(sizes)
	throughputs, speeds, usages := make([]float64, s), make([]float64, s), make([]float64, s)

	for i, v := range sizes {
		bytes = make([]byte, v)

		stop := make(chan struct{})
		hz := sampleHz(stop)
		r := testing.Benchmark(alg)
		close(stop)

		throughputs[i] = float64(r.Bytes*int64(r.N)) / r.T.Seconds() /* B/s */
		speeds[i] = hz() / throughputs[i]
		throughputs[i] /= 1e6 /* MB/s */
		usages[i] = float64(r.AllocedBytesPerOp())
	}

	Println("Speed " + fmtFloats(throughputs...) + "   MB/s")
	if calltime > 0 {
		Println("      " + fmtFloats(speeds...) + "   cpb")
	}
	Println("Usage " + fmtFloats(usages...) + "   B/op\n")
}

// fmtFloats renders each value in eight columns, keeping about seven significant digits.
func fmtFloats(f ...float64) string {
	var str string
	for _, v := range f {
		style := "%8.f"
		switch {
		case v > 1e8 || (v < 1e-6 && v != math.Trunc(v)):
			style = "%8.3g"
		case v != math.Trunc(v):
			digits := 7 - int(math.Ceil(math.Log10(math.Max(v, 10))))
			style = Sprintf("%%8.%df", max(digits, 0))
		}
		str += "  " + Sprintf(style, v)
	}
	return str
}

func main() {
	Printf("Running Statz on %d CPUs!\n%s/%s\n\n", runtime.NumCPU(), runtime.GOOS, runtime.GOARCH)
	t := time.Now()

	sourceTests()
	trialTest()

	Println("\n           64B      512K       64M       1G")
	for _, alg := range algs {
		Println(alg.name)
		benchAlg(benchSum(alg.sum))
	}

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
