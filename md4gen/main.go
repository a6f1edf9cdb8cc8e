package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	. "fmt"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/md4coll"
	"github.com/p7r0x7/vainpath"
	. "github.com/spf13/pflag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid = 0, 1, 2

func main() { os.Exit(program()) }

// help prints a usage menu. To consistently correctly render this menu in most terminal windows,
// its content should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "md4gen" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "Two 64-byte blocks with one MD4 compression output.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-btv] [-B <uint8>] [-S <uint>] [-r <uint>] [--seed <uint>]"+n,
		spaces, "[--legacy-rng] [--unbiased] [-o PATH] [--quiet|no-codes] [--strict|raw]"+n,
		spaces, "[IV0 IV1 IV2 IV3]"+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. The four optional integers replace the standard MD4 chaining value and"+n+
		"may be written in base-prefixed binary, octal, hexadecimal, or decimal."+n)
}

// This program is a command-line interface for md4coll: it configures one search from its flags
// and arguments, runs it to completion and prints the pair it finds.
func program() int {
	if pHelp {
		help()
		return success
	}

	cv := md4coll.IV
	if NArg() > 0 {
		var err error
		if cv, err = md4coll.ParseChainingValue(Args()); err != nil {
			return warn(err)
		}
	}

	cfg := md4coll.Config{CV: cv, Limits: md4coll.DefaultLimits}
	cfg.Limits.Restarts = pRestarts
	if !pUnbiased {
		cfg.Bias = &md4coll.Bias{Byte: pBiasByte, Shift: pBiasShift}
	}
	if pVerbose && !pQuiet {
		cfg.Logf = func(format string, v ...any) {
			Fprintf(os.Stderr, purp+format+zero+n, v...)
		}
	}

	if !CommandLine.Changed("seed") {
		pSeed = md4coll.NewSeed()
	}
	var src md4coll.Source = md4coll.NewChaCha(pSeed)
	if pLegacy {
		src = md4coll.NewLCG(uint32(pSeed))
	}
	s, err := md4coll.New(src, cfg)
	if err != nil {
		return warn(err)
	}
	if !(pQuiet || pRaw) {
		Fprint(os.Stderr, "seed ", und, pSeed, zero, n)
	}

	start := time.Now()
	p, err := s.Search()
	elapsed := time.Since(start)
	if err != nil {
		return warn(err)
	}

	status := success
	if pRaw {
		os.Stdout.Write(p[0].Bytes())
		os.Stdout.Write(p[1].Bytes())
	} else {
		render(os.Stdout, &p, pBase64, yell, zero)
		if pVerify {
			verify(os.Stdout, cv, &p)
		}
	}

	if pOut != "" {
		if err = os.WriteFile(pOut, append(p[0].Bytes(), p[1].Bytes()...), 0o644); err != nil {
			status = warn(err)
		} else if !(pQuiet || pRaw) {
			if pNoCodes {
				Fprint(os.Stderr, "wrote ", filepath.Clean(pOut), n)
			} else {
				Fprint(os.Stderr, "wrote ", und, vainpath.Simplify(pOut), zero, n)
			}
		}
	}

	if pTime && !(pQuiet || pRaw) {
		if elapsed.Microseconds() > 99 {
			elapsed = elapsed.Truncate(10 * time.Microsecond)
		}
		st := s.Stats()
		Fprint(os.Stderr, purp, elapsed, zero, " (", st.Restarts, " restarts, ",
			st.Stage1, " stage-1 samples, ", st.Stage2, " stage-2 and ", st.Stage3, " stage-3 trials)", n)
	}
	return status
}

// render prints each block of p on its own line, either as sixteen words or as base64.
func render(w io.Writer, p *md4coll.Pair, b64 bool, on, off string) {
	for i := range p {
		Fprint(w, on)
		if b64 {
			Fprint(w, base64.StdEncoding.EncodeToString(p[i].Bytes()))
		} else {
			for j, word := range p[i] {
				if j > 0 {
					Fprint(w, " ")
				}
				Fprintf(w, "%08x", word)
			}
		}
		Fprint(w, off, n)
	}
}

// verify prints the MD4 digest of each block, computed from cv, followed by its SHA-256 digest.
func verify(w io.Writer, cv md4coll.ChainingValue, p *md4coll.Pair) {
	for i := range p {
		msg := p[i].Bytes()
		sum := md4coll.Sum(cv, msg)
		Fprint(w, "MD4 ", hex.EncodeToString(sum[:]), "  SHA-256 ", Sprintf("%x", sha256.Sum256(msg)), n)
	}
}

// warn reports err on stderr, unless quieted, and returns the exit code its kind calls for.
func warn(err error) int {
	if pStrict {
		panic(err)
	}
	if !pQuiet {
		Fprint(os.Stderr, yell, err, zero, n)
	}
	if errors.Is(err, md4coll.ErrInvalidConfig) {
		return invalid
	}
	return failure
}
