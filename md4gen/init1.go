package main

import (
	"github.com/p7r0x7/md4coll"
	. "github.com/spf13/pflag"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pOut, pNoCodesDefault = "", false
var pBiasByte, pBiasShift, pRestarts, pSeed = uint8(0), uint(0), uint64(0), uint64(0)
var pHelp, pBase64, pLegacy, pNoCodes, pQuiet, pRaw, pStrict, pTime, pUnbiased, pVerbose, pVerify bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	BoolVarP(&pBase64, "base64", "b", false,
		purp+"render blocks in base64"+zero+" (default hex words)")

	Uint8VarP(&pBiasByte, "bias-byte", "B", 0,
		purp+"byte the search pins into the first derived message word"+zero)

	UintVarP(&pBiasShift, "bias-shift", "S", 0,
		purp+"bit position of the pinned byte, at most 31"+zero)

	BoolVar(&pLegacy, "legacy-rng", false,
		purp+"draw words from the legacy LCG instead of ChaCha8"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	StringVarP(&pOut, "out", "o", "",
		purp+"also write both blocks, unencoded, to this file"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY blocks"+zero+
			n+"(enables --no-codes)")

	BoolVar(&pRaw, "raw", false,
		purp+"return the unencoded, non-deliminated bytes of both"+zero+
			n+purp+"blocks"+zero+" (enables --strict)")

	Uint64VarP(&pRestarts, "restarts", "r", md4coll.DefaultLimits.Restarts,
		purp+"give up after this many Stage-1 reruns"+zero)

	Uint64Var(&pSeed, "seed", 0,
		purp+"replay the search seeded by this integer"+zero+" (default random)")

	BoolVar(&pStrict, "strict", false,
		purp+"cause md4gen to panic on any error"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken and work done by the search"+zero)

	BoolVar(&pUnbiased, "unbiased", false,
		purp+"search without pinning any byte"+zero)

	BoolVar(&pVerbose, "verbose", false,
		purp+"report restarts as the search runs"+zero)

	BoolVarP(&pVerify, "verify", "v", false,
		purp+"print the MD4 and SHA-256 digests of each block"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
	pStrict = pStrict || pRaw
}
