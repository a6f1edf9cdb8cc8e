package md4coll

import (
	"crypto/rand"
	"encoding/binary"
	"github.com/aead/chacha20/chacha"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"os"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Word sources feeding the search. None of them need be cryptographically secure; they need only
// be cheap, well distributed and exactly replayable from a seed.

// Source produces the 32-bit words the search draws its state from. A Source is owned by a single
// search and is never reseeded while that search runs.
type Source interface {
	Uint32() uint32
}

const (
	chachaRounds = 8
	chachaBuf    = 512
	keyContext   = "github.com/p7r0x7/md4coll 2022-03-14 word source v1"
)

// ChaCha is a Source reading words from a ChaCha8 keystream.
type ChaCha struct {
	stream *chacha.Cipher
	buf    [chachaBuf]byte
	pos    int
}

// NewChaCha returns a ChaCha source whose key and nonce are derived from seed. Equal seeds yield
// equal word sequences.
func NewChaCha(seed uint64) *ChaCha {
	var material [8]byte
	var derived [chacha.KeySize + chacha.XNonceSize]byte
	binary.LittleEndian.PutUint64(material[:], seed)
	blake3.DeriveKey(keyContext, material[:], derived[:])

	/* Only a wrong key or nonce length can fail here. */
	stream, err := chacha.NewCipher(derived[chacha.KeySize:], derived[:chacha.KeySize], chachaRounds)
	if err != nil {
		panic(err)
	}
	return &ChaCha{stream: stream, pos: chachaBuf}
}

func (c *ChaCha) Uint32() uint32 {
	if c.pos == chachaBuf {
		for i := range c.buf {
			c.buf[i] = 0
		}
		c.stream.XORKeyStream(c.buf[:], c.buf[:])
		c.pos = 0
	}
	w := binary.LittleEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return w
}

// LCG is the linear congruential generator x' = x*0x08088405 + 1, which returns x*0x08088405.
// It matches the word stream of the legacy Windows build, selected with --legacy-rng.
type LCG struct{ x uint32 }

func NewLCG(seed uint32) *LCG { return &LCG{seed} }

func (l *LCG) Uint32() uint32 {
	w := l.x * 0x08088405
	l.x = w + 1
	return w
}

// NewSeed mixes the wall clock, the process ID and, where available, platform entropy into one
// 64-bit seed. Call it once per run.
func NewSeed() uint64 {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[0:], uint64(time.Now().UnixNano()))
	binary.LittleEndian.PutUint64(b[8:], uint64(os.Getpid())<<16)
	_, _ = rand.Read(b[16:]) /* Zeroes on failure still leave the clock and pid. */
	return xxh3.Hash(b[:])
}
