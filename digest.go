package md4coll

import (
	"encoding/binary"
	"hash"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains a Go-specific API implementing the standard hash.Hash interface for MD4 from
// any chaining value, so that collisions found under a custom chaining value can be checked.

const (
	Size      = 16
	BlockSize = 64
)

type Digest struct {
	cv, s ChainingValue
	n     uint64
	carry []byte
}

// NewDigest returns an MD4 hash.Hash whose first block is compressed from cv rather than IV.
func NewDigest(cv ChainingValue) *Digest {
	return &Digest{cv: cv, s: cv, carry: make([]byte, 0, BlockSize)}
}

// NewMD4 returns a standard MD4 hash.Hash.
func NewMD4() hash.Hash { return NewDigest(IV) }

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return BlockSize }

func (d *Digest) Write(buf []byte) (int, error) {
	count := len(buf)
	d.n += uint64(count)
	if len(d.carry) > 0 {
		buf = append(d.carry, buf...)
		d.carry = d.carry[:0]
	}

	var b Block
	for len(buf) >= BlockSize {
		for i := range b {
			b[i] = binary.LittleEndian.Uint32(buf[i<<2:])
		}
		d.s = Compress(d.s, &b)
		buf = buf[BlockSize:]
	}
	if len(buf) > 0 {
		d.carry = append(d.carry, buf...)
	}
	return count, nil
}

// Sum appends the digest to in without changing the state of d.
func (d *Digest) Sum(in []byte) []byte {
	d0 := *d
	d0.carry = append(make([]byte, 0, 2*BlockSize), d.carry...)

	/* Padding: a one bit, zeroes up to 56 bytes mod 64, then the bit length. */
	var tmp [BlockSize + 8]byte
	tmp[0] = 0x80
	pad := (BlockSize + 55 - d.n%BlockSize) % BlockSize
	binary.LittleEndian.PutUint64(tmp[pad+1:], d.n<<3)
	d0.Write(tmp[:pad+9])

	for _, s := range d0.s {
		in = binary.LittleEndian.AppendUint32(in, s)
	}
	return in
}

func (d *Digest) Reset() {
	d.s, d.n, d.carry = d.cv, 0, d.carry[:0]
}

// Sum returns the MD4 digest of msg hashed from cv.
func Sum(cv ChainingValue, msg []byte) [Size]byte {
	var sum [Size]byte
	d := NewDigest(cv)
	d.Write(msg)
	d.Sum(sum[:0])
	return sum
}
