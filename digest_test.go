package md4coll

import (
	"bytes"
	"encoding/hex"
	"golang.org/x/crypto/md4"
	"testing"
)

func TestDigestVectors(t *testing.T) {
	for _, tc := range []struct{ in, out string }{
		{"", "31d6cfe0d16ae931b73c59d7e0c089c0"},
		{"a", "bde52cb31de33e46245e05fbdbd6fb24"},
		{"abc", "a448017aaf21d8525fc10ae87aa6729d"},
		{"message digest", "d9130a8164549fe818874806e1c7014b"},
		{"abcdefghijklmnopqrstuvwxyz", "d79e1c308aa5bbcdeea8ed63df412da9"},
		{"12345678901234567890123456789012345678901234567890123456789012345678901234567890",
			"e33b4ddc9c38f2199c3e7b164fcc0536"},
	} {
		sum := Sum(IV, []byte(tc.in))
		if got := hex.EncodeToString(sum[:]); got != tc.out {
			t.Errorf("Sum(%q) = %s, want %s", tc.in, got, tc.out)
		}
	}
}

func TestDigestMatchesXCrypto(t *testing.T) {
	src := NewChaCha(7)
	msg := make([]byte, 3*BlockSize+17)
	for i := range msg {
		msg[i] = byte(src.Uint32())
	}
	for n := 0; n <= len(msg); n++ {
		ref := md4.New()
		ref.Write(msg[:n])
		want := ref.Sum(nil)

		/* Uneven writes exercise the carry. */
		d := NewMD4()
		for rest, step := msg[:n], 1; len(rest) > 0; step = step*3%61 + 1 {
			if step > len(rest) {
				step = len(rest)
			}
			d.Write(rest[:step])
			rest = rest[step:]
		}
		if got := d.Sum(nil); !bytes.Equal(got, want) {
			t.Fatalf("length %d: got %x, want %x", n, got, want)
		}
		if got := d.Sum(nil); !bytes.Equal(got, want) {
			t.Fatalf("length %d: second Sum changed state", n)
		}
	}
}

func TestDigestChainingValue(t *testing.T) {
	src := NewLCG(9)
	cv := ChainingValue{src.Uint32(), src.Uint32(), src.Uint32(), src.Uint32()}
	var b Block
	for i := range b {
		b[i] = src.Uint32()
	}

	/* One full block followed by the padding block of a 64-byte message. */
	mid := Compress(cv, &b)
	pad := Block{0: 0x80, 14: BlockSize << 3}
	want := Compress(mid, &pad)

	d := NewDigest(cv)
	d.Write(b.Bytes())
	got := d.Sum(nil)
	for i, w := range want {
		if v := uint32(got[i<<2]) | uint32(got[i<<2+1])<<8 | uint32(got[i<<2+2])<<16 | uint32(got[i<<2+3])<<24; v != w {
			t.Fatalf("word %d = %08x, want %08x", i, v, w)
		}
	}

	d.Reset()
	d.Write(b.Bytes())
	if !bytes.Equal(d.Sum(nil), got) {
		t.Error("Reset did not restore the chaining value")
	}
}

func TestBlockBytes(t *testing.T) {
	b := Block{0: 0x04030201, 15: 0xdeadbeef}
	p := b.Bytes()
	if !bytes.Equal(p[:4], []byte{1, 2, 3, 4}) || !bytes.Equal(p[60:], []byte{0xef, 0xbe, 0xad, 0xde}) {
		t.Fatalf("Bytes = %x", p)
	}
	if back, err := BlockFromBytes(p); err != nil || back != b {
		t.Fatalf("BlockFromBytes = %08x, %v", back, err)
	}
	if _, err := BlockFromBytes(p[1:]); err == nil {
		t.Error("short block accepted")
	}
}
