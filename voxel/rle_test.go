package voxel

import (
	"bytes"
	"math/rand"
	"testing"
)

func roundTrip(t *testing.T, src []byte) {
	t.Helper()
	var ch Channel
	ch.Compress(src)
	dst := make([]byte, len(src))
	if err := ch.Decompress(dst); err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !bytes.Equal(src, dst) {
		t.Fatalf("round trip mismatch for %d bytes", len(src))
	}
}

func TestRoundTripPatterns(t *testing.T) {
	roundTrip(t, nil)
	roundTrip(t, []byte{0x42})
	roundTrip(t, []byte{1, 2, 3, 4, 5})
	roundTrip(t, bytes.Repeat([]byte{0x00}, 100000))
	roundTrip(t, bytes.Repeat([]byte{0xAB}, 3))
	roundTrip(t, []byte{7, 7})                         // too short for a homogeneous run
	roundTrip(t, append(bytes.Repeat([]byte{9}, 50), 1, 2, 3))
	roundTrip(t, append([]byte{1, 2, 3}, bytes.Repeat([]byte{9}, 50)...))
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for _, size := range []int{1, 127, 128, 129, 16383, 16384, 1 << 21} {
		src := make([]byte, size)
		for i := range src {
			// Mix long runs with noise.
			if rng.Intn(4) == 0 {
				src[i] = byte(rng.Intn(256))
			} else if i > 0 {
				src[i] = src[i-1]
			}
		}
		roundTrip(t, src)
	}
}

func TestCompressionShape(t *testing.T) {
	// 500 identical bytes then 524 alternating: one homogeneous run, one
	// heterogeneous run.
	src := bytes.Repeat([]byte{0x7A}, 500)
	for i := 0; i < 262; i++ {
		src = append(src, 0x01, 0x02)
	}
	var ch Channel
	ch.Compress(src)

	buf := ch.Bytes()
	// Homogeneous run of 500: count field (500<<1) = 1000 needs two 7-bit
	// groups, then one payload byte.
	if buf[0]&rleFlagHetero != 0 {
		t.Fatal("first run must be homogeneous")
	}
	if buf[0]&rleFlagMore == 0 {
		t.Fatal("count 500 needs a second group")
	}
	if buf[2] != 0x7A {
		t.Fatalf("homogeneous payload = %#x", buf[2])
	}
	// Second run starts at offset 3 and must be heterogeneous with 524
	// literals trailing.
	if buf[3]&rleFlagHetero == 0 {
		t.Fatal("second run must be heterogeneous")
	}
	wantLen := 3 + 2 + 524
	if len(buf) != wantLen {
		t.Fatalf("compressed size = %d, want %d", len(buf), wantLen)
	}

	dst := make([]byte, len(src))
	if err := ch.Decompress(dst); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src, dst) {
		t.Fatal("decompressed buffer differs from input")
	}
}

func TestShortRunsStayLiteral(t *testing.T) {
	var ch Channel
	ch.Compress([]byte{5, 5, 1, 2})
	if ch.Bytes()[0]&rleFlagHetero == 0 {
		t.Fatal("a run of two must not become homogeneous")
	}
}

func TestDecompressBoundsChecked(t *testing.T) {
	var ch Channel
	ch.Compress(bytes.Repeat([]byte{3}, 64))

	// A destination that is too small must fail, not overrun.
	if err := ch.Decompress(make([]byte, 10)); err == nil {
		t.Fatal("expected ErrBufferOverflow for short destination")
	}

	// A truncated stream must fail cleanly.
	trunc := Channel{}
	trunc.SetBytes(ch.Bytes()[:1])
	if err := trunc.Decompress(make([]byte, 64)); err == nil {
		t.Fatal("expected ErrBufferOverflow for truncated stream")
	}
}
