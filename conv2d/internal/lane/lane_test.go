package lane

import "testing"

func TestDup(t *testing.T) {
	v := Dup(2.5)
	for i, got := range v {
		if got != 2.5 {
			t.Fatalf("lane %d = %v, expected 2.5", i, got)
		}
	}
}

func TestMulAdd(t *testing.T) {
	acc := F32x4{1, 2, 3, 4}
	v := F32x4{10, 20, 30, 40}
	w := Dup(0.5)

	got := MulAdd(acc, v, w)
	want := F32x4{6, 12, 18, 24}
	if got != want {
		t.Fatalf("MulAdd = %v, expected %v", got, want)
	}
	if acc != (F32x4{1, 2, 3, 4}) {
		t.Fatal("MulAdd mutated its accumulator argument")
	}
}

func TestDivScalar(t *testing.T) {
	got := DivScalar(F32x4{2, 4, 6, 8}, 2)
	if got != (F32x4{1, 2, 3, 4}) {
		t.Fatalf("DivScalar = %v", got)
	}
}

func TestExt(t *testing.T) {
	a := F32x4{0, 1, 2, 3}
	b := F32x4{4, 5, 6, 7}

	tests := []struct {
		n    int
		want F32x4
	}{
		{0, F32x4{0, 1, 2, 3}},
		{1, F32x4{1, 2, 3, 4}},
		{2, F32x4{2, 3, 4, 5}},
		{3, F32x4{3, 4, 5, 6}},
	}

	for _, tt := range tests {
		if got := Ext(a, b, tt.n); got != tt.want {
			t.Errorf("Ext(n=%d) = %v, expected %v", tt.n, got, tt.want)
		}
	}
}

func TestGatherRGB(t *testing.T) {
	// One channel of four interleaved RGB pixels.
	src := []uint8{
		10, 0, 0,
		20, 0, 0,
		30, 0, 0,
		40, 0, 0,
	}

	if got := GatherRGB(src); got != (F32x4{10, 20, 30, 40}) {
		t.Fatalf("GatherRGB = %v", got)
	}

	// Offsetting by one byte gathers the next channel.
	if got := GatherRGB(src[1:]); got != (F32x4{0, 0, 0, 0}) {
		t.Fatalf("GatherRGB channel offset = %v", got)
	}
}

func TestGatherRGBN(t *testing.T) {
	src := []uint8{7, 0, 0, 9, 0, 0}

	got := GatherRGBN(src, 2)
	if got != (F32x4{7, 9, 0, 0}) {
		t.Fatalf("GatherRGBN(2) = %v", got)
	}
	if got := GatherRGBN(src, 0); got != (F32x4{}) {
		t.Fatalf("GatherRGBN(0) = %v", got)
	}
}

func TestClampU8(t *testing.T) {
	got := ClampU8(F32x4{-1, 0.9, 255.7, 300})
	want := [4]uint8{0, 0, 255, 255}
	if got != want {
		t.Fatalf("ClampU8 = %v, expected %v", got, want)
	}

	// Truncation, not rounding.
	got = ClampU8(F32x4{1.5, 200.99, 254.0001, 0})
	want = [4]uint8{1, 200, 254, 0}
	if got != want {
		t.Fatalf("ClampU8 truncation = %v, expected %v", got, want)
	}
}

func TestDeinterleaveInterleaveRoundTrip(t *testing.T) {
	src := make([]uint8, 48)
	for i := range src {
		src[i] = uint8(i * 5)
	}

	r, g, b := DeinterleaveRGB16(src)
	for i := 0; i < 16; i++ {
		if r[i] != src[i*3] || g[i] != src[i*3+1] || b[i] != src[i*3+2] {
			t.Fatalf("deinterleave mismatch at pixel %d", i)
		}
	}

	dst := make([]uint8, 48)
	InterleaveRGB16(dst, r, g, b)
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("round trip mismatch at byte %d: %d != %d", i, dst[i], src[i])
		}
	}
}

func TestDeinterleaveRGB8(t *testing.T) {
	src := make([]uint8, 24)
	for i := range src {
		src[i] = uint8(i)
	}

	r, g, b := DeinterleaveRGB8(src)
	for i := 0; i < 8; i++ {
		if r[i] != src[i*3] || g[i] != src[i*3+1] || b[i] != src[i*3+2] {
			t.Fatalf("mismatch at pixel %d", i)
		}
	}
}

func TestWidenPack(t *testing.T) {
	var run [16]uint8
	for i := range run {
		run[i] = uint8(i * 16)
	}

	wide := WidenU8x16(run)
	for i := 0; i < 16; i++ {
		if wide[i/Width][i%Width] != float32(run[i]) {
			t.Fatalf("widen mismatch at %d", i)
		}
	}

	if got := PackU8x16(wide); got != run {
		t.Fatalf("PackU8x16 round trip = %v", got)
	}
}

func TestWidenU8x8(t *testing.T) {
	run := [8]uint8{1, 2, 3, 4, 5, 6, 7, 8}
	wide := WidenU8x8(run)
	if wide[0] != (F32x4{1, 2, 3, 4}) || wide[1] != (F32x4{5, 6, 7, 8}) {
		t.Fatalf("WidenU8x8 = %v", wide)
	}
}
