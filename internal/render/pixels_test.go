package render

import (
	"image/color"
	"testing"
)

func TestFillBoolRGBA(t *testing.T) {
	cells := []bool{true, false, true}
	buf := make([]byte, 4*len(cells))
	fillBoolRGBA(buf, cells, color.White, color.Black)

	want := []byte{
		0xff, 0xff, 0xff, 0xff,
		0x00, 0x00, 0x00, 0xff,
		0xff, 0xff, 0xff, 0xff,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %#x, expected %#x", i, buf[i], want[i])
		}
	}
}
