package lib

import (
	"fmt"
	"math"
	"testing"
)

func TestCircularPadArrayOnCircle(t *testing.T) {
	for _, numPins := range []int{1, 2, 3, 4, 6, 8, 12} {
		pads, err := CircularPadArray(numPins, 4.5, ThruHole, PadCircle, 1.4, 1.4, 0.8, 0)
		if err != nil {
			t.Fatalf("numPins=%d: %s", numPins, err)
		}

		if len(pads) != numPins {
			t.Fatalf("numPins=%d: got %d pads", numPins, len(pads))
		}

		for i, pad := range pads {
			if want := fmt.Sprintf("%d", i+1); pad.Number != want {
				t.Errorf("numPins=%d: pad %d numbered %s, want %s", numPins, i, pad.Number, want)
			}

			r2 := pad.X*pad.X + pad.Y*pad.Y
			if math.Abs(r2-4.5*4.5) > 0.02 {
				t.Errorf("numPins=%d: pad %s off circle: x=%g y=%g", numPins, pad.Number, pad.X, pad.Y)
			}
		}
	}
}

/*
Fixes the Y sign flip: angle space is counter-clockwise, the board
view is clockwise because Y grows downward
*/
func TestCircularPadArrayQuadrants(t *testing.T) {
	pads, err := CircularPadArray(4, 10, ThruHole, PadCircle, 1.4, 1.4, 0.8, 0)
	if err != nil {
		t.Fatal(err)
	}

	want := [][2]float64{{10, 0}, {0, -10}, {-10, 0}, {0, 10}}
	for i, w := range want {
		if pads[i].X != w[0] || pads[i].Y != w[1] {
			t.Errorf("pad %d at (%g, %g), want (%g, %g)", i+1, pads[i].X, pads[i].Y, w[0], w[1])
		}
	}
}

func TestCircularPadArrayInvalid(t *testing.T) {
	if _, err := CircularPadArray(0, 4.5, ThruHole, PadCircle, 1.4, 1.4, 0.8, 0); err == nil {
		t.Error("zero pins accepted")
	}
	if _, err := CircularPadArray(4, -1, ThruHole, PadCircle, 1.4, 1.4, 0.8, 0); err == nil {
		t.Error("negative radius accepted")
	}
	if _, err := CircularPadArray(4, 4.5, ThruHole, PadCircle, 1.4, 1.4, 0, 0); err == nil {
		t.Error("through-hole pads without a drill accepted")
	}
}

/*
Fixes the counter-clockwise numbering convention: pin 1 leftmost on
the bottom row, the highest number leftmost on the top row
*/
func TestDualRowNumbering(t *testing.T) {
	pads, err := DualRowSMDPads(8, 1.27, 0.6, 1.5, 5.4)
	if err != nil {
		t.Fatal(err)
	}

	if len(pads) != 8 {
		t.Fatalf("got %d pads, want 8", len(pads))
	}

	// bottom row, left to right
	if pads[0].Number != "1" || pads[0].X != -1.905 || pads[0].Y != 2.7 {
		t.Errorf("first bottom pad: number %s at (%g, %g)", pads[0].Number, pads[0].X, pads[0].Y)
	}
	if pads[3].Number != "4" || pads[3].X != 1.905 {
		t.Errorf("last bottom pad: number %s at x=%g", pads[3].Number, pads[3].X)
	}

	// top row, reverse numbered
	if pads[4].Number != "8" || pads[4].X != -1.905 || pads[4].Y != -2.7 {
		t.Errorf("first top pad: number %s at (%g, %g)", pads[4].Number, pads[4].X, pads[4].Y)
	}
	if pads[7].Number != "5" || pads[7].X != 1.905 {
		t.Errorf("last top pad: number %s at x=%g", pads[7].Number, pads[7].X)
	}
}

func TestDualRowOddPinCount(t *testing.T) {
	for _, numPins := range []int{3, 7} {
		if _, err := DualRowSMDPads(numPins, 1.27, 0.6, 1.5, 5.4); err == nil {
			t.Errorf("odd pin count %d accepted", numPins)
		}
	}
}

func TestExposedPadPasteGrid(t *testing.T) {
	pads, err := ExposedPadPasteGrid(5, 5, 3, 3, 0.40, "EP")
	if err != nil {
		t.Fatal(err)
	}

	if len(pads) != 10 {
		t.Fatalf("got %d pads, want 1 main + 9 windows", len(pads))
	}

	main := pads[0]
	for _, layer := range main.Layers {
		if layer == "F.Paste" {
			t.Error("main pad carries the paste layer")
		}
	}

	area := 0.0
	for _, pad := range pads[1:] {
		if pad.Number != "EP" {
			t.Errorf("paste window numbered %s, want EP", pad.Number)
		}
		if len(pad.Layers) != 1 || pad.Layers[0] != "F.Paste" {
			t.Errorf("paste window on layers %v", pad.Layers)
		}

		area += pad.Width * pad.Height
	}

	if want := 5.0 * 5.0 * 0.40; math.Abs(area-want) > 0.05 {
		t.Errorf("total paste area %g, want about %g", area, want)
	}
}

func TestExposedPadWindowSpacing(t *testing.T) {
	pads, err := ExposedPadPasteGrid(6, 4, 2, 1, 0.5, "")
	if err != nil {
		t.Fatal(err)
	}

	// half-gap to each edge: centers at -1 and +1 for a 6mm pad, 2 cols
	if pads[1].X != -1 || pads[2].X != 1 {
		t.Errorf("window centers at x=%g and x=%g, want -1 and 1", pads[1].X, pads[2].X)
	}
	if pads[1].Y != 0 {
		t.Errorf("single-row window at y=%g, want 0", pads[1].Y)
	}
	if pads[1].Number != "EP" {
		t.Errorf("default pad number %s, want EP", pads[1].Number)
	}
}

func TestExposedPadInvalid(t *testing.T) {
	if _, err := ExposedPadPasteGrid(5, 5, 0, 3, 0.4, "EP"); err == nil {
		t.Error("zero grid columns accepted")
	}
	if _, err := ExposedPadPasteGrid(5, 5, 3, 3, 0, "EP"); err == nil {
		t.Error("zero coverage accepted")
	}
	if _, err := ExposedPadPasteGrid(5, 5, 3, 3, 1.2, "EP"); err == nil {
		t.Error("coverage above 1 accepted")
	}
}

func TestRound3DropsFloatNoise(t *testing.T) {
	if v := round3(-1.2e-16); v != 0 || math.Signbit(v) {
		t.Errorf("round3(-1.2e-16) = %g", v)
	}
	if v := round3(2.53999999999); v != 2.54 {
		t.Errorf("round3 = %g, want 2.54", v)
	}
}
