package lib

import (
	"fmt"
	"math"
)

/*
Pad coordinates are rounded to three decimals so a regenerated
footprint diffs clean against the last one
*/
func round3(v float64) float64 {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return 0
	}

	return r
}

/*
Generate pads arranged on a circle, for TO-5 cans, MQ gas sensors
and similar radial packages. Pads are numbered 1..numPins starting
at startAngle and stepping 360/numPins degrees counter-clockwise in
angle space. KiCad's Y axis grows downward, so the Y component is
the negated sine: the angles stay conventional while the pads march
clockwise on screen.
*/
func CircularPadArray(
	numPins int, radius float64,
	padType PadType, shape PadShape,
	padWidth, padHeight, drill, startAngle float64,
) ([]Pad, error) {
	if numPins < 1 {
		return nil, fmt.Errorf("circular array: need at least one pin, got %d", numPins)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("circular array: radius must be positive, got %g", radius)
	}
	if padWidth <= 0 || padHeight <= 0 {
		return nil, fmt.Errorf("circular array: pad size must be positive")
	}

	layers := SMDLayers()
	if padType == ThruHole || padType == NPThruHole {
		layers = ThruHoleLayers()
	}

	pads := make([]Pad, 0, numPins)
	for i := 0; i < numPins; i++ {
		angle := (startAngle + (360.0/float64(numPins))*float64(i)) * math.Pi / 180.0
		pad := Pad{
			Number: fmt.Sprintf("%d", i+1),
			Type:   padType,
			Shape:  shape,
			X:      round3(radius * math.Cos(angle)),
			Y:      round3(-radius * math.Sin(angle)),
			Width:  padWidth,
			Height: padHeight,
			Drill:  drill,
			Layers: layers,
		}
		if err := pad.Validate(); err != nil {
			return nil, fmt.Errorf("circular array: %w", err)
		}

		pads = append(pads, pad)
	}

	return pads, nil
}

/*
Generate SMD pads in two parallel rows for SOIC, TSSOP and friends.
The bottom row (positive Y) carries pins 1..N/2 left to right; the
top row carries N/2+1..N in reverse, so the leftmost top pad has the
highest number. That is the counter-clockwise numbering every
dual-in-line package uses, and it encodes where pin 1 sits.
*/
func DualRowSMDPads(
	numPins int, pitch, padWidth, padHeight, rowSpacing float64,
) ([]Pad, error) {
	if numPins < 2 || numPins%2 != 0 {
		return nil, fmt.Errorf("dual row: pin count must be even and positive, got %d", numPins)
	}
	if pitch <= 0 {
		return nil, fmt.Errorf("dual row: pitch must be positive, got %g", pitch)
	}
	if rowSpacing <= 0 {
		return nil, fmt.Errorf("dual row: row spacing must be positive, got %g", rowSpacing)
	}
	if padWidth <= 0 || padHeight <= 0 {
		return nil, fmt.Errorf("dual row: pad size must be positive")
	}

	perSide := numPins / 2
	startX := -pitch * float64(perSide-1) / 2

	pads := make([]Pad, 0, numPins)
	for i := 0; i < perSide; i++ {
		pads = append(pads, Pad{
			Number: fmt.Sprintf("%d", i+1),
			Type:   SMD,
			Shape:  PadRect,
			X:      round3(startX + pitch*float64(i)),
			Y:      round3(rowSpacing / 2),
			Width:  padWidth,
			Height: padHeight,
			Layers: SMDLayers(),
		})
	}
	for i := 0; i < perSide; i++ {
		pads = append(pads, Pad{
			Number: fmt.Sprintf("%d", numPins-i),
			Type:   SMD,
			Shape:  PadRect,
			X:      round3(startX + pitch*float64(i)),
			Y:      round3(-rowSpacing / 2),
			Width:  padWidth,
			Height: padHeight,
			Layers: SMDLayers(),
		})
	}

	return pads, nil
}

/*
Generate a QFN/DFN exposed pad with a segmented paste stencil.

A solid paste deposit under a large thermal pad traps flux gases and
floats the package during reflow; the standard mitigation is a grid
of small stencil windows at roughly 40% coverage. The main pad keeps
copper and mask but no paste layer, and gridCols x gridRows paste-only
rectangles are spread evenly across it, sized so their combined area
approximates padWidth * padHeight * pasteCoverage.

Window proportions follow the pad's aspect ratio through a square-root
scale factor on the width. Once both dimensions are rounded the
per-window area is an approximation, not a guarantee; only the total
is held near the target.

Every window shares the main pad's number: they are one logical pad
with several paste apertures, and tools that group pads by number
rely on that.
*/
func ExposedPadPasteGrid(
	padWidth, padHeight float64,
	gridCols, gridRows int,
	pasteCoverage float64,
	padNumber string,
) ([]Pad, error) {
	if padWidth <= 0 || padHeight <= 0 {
		return nil, fmt.Errorf("exposed pad: pad size must be positive")
	}
	if gridCols < 1 || gridRows < 1 {
		return nil, fmt.Errorf("exposed pad: grid must be at least 1x1, got %dx%d", gridCols, gridRows)
	}
	if pasteCoverage <= 0 || pasteCoverage > 1 {
		return nil, fmt.Errorf("exposed pad: paste coverage must be in (0, 1], got %g", pasteCoverage)
	}
	if padNumber == "" {
		padNumber = "EP"
	}

	pads := []Pad{{
		Number: padNumber,
		Type:   SMD,
		Shape:  PadRect,
		Width:  padWidth,
		Height: padHeight,
		Layers: SMDNoPasteLayers(),
	}}

	windows := float64(gridCols * gridRows)
	totalPasteArea := padWidth * padHeight * pasteCoverage
	windowW := round3(math.Sqrt(totalPasteArea/windows) * math.Sqrt(padWidth/padHeight))
	windowH := round3(totalPasteArea / (windows * windowW))

	/*
		Window centers sit on a uniform grid with a half-gap to each
		pad edge, never edge-flush.
	*/
	xSpacing := padWidth / float64(gridCols+1)
	ySpacing := padHeight / float64(gridRows+1)

	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			pads = append(pads, Pad{
				Number: padNumber,
				Type:   SMD,
				Shape:  PadRect,
				X:      round3(-padWidth/2 + xSpacing*float64(col+1)),
				Y:      round3(-padHeight/2 + ySpacing*float64(row+1)),
				Width:  windowW,
				Height: windowH,
				Layers: PasteOnlyLayers(),
			})
		}
	}

	return pads, nil
}
