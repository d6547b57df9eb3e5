package lib

import (
	"fmt"
	"strings"
	"testing"
)

/*
A predictable identifier source, so two runs can be compared outside
the opaque identifier fields
*/
type seqSource struct {
	n int
}

func (s *seqSource) Next() string {
	s.n++
	return fmt.Sprintf("id-%07d", s.n)
}

func testFootprintSpec(t *testing.T) *FootprintSpec {
	pads, err := DualRowSMDPads(8, 1.27, 0.6, 1.5, 5.4)
	if err != nil {
		t.Fatal(err)
	}

	return &FootprintSpec{
		Name:            "SOIC-8_MP1584EN",
		Description:     "SOIC-8, 1.27mm pitch, for MP1584EN buck converter",
		Tags:            "SOIC-8 MP1584EN buck converter",
		Attr:            AttrSMD,
		Pads:            pads,
		BodyWidth:       3.9,
		BodyHeight:      4.9,
		CourtyardMargin: 0.5,
	}
}

func stripIDs(document string) string {
	lines := strings.Split(document, "\n")
	kept := []string{}
	for _, line := range lines {
		if strings.Contains(line, "(uuid ") {
			continue
		}

		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

func TestGenerateFootprintIdempotent(t *testing.T) {
	spec := testFootprintSpec(t)

	first, err := GenerateFootprint(spec, NewUUIDSource())
	if err != nil {
		t.Fatal(err)
	}
	second, err := GenerateFootprint(spec, NewUUIDSource())
	if err != nil {
		t.Fatal(err)
	}

	if stripIDs(first) != stripIDs(second) {
		t.Error("two runs differ outside the identifier fields")
	}
}

func TestGenerateFootprintIdentifiersUnique(t *testing.T) {
	spec := testFootprintSpec(t)

	ids := &seqSource{}
	document, err := GenerateFootprint(spec, ids)
	if err != nil {
		t.Fatal(err)
	}

	// reference, value, body, courtyard, 8 pads
	if ids.n != 12 {
		t.Errorf("drew %d identifiers, want 12", ids.n)
	}

	seen := map[string]bool{}
	for _, line := range strings.Split(document, "\n") {
		if !strings.Contains(line, "(uuid ") {
			continue
		}
		if seen[line] {
			t.Errorf("identifier reused: %s", strings.TrimSpace(line))
		}
		seen[line] = true
	}
}

func TestGenerateFootprintCourtyard(t *testing.T) {
	spec := testFootprintSpec(t)

	document, err := GenerateFootprint(spec, &seqSource{})
	if err != nil {
		t.Fatal(err)
	}

	// half extents are body/2 + margin exactly
	if !strings.Contains(document, "(start -2.45 -2.95)") || !strings.Contains(document, "(end 2.45 2.95)") {
		t.Error("courtyard rectangle not inflated by the margin")
	}
	if !strings.Contains(document, `(layer "F.CrtYd")`) {
		t.Error("courtyard layer missing")
	}

	// reference above, value below, 2mm out
	if !strings.Contains(document, "(at 0 -4.45)") {
		t.Error("reference text not 2mm above the body")
	}
	if !strings.Contains(document, "(at 0 4.45)") {
		t.Error("value text not 2mm below the body")
	}
}

func TestGenerateFootprintThruHole(t *testing.T) {
	spec := &FootprintSpec{
		Name:            "MQ-137",
		Attr:            AttrThroughHole,
		BodyWidth:       10,
		BodyHeight:      10,
		CourtyardMargin: 0.25,
		Pads: []Pad{{
			Number: "1",
			Type:   ThruHole,
			Shape:  PadCircle,
			X:      4.5,
			Width:  1.4,
			Height: 1.4,
			Drill:  0.8,
			// deliberately wrong layer set, the emitter must override it
			Layers: SMDLayers(),
		}},
	}

	document, err := GenerateFootprint(spec, &seqSource{})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(document, `(layers "*.Cu" "*.Mask")`) {
		t.Error("through-hole pad did not get the plated layer set")
	}
	if !strings.Contains(document, "(drill 0.8)") {
		t.Error("drill clause missing")
	}
}

func TestGenerateFootprintNoDrillClauseForSMD(t *testing.T) {
	spec := testFootprintSpec(t)

	document, err := GenerateFootprint(spec, &seqSource{})
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(document, "(drill") {
		t.Error("SMD footprint emitted a drill clause")
	}
}

func TestFootprintSpecInvalid(t *testing.T) {
	spec := testFootprintSpec(t)
	spec.CourtyardMargin = -0.1
	if _, err := GenerateFootprint(spec, &seqSource{}); err == nil {
		t.Error("negative courtyard margin accepted")
	}

	spec = testFootprintSpec(t)
	spec.Pads[0].Drill = 0.8
	if _, err := GenerateFootprint(spec, &seqSource{}); err == nil {
		t.Error("drill on an SMD pad accepted")
	}

	spec = testFootprintSpec(t)
	spec.Pads[0].Type = ThruHole
	spec.Pads[0].Drill = 0
	if _, err := GenerateFootprint(spec, &seqSource{}); err == nil {
		t.Error("through-hole pad without a drill accepted")
	}
}

func TestGenerateFootprintPadRotation(t *testing.T) {
	spec := testFootprintSpec(t)
	spec.Pads[0].Rotation = 90

	document, err := GenerateFootprint(spec, &seqSource{})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(document, "(at -1.905 2.7 90)") {
		t.Error("pad rotation not emitted")
	}
}
