package lib

import (
	"fmt"
)

/*
Pin electrical types, as KiCad spells them
*/
type ElectricalType string

const (
	PowerIn       ElectricalType = "power_in"
	PowerOut      ElectricalType = "power_out"
	Input         ElectricalType = "input"
	Output        ElectricalType = "output"
	Passive       ElectricalType = "passive"
	Bidirectional ElectricalType = "bidirectional"
	TriState      ElectricalType = "tri_state"
	Unspecified   ElectricalType = "unspecified"
)

var electricalTypes = map[ElectricalType]bool{
	PowerIn: true, PowerOut: true, Input: true, Output: true,
	Passive: true, Bidirectional: true, TriState: true, Unspecified: true,
}

type PinShape string

const (
	PinLine          PinShape = "line"
	PinInverted      PinShape = "inverted"
	PinClock         PinShape = "clock"
	PinInvertedClock PinShape = "inverted_clock"
)

var pinShapes = map[PinShape]bool{
	PinLine: true, PinInverted: true, PinClock: true, PinInvertedClock: true,
}

type PadType string

const (
	SMD        PadType = "smd"
	ThruHole   PadType = "thru_hole"
	NPThruHole PadType = "np_thru_hole"
	Connect    PadType = "connect"
)

var padTypes = map[PadType]bool{
	SMD: true, ThruHole: true, NPThruHole: true, Connect: true,
}

type PadShape string

const (
	PadCircle    PadShape = "circle"
	PadRect      PadShape = "rect"
	PadOval      PadShape = "oval"
	PadRoundRect PadShape = "roundrect"
	PadTrapezoid PadShape = "trapezoid"
)

var padShapes = map[PadShape]bool{
	PadCircle: true, PadRect: true, PadOval: true,
	PadRoundRect: true, PadTrapezoid: true,
}

/*
A schematic symbol pin. Coordinates are caller-supplied symbol-space
millimeters; orientation is one of the four cardinals.
*/
type Pin struct {
	Number      string
	Name        string
	Type        ElectricalType
	X           float64
	Y           float64
	Orientation int
	Length      float64
	Shape       PinShape
}

func (p *Pin) Validate() error {
	if p.Number == "" {
		return fmt.Errorf("pin %q: missing number", p.Name)
	}
	if !electricalTypes[p.Type] {
		return fmt.Errorf("pin %s: unknown electrical type %q", p.Number, p.Type)
	}
	if !pinShapes[p.Shape] {
		return fmt.Errorf("pin %s: unknown shape %q", p.Number, p.Shape)
	}
	switch p.Orientation {
	case 0, 90, 180, 270:
	default:
		return fmt.Errorf("pin %s: orientation %d is not a cardinal angle", p.Number, p.Orientation)
	}
	if p.Length <= 0 {
		return fmt.Errorf("pin %s: length must be positive", p.Number)
	}

	return nil
}

/*
A footprint pad. Drill is zero when there is no hole; pads of type
thru_hole must carry a drill and all others must not, so a drill
clause is never emitted with a zero diameter.
*/
type Pad struct {
	Number   string
	Type     PadType
	Shape    PadShape
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Drill    float64
	Layers   []string
	Rotation float64
}

/*
The layer sets KiCad expects for front-side SMD pads, paste-only
apertures, and plated through-holes
*/
func SMDLayers() []string {
	return []string{"F.Cu", "F.Paste", "F.Mask"}
}

func SMDNoPasteLayers() []string {
	return []string{"F.Cu", "F.Mask"}
}

func PasteOnlyLayers() []string {
	return []string{"F.Paste"}
}

func ThruHoleLayers() []string {
	return []string{"*.Cu", "*.Mask"}
}

func (p *Pad) Validate() error {
	if p.Number == "" {
		return fmt.Errorf("pad: missing number")
	}
	if !padTypes[p.Type] {
		return fmt.Errorf("pad %s: unknown pad type %q", p.Number, p.Type)
	}
	if !padShapes[p.Shape] {
		return fmt.Errorf("pad %s: unknown shape %q", p.Number, p.Shape)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("pad %s: size must be positive", p.Number)
	}

	hole := p.Type == ThruHole || p.Type == NPThruHole
	if hole && p.Drill <= 0 {
		return fmt.Errorf("pad %s: through-hole pad requires a drill", p.Number)
	}
	if !hole && p.Drill != 0 {
		return fmt.Errorf("pad %s: drill on a non-through-hole pad", p.Number)
	}

	return nil
}

/*
A complete symbol specification: a centered body rectangle plus the
pins, rendered verbatim in input order
*/
type SymbolSpec struct {
	Name        string
	Reference   string
	Description string
	Datasheet   string
	Footprint   string
	Pins        []Pin
	BodyWidth   float64
	BodyHeight  float64
}

func (s *SymbolSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("symbol: missing name")
	}
	if s.BodyWidth <= 0 || s.BodyHeight <= 0 {
		return fmt.Errorf("symbol %s: body dimensions must be positive", s.Name)
	}

	seen := map[string]bool{}
	for i := range s.Pins {
		pin := &s.Pins[i]
		if err := pin.Validate(); err != nil {
			return fmt.Errorf("symbol %s: %w", s.Name, err)
		}
		if seen[pin.Number] {
			return fmt.Errorf("symbol %s: duplicate pin number %s", s.Name, pin.Number)
		}
		seen[pin.Number] = true
	}

	return nil
}

type FootprintAttr string

const (
	AttrSMD         FootprintAttr = "smd"
	AttrThroughHole FootprintAttr = "through_hole"
)

/*
A complete footprint specification. The courtyard margin is added
uniformly around the body to form the keepout rectangle.
*/
type FootprintSpec struct {
	Name            string
	Description     string
	Tags            string
	Attr            FootprintAttr
	Pads            []Pad
	BodyWidth       float64
	BodyHeight      float64
	CourtyardMargin float64
}

func (f *FootprintSpec) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("footprint: missing name")
	}
	if f.Attr != AttrSMD && f.Attr != AttrThroughHole {
		return fmt.Errorf("footprint %s: unknown attr %q", f.Name, f.Attr)
	}
	if f.BodyWidth <= 0 || f.BodyHeight <= 0 {
		return fmt.Errorf("footprint %s: body dimensions must be positive", f.Name)
	}
	if f.CourtyardMargin < 0 {
		return fmt.Errorf("footprint %s: courtyard margin must not be negative", f.Name)
	}

	/*
		Pad numbers may repeat here: an exposed pad and its paste
		windows share one number on purpose.
	*/
	for i := range f.Pads {
		if err := f.Pads[i].Validate(); err != nil {
			return fmt.Errorf("footprint %s: %w", f.Name, err)
		}
	}

	return nil
}
