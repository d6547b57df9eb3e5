package lib

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type pinFile struct {
	Number      string         `json:"number"`
	Name        string         `json:"name"`
	Type        ElectricalType `json:"electrical_type"`
	X           float64        `json:"x"`
	Y           float64        `json:"y"`
	Orientation int            `json:"orientation"`
	Length      float64        `json:"length"`
	Shape       PinShape       `json:"shape"`
}

type symbolFile struct {
	Name        string    `json:"name"`
	Reference   string    `json:"reference"`
	Description string    `json:"description"`
	Datasheet   string    `json:"datasheet"`
	Footprint   string    `json:"footprint"`
	Pins        []pinFile `json:"pins"`
	BodyWidth   float64   `json:"body_width"`
	BodyHeight  float64   `json:"body_height"`
}

type padFile struct {
	Number   string   `json:"number"`
	Type     PadType  `json:"pad_type"`
	Shape    PadShape `json:"shape"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Drill    float64  `json:"drill"`
	Layers   []string `json:"layers"`
	Rotation float64  `json:"rotation"`
}

/*
One optional generated pad array per footprint spec file, expanded
through the layout algorithms and appended after the explicit pads
*/
type padArrayFile struct {
	Kind          string   `json:"kind"`
	NumPins       int      `json:"num_pins"`
	Pitch         float64  `json:"pitch"`
	Radius        float64  `json:"radius"`
	PadType       PadType  `json:"pad_type"`
	PadShape      PadShape `json:"pad_shape"`
	PadWidth      float64  `json:"pad_width"`
	PadHeight     float64  `json:"pad_height"`
	RowSpacing    float64  `json:"row_spacing"`
	Drill         float64  `json:"drill"`
	StartAngle    float64  `json:"start_angle"`
	GridCols      int      `json:"grid_cols"`
	GridRows      int      `json:"grid_rows"`
	PasteCoverage float64  `json:"paste_coverage"`
	PadNumber     string   `json:"pad_number"`
}

type footprintFile struct {
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Tags            string        `json:"tags"`
	Attr            FootprintAttr `json:"attr"`
	Pads            []padFile     `json:"pads"`
	Array           *padArrayFile `json:"array"`
	BodyWidth       float64       `json:"body_width"`
	BodyHeight      float64       `json:"body_height"`
	CourtyardMargin float64       `json:"courtyard_margin"`
}

func (a *padArrayFile) generate() ([]Pad, error) {
	switch a.Kind {
	case "circular":
		padType := a.PadType
		if padType == "" {
			padType = ThruHole
		}
		shape := a.PadShape
		if shape == "" {
			shape = PadCircle
		}
		return CircularPadArray(
			a.NumPins, a.Radius, padType, shape,
			a.PadWidth, a.PadHeight, a.Drill, a.StartAngle,
		)
	case "dual_row":
		return DualRowSMDPads(a.NumPins, a.Pitch, a.PadWidth, a.PadHeight, a.RowSpacing)
	case "exposed_grid":
		return ExposedPadPasteGrid(
			a.PadWidth, a.PadHeight, a.GridCols, a.GridRows,
			a.PasteCoverage, a.PadNumber,
		)
	}

	return nil, fmt.Errorf("unknown pad array kind %q", a.Kind)
}

/*
Load a symbol specification from a JSON spec file, filling the same
defaults the spec records carry
*/
func LoadSymbolSpec(src string) (*SymbolSpec, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}

	file := symbolFile{}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", src, err)
	}

	spec := &SymbolSpec{
		Name:        file.Name,
		Reference:   file.Reference,
		Description: file.Description,
		Datasheet:   file.Datasheet,
		Footprint:   file.Footprint,
		BodyWidth:   file.BodyWidth,
		BodyHeight:  file.BodyHeight,
	}
	if spec.Reference == "" {
		spec.Reference = "U"
	}
	if spec.BodyWidth == 0 {
		spec.BodyWidth = 10.16
	}
	if spec.BodyHeight == 0 {
		spec.BodyHeight = 15.24
	}

	for _, p := range file.Pins {
		pin := Pin{
			Number:      p.Number,
			Name:        p.Name,
			Type:        p.Type,
			X:           p.X,
			Y:           p.Y,
			Orientation: p.Orientation,
			Length:      p.Length,
			Shape:       p.Shape,
		}
		if pin.Length == 0 {
			pin.Length = 2.54
		}
		if pin.Shape == "" {
			pin.Shape = PinLine
		}

		spec.Pins = append(spec.Pins, pin)
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return spec, nil
}

/*
Load a footprint specification from a JSON spec file, expanding the
optional pad array block
*/
func LoadFootprintSpec(src string) (*FootprintSpec, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}

	file := footprintFile{}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", src, err)
	}

	spec := &FootprintSpec{
		Name:            file.Name,
		Description:     file.Description,
		Tags:            file.Tags,
		Attr:            file.Attr,
		BodyWidth:       file.BodyWidth,
		BodyHeight:      file.BodyHeight,
		CourtyardMargin: file.CourtyardMargin,
	}
	if spec.Attr == "" {
		spec.Attr = AttrSMD
	}

	for _, p := range file.Pads {
		pad := Pad{
			Number:   p.Number,
			Type:     p.Type,
			Shape:    p.Shape,
			X:        p.X,
			Y:        p.Y,
			Width:    p.Width,
			Height:   p.Height,
			Drill:    p.Drill,
			Layers:   p.Layers,
			Rotation: p.Rotation,
		}
		if len(pad.Layers) == 0 {
			if pad.Type == ThruHole || pad.Type == NPThruHole {
				pad.Layers = ThruHoleLayers()
			} else {
				pad.Layers = SMDLayers()
			}
		}

		spec.Pads = append(spec.Pads, pad)
	}

	if file.Array != nil {
		pads, err := file.Array.generate()
		if err != nil {
			return nil, err
		}

		spec.Pads = append(spec.Pads, pads...)
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return spec, nil
}

/*
Import symbol pin tables from an excel file. One row per pin:

# Symbol | Body W | Body H | Number | Name | Type | X | Y | Orientation | Length | Shape

Rows sharing a symbol name accumulate into one SymbolSpec.
*/
func (l *Library) Import(src string) error {
	f, err := excelize.OpenFile(src)
	if err != nil {
		return err
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]
	rows, err := f.Rows(sheet)
	if err != nil {
		return err
	}

	chrows := make(chan []string, 100)
	go func() {
		for {
			if end := !rows.Next(); end {
				close(chrows)
				return
			}

			row, err := rows.Columns()
			if err != nil || len(row) < 9 {
				continue
			}

			chrows <- row
		}
	}()

	specs := map[string]*SymbolSpec{}
	order := []string{}
	for row := range chrows {
		if strings.EqualFold(row[0], "symbol") {
			continue
		}

		name := row[0]
		spec, ok := specs[name]
		if !ok {
			spec = &SymbolSpec{
				Name:       name,
				Reference:  "U",
				BodyWidth:  cellFloat(row[1], 10.16),
				BodyHeight: cellFloat(row[2], 15.24),
			}
			specs[name] = spec
			order = append(order, name)
		}

		pin := Pin{
			Number:      row[3],
			Name:        row[4],
			Type:        ElectricalType(row[5]),
			X:           cellFloat(row[6], 0),
			Y:           cellFloat(row[7], 0),
			Orientation: int(cellFloat(row[8], 0)),
			Length:      2.54,
			Shape:       PinLine,
		}
		if len(row) > 9 {
			pin.Length = cellFloat(row[9], 2.54)
		}
		if len(row) > 10 && row[10] != "" {
			pin.Shape = PinShape(row[10])
		}

		spec.Pins = append(spec.Pins, pin)
	}

	for _, name := range order {
		if err := l.PutSymbol(specs[name]); err != nil {
			return fmt.Errorf("failed to import %s: %w", name, err)
		}
	}

	return nil
}

func cellFloat(cell string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return fallback
	}

	return v
}
