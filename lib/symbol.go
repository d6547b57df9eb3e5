package lib

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	Generator        = "petfilter_libgen"
	GeneratorVersion = "1.0"

	symbolFormatVersion    = 20231120
	footprintFormatVersion = 20231014
)

/*
Coordinates and sizes use Go's shortest float form; KiCad accepts
"10" and "10.0" alike
*/
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

/*
Render one .kicad_sym symbol block: a body rectangle centered on the
origin, the standard property fields, and one pin statement per pin
in input order. Pin coordinates are emitted verbatim; no layout is
computed here. Output is deterministic for identical input.
*/
func GenerateSymbol(spec *SymbolSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	halfW := spec.BodyWidth / 2
	halfH := spec.BodyHeight / 2

	b := &strings.Builder{}
	fmt.Fprintf(b, "  (symbol %q\n", spec.Name)
	fmt.Fprintf(b, "    (pin_names (offset 1.016))\n")
	fmt.Fprintf(b, "    (exclude_from_sim no)\n")
	fmt.Fprintf(b, "    (in_bom yes)\n")
	fmt.Fprintf(b, "    (on_board yes)\n")

	writeProperty(b, "Reference", spec.Reference, halfH+2.54, false)
	writeProperty(b, "Value", spec.Name, -(halfH + 2.54), false)
	writeProperty(b, "Footprint", spec.Footprint, -(halfH + 5.08), true)
	writeProperty(b, "Datasheet", spec.Datasheet, -(halfH + 7.62), true)
	writeProperty(b, "Description", spec.Description, -(halfH + 10.16), true)

	fmt.Fprintf(b, "    (symbol \"%s_0_1\"\n", spec.Name)
	fmt.Fprintf(b, "      (rectangle\n")
	fmt.Fprintf(b, "        (start %s %s)\n", ftoa(-halfW), ftoa(halfH))
	fmt.Fprintf(b, "        (end %s %s)\n", ftoa(halfW), ftoa(-halfH))
	fmt.Fprintf(b, "        (stroke (width 0.254) (type default))\n")
	fmt.Fprintf(b, "        (fill (type background))\n")
	fmt.Fprintf(b, "      )\n")
	fmt.Fprintf(b, "    )\n")

	fmt.Fprintf(b, "    (symbol \"%s_1_1\"\n", spec.Name)
	for i := range spec.Pins {
		pin := &spec.Pins[i]
		fmt.Fprintf(b, "      (pin %s %s\n", pin.Type, pin.Shape)
		fmt.Fprintf(b, "        (at %s %s %d)\n", ftoa(pin.X), ftoa(pin.Y), pin.Orientation)
		fmt.Fprintf(b, "        (length %s)\n", ftoa(pin.Length))
		fmt.Fprintf(b, "        (name %q (effects (font (size 1.27 1.27))))\n", pin.Name)
		fmt.Fprintf(b, "        (number %q (effects (font (size 1.27 1.27))))\n", pin.Number)
		fmt.Fprintf(b, "      )\n")
	}
	fmt.Fprintf(b, "    )\n")
	fmt.Fprintf(b, "  )")

	return b.String(), nil
}

func writeProperty(b *strings.Builder, name, value string, y float64, hide bool) {
	effects := "(effects (font (size 1.27 1.27)))"
	if hide {
		effects = "(effects (font (size 1.27 1.27)) hide)"
	}

	fmt.Fprintf(b, "    (property %q %q\n", name, value)
	fmt.Fprintf(b, "      (at 0 %s 0)\n", ftoa(y))
	fmt.Fprintf(b, "      %s\n", effects)
	fmt.Fprintf(b, "    )\n")
}

/*
Join any number of symbols into one .kicad_sym library with a single
shared header. Symbols appear in input order; duplicate names are
the caller's problem.
*/
func GenerateSymbolLibrary(specs []*SymbolSpec) (string, error) {
	blocks := make([]string, 0, len(specs))
	for _, spec := range specs {
		block, err := GenerateSymbol(spec)
		if err != nil {
			return "", err
		}

		blocks = append(blocks, block)
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "(kicad_symbol_lib\n")
	fmt.Fprintf(b, "  (version %d)\n", symbolFormatVersion)
	fmt.Fprintf(b, "  (generator %q)\n", Generator)
	fmt.Fprintf(b, "  (generator_version %q)\n", GeneratorVersion)
	fmt.Fprintf(b, "\n%s\n)\n", strings.Join(blocks, "\n\n"))

	return b.String(), nil
}
