package lib

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

/*
Source of the per-element identifiers KiCad wants on footprint
elements. Identifiers are opaque and never reused, but nothing may
depend on the order they are handed out: regenerating a footprint
assigns fresh ones without that being a behavioral change. Injecting
the source keeps the emitter a pure function of (spec, source).
*/
type IDSource interface {
	Next() string
}

type uuidSource struct{}

func (uuidSource) Next() string {
	return uuid.NewString()
}

func NewUUIDSource() IDSource {
	return uuidSource{}
}

/*
Render a .kicad_mod footprint: reference and value text just outside
the body, the body outline on the fabrication layer, the courtyard
rectangle inflated by the courtyard margin, then one pad statement
per pad in input order.
*/
func GenerateFootprint(spec *FootprintSpec, ids IDSource) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}
	if ids == nil {
		ids = NewUUIDSource()
	}

	halfW := spec.BodyWidth / 2
	halfH := spec.BodyHeight / 2
	margin := spec.CourtyardMargin

	b := &strings.Builder{}
	fmt.Fprintf(b, "(footprint %q\n", spec.Name)
	fmt.Fprintf(b, "  (version %d)\n", footprintFormatVersion)
	fmt.Fprintf(b, "  (generator %q)\n", Generator)
	fmt.Fprintf(b, "  (layer \"F.Cu\")\n")
	fmt.Fprintf(b, "  (descr %q)\n", spec.Description)
	fmt.Fprintf(b, "  (tags %q)\n", spec.Tags)
	fmt.Fprintf(b, "  (attr %s)\n", spec.Attr)

	fmt.Fprintf(b, "  (fp_text reference \"REF**\"\n")
	fmt.Fprintf(b, "    (at 0 %s)\n", ftoa(-(halfH + 2)))
	fmt.Fprintf(b, "    (layer \"F.SilkS\")\n")
	fmt.Fprintf(b, "    (effects (font (size 1 1) (thickness 0.15)))\n")
	fmt.Fprintf(b, "    (uuid %q)\n", ids.Next())
	fmt.Fprintf(b, "  )\n")

	fmt.Fprintf(b, "  (fp_text value %q\n", spec.Name)
	fmt.Fprintf(b, "    (at 0 %s)\n", ftoa(halfH+2))
	fmt.Fprintf(b, "    (layer \"F.Fab\")\n")
	fmt.Fprintf(b, "    (effects (font (size 1 1) (thickness 0.15)))\n")
	fmt.Fprintf(b, "    (uuid %q)\n", ids.Next())
	fmt.Fprintf(b, "  )\n")

	fmt.Fprintf(b, "  (fp_rect\n")
	fmt.Fprintf(b, "    (start %s %s)\n", ftoa(-halfW), ftoa(-halfH))
	fmt.Fprintf(b, "    (end %s %s)\n", ftoa(halfW), ftoa(halfH))
	fmt.Fprintf(b, "    (stroke (width 0.1) (type default))\n")
	fmt.Fprintf(b, "    (fill no)\n")
	fmt.Fprintf(b, "    (layer \"F.Fab\")\n")
	fmt.Fprintf(b, "    (uuid %q)\n", ids.Next())
	fmt.Fprintf(b, "  )\n")

	fmt.Fprintf(b, "  (fp_rect\n")
	fmt.Fprintf(b, "    (start %s %s)\n", ftoa(-(halfW + margin)), ftoa(-(halfH + margin)))
	fmt.Fprintf(b, "    (end %s %s)\n", ftoa(halfW+margin), ftoa(halfH+margin))
	fmt.Fprintf(b, "    (stroke (width 0.05) (type default))\n")
	fmt.Fprintf(b, "    (fill no)\n")
	fmt.Fprintf(b, "    (layer \"F.CrtYd\")\n")
	fmt.Fprintf(b, "    (uuid %q)\n", ids.Next())
	fmt.Fprintf(b, "  )\n")

	for i := range spec.Pads {
		writePad(b, &spec.Pads[i], ids)
	}

	fmt.Fprintf(b, ")\n")

	return b.String(), nil
}

func writePad(b *strings.Builder, pad *Pad, ids IDSource) {
	/*
		Plated through-holes always get the full plated layer set, no
		matter what the pad carries.
	*/
	layers := pad.Layers
	if pad.Type == ThruHole {
		layers = ThruHoleLayers()
	}

	quoted := make([]string, 0, len(layers))
	for _, layer := range layers {
		quoted = append(quoted, fmt.Sprintf("%q", layer))
	}

	at := fmt.Sprintf("%s %s", ftoa(pad.X), ftoa(pad.Y))
	if pad.Rotation != 0 {
		at += " " + ftoa(pad.Rotation)
	}

	fmt.Fprintf(b, "  (pad %q %s %s\n", pad.Number, pad.Type, pad.Shape)
	fmt.Fprintf(b, "    (at %s)\n", at)
	fmt.Fprintf(b, "    (size %s %s)\n", ftoa(pad.Width), ftoa(pad.Height))
	if pad.Drill > 0 {
		fmt.Fprintf(b, "    (drill %s)\n", ftoa(pad.Drill))
	}
	fmt.Fprintf(b, "    (layers %s)\n", strings.Join(quoted, " "))
	fmt.Fprintf(b, "    (uuid %q)\n", ids.Next())
	fmt.Fprintf(b, "  )\n")
}
