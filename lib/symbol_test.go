package lib

import (
	"strings"
	"testing"
)

func testSymbolSpec() *SymbolSpec {
	return &SymbolSpec{
		Name:        "PT4115",
		Reference:   "U",
		Description: "Step-down LED driver",
		Footprint:   "Package_SO:SOIC-8_3.9x4.9mm_P1.27mm",
		BodyWidth:   10.16,
		BodyHeight:  15.24,
		Pins: []Pin{
			{Number: "1", Name: "VIN", Type: PowerIn, X: -7.62, Y: 5.08, Orientation: 0, Length: 2.54, Shape: PinLine},
			{Number: "2", Name: "SW", Type: Output, X: 0, Y: 10.16, Orientation: 270, Length: 2.54, Shape: PinLine},
			{Number: "3", Name: "DIM", Type: Input, X: -7.62, Y: -5.08, Orientation: 0, Length: 2.54, Shape: PinLine},
		},
	}
}

func TestGenerateSymbolDeterministic(t *testing.T) {
	spec := testSymbolSpec()

	first, err := GenerateSymbol(spec)
	if err != nil {
		t.Fatal(err)
	}
	second, err := GenerateSymbol(spec)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Error("two runs over the same spec differ")
	}
}

func TestGenerateSymbolShape(t *testing.T) {
	block, err := GenerateSymbol(testSymbolSpec())
	if err != nil {
		t.Fatal(err)
	}

	if strings.Count(block, "(") != strings.Count(block, ")") {
		t.Error("unbalanced parentheses")
	}

	// body rectangle centered on the origin
	if !strings.Contains(block, "(start -5.08 7.62)") || !strings.Contains(block, "(end 5.08 -7.62)") {
		t.Error("body rectangle not centered on the origin")
	}

	// pins appear in input order, verbatim
	i1 := strings.Index(block, `(number "1"`)
	i2 := strings.Index(block, `(number "2"`)
	i3 := strings.Index(block, `(number "3"`)
	if i1 < 0 || i2 < i1 || i3 < i2 {
		t.Error("pins out of input order")
	}
	if !strings.Contains(block, "(pin output line\n        (at 0 10.16 270)") {
		t.Error("pin position or orientation not emitted verbatim")
	}

	// hidden metadata fields
	for _, field := range []string{"Footprint", "Datasheet", "Description"} {
		i := strings.Index(block, `(property "`+field+`"`)
		if i < 0 {
			t.Fatalf("missing %s property", field)
		}
		if !strings.Contains(block[i:i+200], "hide") {
			t.Errorf("%s property is not hidden", field)
		}
	}
}

func TestGenerateSymbolDuplicatePins(t *testing.T) {
	spec := testSymbolSpec()
	spec.Pins[2].Number = "1"

	if _, err := GenerateSymbol(spec); err == nil {
		t.Error("duplicate pin number accepted")
	}
}

func TestGenerateSymbolInvalidBody(t *testing.T) {
	spec := testSymbolSpec()
	spec.BodyWidth = -1

	if _, err := GenerateSymbol(spec); err == nil {
		t.Error("negative body width accepted")
	}
}

func TestGenerateSymbolLibrary(t *testing.T) {
	a := testSymbolSpec()
	b := testSymbolSpec()
	b.Name = "MP1584EN"

	document, err := GenerateSymbolLibrary([]*SymbolSpec{a, b})
	if err != nil {
		t.Fatal(err)
	}

	if strings.Count(document, "kicad_symbol_lib") != 1 {
		t.Error("header not shared")
	}
	if strings.Count(document, `(generator "petfilter_libgen")`) != 1 {
		t.Error("generator record duplicated per symbol")
	}

	// input order preserved
	ia := strings.Index(document, `(symbol "PT4115"`)
	ib := strings.Index(document, `(symbol "MP1584EN"`)
	if ia < 0 || ib < ia {
		t.Error("symbols out of input order")
	}

	if strings.Count(document, "(") != strings.Count(document, ")") {
		t.Error("unbalanced parentheses")
	}
}
