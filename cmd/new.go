/*
Copyright © 2026 PetFilter Project <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/c-bata/go-prompt"
	"github.com/petfilter/libgen/lib"
	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Build a symbol spec interactively.",
	Long: `Build a symbol specification pin by pin at an interactive prompt
and save it into the spec library. Finish by entering an empty pin number.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		spec := &lib.SymbolSpec{
			Name:      args[0],
			Reference: promptDefault("reference", "U"),
		}
		spec.BodyWidth = promptFloat("body width (mm)", 10.16)
		spec.BodyHeight = promptFloat("body height (mm)", 15.24)
		spec.Description = promptDefault("description", "")

		types := []prompt.Suggest{
			{Text: "power_in"}, {Text: "power_out"}, {Text: "input"},
			{Text: "output"}, {Text: "passive"}, {Text: "bidirectional"},
			{Text: "tri_state"}, {Text: "unspecified"},
		}

		for {
			fmt.Printf("Pin number (empty to finish):\n")
			number := prompt.Input("> ", noSuggestions)
			if number == "" {
				break
			}

			fmt.Printf("Pin name:\n")
			name := prompt.Input("> ", noSuggestions)

			fmt.Printf("Electrical type:\n")
			etype := prompt.Input("> ", func(d prompt.Document) []prompt.Suggest {
				return prompt.FilterHasPrefix(types, d.GetWordBeforeCursor(), true)
			})

			spec.Pins = append(spec.Pins, lib.Pin{
				Number:      number,
				Name:        name,
				Type:        lib.ElectricalType(etype),
				X:           promptFloat("x (mm)", 0),
				Y:           promptFloat("y (mm)", 0),
				Orientation: int(promptFloat("orientation (0/90/180/270)", 0)),
				Length:      2.54,
				Shape:       lib.PinLine,
			})
		}

		if err := spec.Validate(); err != nil {
			fmt.Printf("invalid symbol spec: %s\n", err)
			return
		}

		library, err := lib.NewDefaultLibrary()
		if err != nil {
			fmt.Printf("failed to open or create default library: %s\n", err)
			return
		}
		defer library.Close()

		if err := library.PutSymbol(spec); err != nil {
			fmt.Printf("failed to save symbol spec: %s\n", err)
			return
		}

		fmt.Printf("saved %s with %d pins\n", spec.Name, len(spec.Pins))
	},
}

func noSuggestions(d prompt.Document) []prompt.Suggest {
	return []prompt.Suggest{}
}

func promptDefault(label, fallback string) string {
	fmt.Printf("%s [%s]:\n", label, fallback)
	if text := prompt.Input("> ", noSuggestions); text != "" {
		return text
	}

	return fallback
}

func promptFloat(label string, fallback float64) float64 {
	fmt.Printf("%s [%g]:\n", label, fallback)
	text := prompt.Input("> ", noSuggestions)

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fallback
	}

	return v
}

func init() {
	rootCmd.AddCommand(newCmd)
}
