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

	"github.com/petfilter/libgen/lib"
	"github.com/spf13/cobra"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print example generator output.",
	Long: `Print an example SOIC-8 footprint, a circular pad array, and a
segmented exposed-pad paste grid, without writing any files.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("=== KiCad Library Generator Demo ===")
		fmt.Println()
		fmt.Println("Generating example SOIC-8 footprint (MP1584EN)...")

		pads, err := lib.DualRowSMDPads(8, 1.27, 0.6, 1.5, 5.4)
		if err != nil {
			fmt.Printf("failed to generate pads: %s\n", err)
			return
		}

		spec := &lib.FootprintSpec{
			Name:            "SOIC-8_MP1584EN",
			Description:     "SOIC-8, 1.27mm pitch, for MP1584EN buck converter",
			Tags:            "SOIC-8 MP1584EN buck converter",
			Attr:            lib.AttrSMD,
			Pads:            pads,
			BodyWidth:       3.9,
			BodyHeight:      4.9,
			CourtyardMargin: 0.5,
		}

		footprint, err := lib.GenerateFootprint(spec, lib.NewUUIDSource())
		if err != nil {
			fmt.Printf("failed to generate footprint: %s\n", err)
			return
		}
		fmt.Println(footprint)

		fmt.Println("\n=== Circular pad array demo (MQ-137 style) ===")
		pads, err = lib.CircularPadArray(6, 4.5, lib.ThruHole, lib.PadCircle, 1.4, 1.4, 0.8, 0)
		if err != nil {
			fmt.Printf("failed to generate pads: %s\n", err)
			return
		}
		for _, p := range pads {
			fmt.Printf("  Pin %s: (%g, %g)\n", p.Number, p.X, p.Y)
		}

		fmt.Println("\n=== QFN exposed pad with DFM paste grid ===")
		epPads, err := lib.ExposedPadPasteGrid(5.0, 5.0, 3, 3, 0.40, "EP")
		if err != nil {
			fmt.Printf("failed to generate pads: %s\n", err)
			return
		}
		fmt.Printf("  Main pad + %d paste windows for ~40%% coverage\n", len(epPads)-1)

		fmt.Println("\nDone! Use 'generate-symbol' or 'generate-footprint' for real output.")
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
