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

var saveFootprint bool

// generateFootprintCmd represents the generate-footprint command
var generateFootprintCmd = &cobra.Command{
	Use:   "generate-footprint <spec.json> [output]",
	Short: "Generate a .kicad_mod file from a footprint spec.",
	Long: `Generate a .kicad_mod footprint from a JSON footprint specification.

The spec may carry explicit pads, an "array" block expanded through one of
the pad layout generators (circular, dual_row, exposed_grid), or both.

	Example:
		- libgen generate-footprint SOIC-8.json
		- libgen generate-footprint SOIC-8.json out/SOIC-8_MP1584EN
	`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := lib.LoadFootprintSpec(args[0])
		if err != nil {
			fmt.Printf("failed to load footprint spec: %s\n", err)
			return
		}

		document, err := lib.GenerateFootprint(spec, lib.NewUUIDSource())
		if err != nil {
			fmt.Printf("failed to generate footprint: %s\n", err)
			return
		}

		dst := spec.Name
		if len(args) > 1 {
			dst = args[1]
		}

		path, err := lib.WriteArtifact(dst, lib.FootprintArtifact, document)
		if err != nil {
			fmt.Printf("failed to write footprint: %s\n", err)
			return
		}
		fmt.Printf("wrote %s\n", path)

		if saveFootprint {
			library, err := lib.NewDefaultLibrary()
			if err != nil {
				fmt.Printf("failed to open or create default library: %s\n", err)
				return
			}
			defer library.Close()

			if err := library.PutFootprint(spec); err != nil {
				fmt.Printf("failed to save footprint spec: %s\n", err)
				return
			}
			fmt.Printf("saved %s into the spec library\n", spec.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateFootprintCmd)

	generateFootprintCmd.Flags().BoolVarP(&saveFootprint, "save", "s", false, "save the spec into the library")
}
