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

var saveSymbol bool

// generateSymbolCmd represents the generate-symbol command
var generateSymbolCmd = &cobra.Command{
	Use:   "generate-symbol <spec.json> [output]",
	Short: "Generate a .kicad_sym file from a symbol spec.",
	Long: `Generate a single-symbol .kicad_sym library from a JSON symbol
specification.

	Example:
		- libgen generate-symbol PT4115.json
		- libgen generate-symbol PT4115.json out/PT4115
		- libgen generate-symbol -s PT4115.json : also save into the spec library
	`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := lib.LoadSymbolSpec(args[0])
		if err != nil {
			fmt.Printf("failed to load symbol spec: %s\n", err)
			return
		}

		document, err := lib.GenerateSymbolLibrary([]*lib.SymbolSpec{spec})
		if err != nil {
			fmt.Printf("failed to generate symbol: %s\n", err)
			return
		}

		dst := spec.Name
		if len(args) > 1 {
			dst = args[1]
		}

		path, err := lib.WriteArtifact(dst, lib.SymbolArtifact, document)
		if err != nil {
			fmt.Printf("failed to write symbol library: %s\n", err)
			return
		}
		fmt.Printf("wrote %s\n", path)

		if saveSymbol {
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
			fmt.Printf("saved %s into the spec library\n", spec.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateSymbolCmd)

	generateSymbolCmd.Flags().BoolVarP(&saveSymbol, "save", "s", false, "save the spec into the library")
}
