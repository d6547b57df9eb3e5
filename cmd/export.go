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

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <output>",
	Short: "Assemble all stored symbols into one .kicad_sym library.",
	Long: `Assemble every symbol in the spec library into a single .kicad_sym
file with one shared header.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		library, err := lib.NewDefaultLibrary()
		if err != nil {
			fmt.Printf("failed to open or create default library: %s\n", err)
			return
		}
		defer library.Close()

		specs, err := library.Symbols()
		if err != nil {
			fmt.Printf("failed to list symbols: %s\n", err)
			return
		}

		if len(specs) == 0 {
			fmt.Println("the spec library holds no symbols")
			return
		}

		document, err := lib.GenerateSymbolLibrary(specs)
		if err != nil {
			fmt.Printf("failed to generate library: %s\n", err)
			return
		}

		path, err := lib.WriteArtifact(args[0], lib.SymbolArtifact, document)
		if err != nil {
			fmt.Printf("failed to write library: %s\n", err)
			return
		}

		fmt.Printf("wrote %d symbols to %s\n", len(specs), path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
