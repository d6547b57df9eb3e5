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
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "libgen",
	Short: "Generate KiCad symbol and footprint libraries from specs.",
	Long: `libgen generates KiCad .kicad_sym symbol and .kicad_mod footprint
files from small declarative specifications: pin lists, pad lists, body
dimensions, and layout parameters.

KiCad library files are plain-text S-expressions; every pad coordinate and
courtyard dimension is just a number in a text file. libgen computes the
numbers (circular pad arrays, dual-row SMD packages, segmented exposed-pad
paste grids) and emits the text, skipping the footprint editor entirely.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// rootCmd.PersistentFlags().String("library", "", "library root to use")
}
