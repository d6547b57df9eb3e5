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
	"path/filepath"
	"strings"

	"github.com/petfilter/libgen/lib"
	"github.com/spf13/cobra"
)

// upgradeCmd represents the upgrade command
var upgradeCmd = &cobra.Command{
	Use:   "upgrade <library>",
	Short: "Round-trip a generated library through kicad-cli.",
	Long: `Run an emitted library through the installed KiCad's own format
upgrader. A .kicad_sym file goes through 'kicad-cli sym upgrade'; a
footprint directory goes through 'kicad-cli fp upgrade'.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := args[0]
		if !lib.Exists(src) {
			fmt.Printf("failed to stat file: %s\n", src)
			return
		}

		ki, err := lib.NewKiCadInterface()
		if err != nil {
			fmt.Printf("failed to locate KiCad: %s\n", err)
			return
		}

		kind := "fp"
		if strings.HasSuffix(src, lib.SymbolArtifact.Ext()) {
			kind = "sym"
		}

		err = ki.ExecuteCommand([]string{kind, "upgrade", src}, filepath.Dir(src))
		if err != nil {
			fmt.Printf("kicad-cli failed: %s\n", err)
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}
