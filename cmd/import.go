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
	"strings"

	"github.com/petfilter/libgen/lib"
	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <pins.xlsx>",
	Short: "Import symbol pin tables from an excel file.",
	Long: `Import symbol pin tables from an excel file into the spec library.

One row per pin, with columns:

	Symbol | Body W | Body H | Number | Name | Type | X | Y | Orientation | Length | Shape

Rows sharing a symbol name accumulate into one symbol.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := args[0]
		if !strings.HasSuffix(strings.ToLower(src), ".xls") &&
			!strings.HasSuffix(strings.ToLower(src), ".xlsx") {

			fmt.Println("pin table must be an excel spreadsheet")
			return
		}

		if !lib.Exists(src) {
			fmt.Printf("failed to stat file: %s\n", src)
			return
		}

		library, err := lib.NewDefaultLibrary()
		if err != nil {
			fmt.Printf("failed to open or create default library: %s\n", err)
			return
		}
		defer library.Close()

		if err := library.Import(src); err != nil {
			fmt.Printf("failed to import pin table: %s\n", err)
			return
		}

		fmt.Println("imported pin table into the spec library")
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// importCmd.PersistentFlags().String("foo", "", "A help for foo")
}
