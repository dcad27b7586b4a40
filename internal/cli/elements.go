// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chemgraph/element"
)

var elementsJSON bool

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the element table",
	Long: `List every element with its valence and atomic weight.

Without --elements the built-in reference table is shown.`,
	Args: cobra.NoArgs,
	RunE: runElements,
}

func init() {
	elementsCmd.Flags().BoolVar(&elementsJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(elementsCmd)
}

func runElements(cmd *cobra.Command, _ []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	entries := make([]element.Element, 0, table.Len())
	for _, sym := range table.Symbols() {
		entries = append(entries, table.MustLookup(sym))
	}

	if elementsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tVALENCE\tWEIGHT")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%g\n", e.Symbol, e.Valence, e.Weight)
	}
	return tw.Flush()
}
