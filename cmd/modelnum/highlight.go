package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"modelnum/internal/viz"
)

func newHighlightCmd() *cobra.Command {
	var categories []string
	cmd := &cobra.Command{
		Use:   "highlight [model-string]",
		Short: "Show which characters belong to the given categories",
		Long: "Prints the reference string (or the given model string) with a\n" +
			"marker line underneath: '^' for characters belonging to the\n" +
			"requested categories, '|' under separators.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine()
			if err != nil {
				return err
			}
			ref := ""
			if len(args) == 1 {
				ref = args[0]
			} else {
				ref = e.Active().Reference
			}

			marks := e.Highlight(categories, ref)
			var line strings.Builder
			for _, m := range marks {
				switch m {
				case viz.MarkHighlight:
					line.WriteByte('^')
				case viz.MarkSeparator:
					line.WriteByte('|')
				default:
					line.WriteByte(' ')
				}
			}
			fmt.Println(ref)
			fmt.Println(line.String())
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "category IDs to highlight (repeatable)")
	return cmd
}
