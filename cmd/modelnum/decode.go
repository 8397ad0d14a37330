package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"modelnum/internal/validate"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <model-string>",
		Short: "Decode a model string into its attributes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine()
			if err != nil {
				return err
			}
			res := e.Decode(args[0])

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "POS\tCATEGORY\tCODE\tDESCRIPTION")
			for _, attr := range res.Attributes {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", attr.Position, attr.Name, attr.Code, attr.Description)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			for _, notice := range res.Notices {
				fmt.Printf("note: %s\n", notice)
			}
			for _, warn := range res.Warnings {
				label := "WARN"
				if warn.Severity == validate.SeverityInfo {
					label = "INFO"
				}
				fmt.Printf("%s: %s\n", label, warn.Message)
				if warn.Hint != "" {
					fmt.Printf("      %s\n", warn.Hint)
				}
			}
			return nil
		},
	}
}
