package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List configured model types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine()
			if err != nil {
				return err
			}
			active := e.Active().ID
			for _, id := range e.ModelTypes() {
				marker := " "
				if id == active {
					marker = "*"
				}
				fmt.Printf("%s %s\n", marker, id)
			}
			return nil
		},
	}
}
