// Command modelnum decodes structured water-heater model numbers into
// human-readable attributes, validates attribute combinations, searches
// the code catalog, and prints position highlights.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"modelnum/internal/configs"
	"modelnum/internal/engine"
)

var (
	flagType    string
	flagVerbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "modelnum",
		Short:         "Decode and validate equipment model numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flagType, "type", "t", "", "model type to use (default: first configured)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDecodeCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newHighlightCmd())
	root.AddCommand(newTypesCmd())
	return root
}

// newEngine loads the bundled configuration and activates the requested
// model type.
func newEngine() (*engine.Engine, error) {
	log := zap.NewNop()
	if flagVerbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}
	}

	types, err := configs.Load()
	if err != nil {
		return nil, err
	}
	e, err := engine.New(log, types)
	if err != nil {
		return nil, err
	}
	if flagType != "" {
		if err := e.SetModelType(flagType); err != nil {
			return nil, err
		}
	}
	return e, nil
}
