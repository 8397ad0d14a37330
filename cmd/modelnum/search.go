package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"modelnum/internal/engine"
	"modelnum/internal/search"
)

const searchDebounce = 250 * time.Millisecond

func newSearchCmd() *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Find codes by description text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine()
			if err != nil {
				return err
			}
			if interactive {
				return runInteractive(e)
			}
			if len(args) == 0 {
				return fmt.Errorf("query required unless --interactive is set")
			}
			printMatches(e.Search(args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read queries line by line from stdin")
	return cmd
}

// runInteractive reads queries from stdin and evaluates only the latest
// one once typing pauses.
func runInteractive(e *engine.Engine) error {
	deb := engine.NewDebouncer(searchDebounce, func(q string) {
		printMatches(e.Search(q))
	})
	defer deb.Stop()

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		deb.Trigger(sc.Text())
	}
	// Let the trailing quiet period elapse so the final query still runs.
	time.Sleep(searchDebounce + 50*time.Millisecond)
	return sc.Err()
}

func printMatches(matches []search.Match) {
	if len(matches) == 0 {
		fmt.Println("no matches")
		return
	}
	for _, m := range matches {
		fmt.Printf("%s\t%s\t%s: %s\n", m.Position, m.Name, m.Code, m.Description)
	}
}
