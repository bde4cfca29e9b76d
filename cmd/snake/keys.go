package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/game"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List key bindings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			km := game.DefaultKeyMap()

			// Calculate column widths
			maxKeyLen := 3 // "Key" header
			for _, group := range km.FullHelp() {
				for _, b := range group {
					maxKeyLen = max(maxKeyLen, len(b.Help().Key))
				}
			}

			fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "Key", "Action")
			fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "---", "------")
			for _, group := range km.FullHelp() {
				for _, b := range group {
					fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, b.Help().Key, b.Help().Desc)
				}
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Ctrl+C also quits. Any key leaves the help screen.")
		},
	}
}
