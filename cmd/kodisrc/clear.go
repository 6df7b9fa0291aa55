package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all sources",
	Long: `Deletes every path row that has a content type from the video database and
every source from the video section of sources.xml. Rows without a content
type, other sources.xml sections and mediasources.xml are kept.

Like add, clear holds userdata/.kodisrc.lock while it runs and leaves the
file in place.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	c, err := newCoordinator()
	if err != nil {
		return err
	}
	if err := c.ClearSources(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Sources cleared")
	return nil
}
