package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vmunix/kodisrc/internal/source"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <path> <tvshows|movies>",
	Short: "Add a source",
	Long: `Adds a source to Kodi's video database, mediasources.xml and sources.xml.
Stores that already list the path are left unchanged, so re-running is safe.

Concurrent kodisrc runs are serialised through userdata/.kodisrc.lock. The
file stays in place after the run; deleting it while no kodisrc is running
is harmless.`,
	Example:           `  kodisrc add Serien http://127.0.0.1:13531/ tvshows`,
	Args:              cobra.ExactArgs(3),
	ValidArgsFunction: completeAddArgs,
	RunE:              runAdd,
}

var addFromConfigCmd = &cobra.Command{
	Use:   "add_from_config <configFile>",
	Short: "Add the source described by an INI config file",
	Long: `Reads source_name, pcloud_port and source_content from the [config]
section of configFile and adds http://127.0.0.1:<pcloud_port>/ as a source.`,
	Args: cobra.ExactArgs(1),
	RunE: runAddFromConfig,
}

var testConfigReadCmd = &cobra.Command{
	Use:   "test_config_read <configFile>",
	Short: "Parse a source config file without changing anything",
	Args:  cobra.ExactArgs(1),
	RunE:  runTestConfigRead,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(addFromConfigCmd)
	rootCmd.AddCommand(testConfigReadCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	src, err := source.New(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	return insertSource(cmd, src)
}

func runAddFromConfig(cmd *cobra.Command, args []string) error {
	src, err := source.FromConfig(args[0])
	if err != nil {
		return err
	}
	return insertSource(cmd, src)
}

func runTestConfigRead(cmd *cobra.Command, args []string) error {
	src, err := source.FromConfig(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:     %s\n", src.Name())
	fmt.Fprintf(out, "Path:     %s\n", src.Path())
	fmt.Fprintf(out, "Content:  %s\n", src.Content())
	fmt.Fprintf(out, "Scraper:  %s\n", src.Scraper())
	return nil
}

func insertSource(cmd *cobra.Command, src source.Source) error {
	c, err := newCoordinator()
	if err != nil {
		return err
	}
	if err := c.InsertSource(cmd.Context(), src); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", src)
	return nil
}

func completeAddArgs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 2 {
		return source.Contents(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
