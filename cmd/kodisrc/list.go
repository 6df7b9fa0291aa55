package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/kodisrc/internal/kodi"
)

var listFlags struct {
	JSON  bool
	Check bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sources in the video database",
	Long: `Lists path rows that have a content type. With --check, also reports whether
sources.xml and mediasources.xml carry a matching entry.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listFlags.JSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listFlags.Check, "check", false, "Compare against sources.xml and mediasources.xml")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	c, err := newCoordinator()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if listFlags.Check {
		status, err := c.Status(cmd.Context())
		if err != nil {
			return err
		}
		if listFlags.JSON {
			return printJSON(out, status)
		}
		printStatusHuman(out, status)
		return nil
	}

	rows, err := c.ListSources(cmd.Context())
	if err != nil {
		return err
	}
	if listFlags.JSON {
		return printJSON(out, rows)
	}
	printSourcesHuman(out, rows)
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSourcesHuman(w io.Writer, rows []kodi.PathRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No sources")
		return
	}

	fmt.Fprintf(w, "Sources (%d):\n\n", len(rows))
	fmt.Fprintf(w, " %4s │ %-8s │ %-40s │ %s\n", "ID", "CONTENT", "PATH", "SCRAPER")
	fmt.Fprintln(w, "──────┼──────────┼──────────────────────────────────────────┼─────────")
	for _, r := range rows {
		fmt.Fprintf(w, " %4d │ %-8s │ %-40s │ %s\n", r.ID, r.Content, truncate(r.Path, 40), r.Scraper)
	}
}

func printStatusHuman(w io.Writer, status []kodi.SourceStatus) {
	if len(status) == 0 {
		fmt.Fprintln(w, "No sources")
		return
	}

	fmt.Fprintf(w, "Sources (%d):\n\n", len(status))
	fmt.Fprintf(w, " %4s │ %-8s │ %-40s │ %-7s │ %s\n", "ID", "CONTENT", "PATH", "SOURCES", "MEDIASOURCES")
	fmt.Fprintln(w, "──────┼──────────┼──────────────────────────────────────────┼─────────┼─────────────")
	for _, s := range status {
		fmt.Fprintf(w, " %4d │ %-8s │ %-40s │ %-7s │ %s\n", s.ID, s.Content, truncate(s.Path, 40), mark(s.InSources), mark(s.InMediaSources))
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

func mark(ok bool) string {
	if ok {
		return "yes"
	}
	return "missing"
}
