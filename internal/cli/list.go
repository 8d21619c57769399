package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/bernardogv/treasure-hunter/internal/layout"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the directories and files a run creates",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listOutput is the JSON shape of the layout listing.
type listOutput struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Directories []string `json:"directories"`
	Files       []string `json:"files"`
}

func runList(cmd *cobra.Command, args []string) error {
	l, err := layout.Load()
	if err != nil {
		return fmt.Errorf("loading layout: %w", err)
	}

	if listJSON {
		return printListJSON(cmd, l)
	}
	return printListTable(cmd, l)
}

func printListTable(cmd *cobra.Command, l *layout.Layout) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s: %d directories, %d files\n\n", l.Name, l.Version, len(l.Directories), len(l.Files))

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KIND\tPATH\tBYTES")
	for _, d := range l.Directories {
		fmt.Fprintf(w, "dir\t%s/\t-\n", d.Path)
	}
	for _, f := range l.Files {
		fmt.Fprintf(w, "file\t%s\t%d\n", f.Path, len(f.Content))
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, l *layout.Layout) error {
	o := listOutput{
		Name:        l.Name,
		Version:     l.Version.String(),
		Directories: make([]string, 0, len(l.Directories)),
		Files:       make([]string, 0, len(l.Files)),
	}
	for _, d := range l.Directories {
		o.Directories = append(o.Directories, d.Path)
	}
	for _, f := range l.Files {
		o.Files = append(o.Files, f.Path)
	}

	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
