package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/FlazeIGuess/unitune-worker/internal/core/sharelink"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List the supported music platforms",
	Long:  "List every platform share-link identifiers can reference, with the URL template each one resolves to.",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Key", "Name", "URL Template", "Example Identifier"})

		for _, p := range sharelink.Platforms() {
			t.AppendRow(table.Row{
				p.Key,
				p.Name,
				p.Template,
				sharelink.Encode(p.Key, "track", "123"),
			})
		}

		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d platforms supported\n", len(sharelink.Platforms()))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <identifier>",
	Short: "Decode a share-link identifier",
	Long:  "Decode an /s/{identifier} path segment into the canonical music URL it resolves to.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier := strings.TrimSpace(args[0])

		musicURL, err := sharelink.Decode(identifier)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), musicURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(decodeCmd)
}
