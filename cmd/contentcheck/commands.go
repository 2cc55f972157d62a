package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/content"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "contentcheck",
		Short:         "Parse portfolio content documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("format", "json", "output format: json or yaml")

	root.AddCommand(newParseCmd(), newSiteCmd(), newWatchCmd())
	return root
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <profile|experience|catalog|contact> FILE",
		Short: "Parse one document and print the resulting record",
		Long: `Parse one document and print the resulting record.

Examples:
  contentcheck parse catalog content/portfolio.md
  contentcheck parse experience content/experience.md --format yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}
			record, err := content.ParseDocument(args[0], string(data))
			if err != nil {
				return err
			}
			return writeRecord(cmd, record)
		},
	}
}

func newSiteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Load every document of a content directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			site, err := content.NewLibrary(os.DirFS(dir)).Site(cmd.Context())
			if err != nil {
				return err
			}
			return writeRecord(cmd, site)
		},
	}
	cmd.Flags().String("dir", defaultContentDir(), "content directory")
	return cmd
}

func defaultContentDir() string {
	if dir := os.Getenv("CONTENT_DIR"); dir != "" {
		return dir
	}
	return "content"
}

func writeRecord(cmd *cobra.Command, record any) error {
	format, _ := cmd.Flags().GetString("format")
	return encode(cmd.OutOrStdout(), format, record)
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}
