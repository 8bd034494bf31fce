package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/filemark/pkg/filemark"
	"github.com/spf13/cobra"
)

var (
	listJSON bool
	listGlob string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all records in the store",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		cfg, err := filemark.LoadFileConfig(cwd)
		if err != nil {
			fatal("Bad configuration", err)
		}

		opts := []filemark.Option{
			filemark.WithLogger(slog.Default()),
			filemark.WithMaxAncestors(cfg.MaxParents),
		}
		if cfg.Store != "" {
			opts = append(opts, filemark.WithStoreBasename(cfg.Store))
		}

		svc, err := filemark.Open(cwd, opts...)
		if err != nil {
			fatal("Failed to open store", err)
		}

		entries, err := svc.Entries(listGlob)
		if err != nil {
			fatal("Failed to list records", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(entries); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, e := range entries {
			fmt.Printf("%s (%s): %s\n", e.Fname, e.Date, e.Note)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listGlob, "glob", "", "Filter records by filename glob pattern")
}
