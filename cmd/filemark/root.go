package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/filemark/pkg/adapters/fs"
	"github.com/aretw0/filemark/pkg/core"
	"github.com/aretw0/filemark/pkg/filemark"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	hashes     []string
	addFlag    bool
	noAddFlag  bool
	noteFlag   string
	maxParents int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "filemark [file...]",
	Short: "Attach notes to files, keyed by their content digest",
	Long: `Filemark annotates files by SHA-256 digest instead of path, so a note
survives renames and moves. It finds its store by walking up from the
current directory, looks each requested file (or raw digest) up, and
creates or edits records according to the add-policy.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		cfg, err := filemark.LoadFileConfig(cwd)
		if err != nil {
			fatal("Bad configuration", err)
		}

		prompter := newStdinPrompter()
		svc := openService(cwd, cfg, prompter)
		if svc == nil {
			return // user declined to generate a store
		}

		policy := resolvePolicy(cfg.Policy)
		for _, fname := range args {
			processOne(svc, core.Request{Path: fname, Note: noteFlag}, policy)
		}
		for _, h := range hashes {
			processOne(svc, core.Request{Digest: h, Note: noteFlag}, policy)
		}

		if err := svc.Flush(); err != nil {
			fatal("Failed to save store", err)
		}
	},
}

// openService locates and loads the store, offering to generate one in
// the current directory when none is found. Returns nil if the user
// declines or cancels the offer.
func openService(cwd string, cfg filemark.FileConfig, prompter core.Prompter) *filemark.Service {
	bound := maxParents
	if bound <= 0 {
		bound = cfg.MaxParents
	}

	opts := []filemark.Option{
		filemark.WithLogger(slog.Default()),
		filemark.WithPrompter(prompter),
		filemark.WithMaxAncestors(bound),
	}
	if cfg.Store != "" {
		opts = append(opts, filemark.WithStoreBasename(cfg.Store))
	}

	svc, err := filemark.Open(cwd, opts...)
	if errors.Is(err, core.ErrNoStore) {
		storeName := fs.DefaultStoreFile
		if cfg.Store != "" {
			storeName = cfg.Store + ".json"
		}

		ok, perr := prompter.Confirm(fmt.Sprintf("%s not found, generate?", storeName), true)
		if perr != nil || !ok {
			return nil
		}
		svc, err = filemark.Open(cwd, append(opts, filemark.WithCreate(true))...)
	}
	if err != nil {
		fatal("Failed to open store", err)
	}
	return svc
}

func processOne(svc *filemark.Service, req core.Request, policy core.Policy) {
	report, err := svc.Process(req, policy)
	if errors.Is(err, core.ErrCancelled) {
		target := req.Path
		if target == "" {
			target = req.Digest
		}
		slog.Info("skipping", "target", target)
		return
	}
	if err != nil {
		fatal("Processing failed", err)
	}
	printReport(report)
}

// resolvePolicy maps the flags (which win) and the config file default
// onto an add-policy. The fallback matches the original tool: ask.
func resolvePolicy(configured string) core.Policy {
	switch {
	case noAddFlag:
		return core.PolicySkip
	case addFlag:
		return core.PolicyAdd
	}
	if configured != "" {
		// Already validated by LoadFileConfig.
		policy, _ := core.ParsePolicy(configured)
		return policy
	}
	return core.PolicyAsk
}

func printReport(report core.Report) {
	switch {
	case report.Found:
		name := report.Record.Fname
		if report.Query != "" && report.Query != name {
			name = fmt.Sprintf("%s -> %s", report.Query, name)
		}
		fmt.Printf("%s (%s): %s\n", name, report.Record.Date, report.Record.Note)
	case report.Missing != "":
		fmt.Printf("%s not found\n", report.Missing)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringArrayVarP(&hashes, "hash", "s", nil, "Digest to look up instead of hashing a file")
	rootCmd.Flags().BoolVarP(&addFlag, "add", "a", false, "Add or edit without looking up first")
	rootCmd.Flags().BoolVarP(&noAddFlag, "no-add", "o", false, "Never create records, only look up")
	rootCmd.Flags().StringVarP(&noteFlag, "note", "n", "", "Note text (prompted for when empty)")
	rootCmd.Flags().IntVarP(&maxParents, "max-parents", "m", 0, "Bound on the upward store search (0 = path depth)")
	rootCmd.MarkFlagsMutuallyExclusive("add", "no-add")
}
