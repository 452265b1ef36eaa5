package main

import (
	"fmt"
	"log"
	"os"

	"filing-loader/ingest"

	"github.com/spf13/cobra"
)

type cliOptions struct {
	configFile string
	dbPath     string
	debug      bool

	source     string
	quarantine string
	force      bool
	workers    int
	batchSize  int
	ciks       []string
}

func main() {
	opts := &cliOptions{}

	cmdRoot := &cobra.Command{
		Use:   "filing-loader",
		Short: "load regulatory filing archives into a local database",
		Long: `filing-loader discovers ZIP archives of regulatory filing tables,
normalizes their vendor column headers onto canonical schemas, and
bulk-loads the rows into a SQLite database.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFlags(log.LstdFlags)
		},
	}
	cmdRoot.PersistentFlags().StringVar(&opts.configFile, "config", "", "load configuration from YAML file")
	cmdRoot.PersistentFlags().StringVar(&opts.dbPath, "db", "", "database path (overrides config)")
	cmdRoot.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log debugging information")

	for _, family := range []string{
		ingest.FamilyInsider,
		ingest.FamilyForm13F,
		ingest.FamilyNPORT,
		ingest.FamilyNMFP,
		ingest.FamilyFormD,
		ingest.FamilyExchange,
		ingest.FamilySwapReg,
	} {
		cmdRoot.AddCommand(cmdFamily(family, opts))
	}
	cmdRoot.AddCommand(cmdAll(opts))

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

// cmdFamily builds the subcommand that loads one form family.
func cmdFamily(family string, opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   family,
		Short: fmt.Sprintf("load %s filing archives", family),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := buildRunner(opts, family)
			if err != nil {
				return err
			}
			defer runner.Close()
			sum, err := runner.RunFamily(cmd.Context(), family)
			if err != nil {
				return err
			}
			if sum.ArchivesErrored() > 0 {
				return fmt.Errorf("%d archive(s) failed", sum.ArchivesErrored())
			}
			return nil
		},
	}
	addRunFlags(cmd, opts)
	return cmd
}

func cmdAll(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "load every form family configured in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := buildRunner(opts, "")
			if err != nil {
				return err
			}
			defer runner.Close()
			sums, err := runner.RunAll(cmd.Context())
			if err != nil {
				return err
			}
			var failed int
			for _, s := range sums {
				failed += s.ArchivesErrored()
			}
			if failed > 0 {
				return fmt.Errorf("%d archive(s) failed", failed)
			}
			return nil
		},
	}
	addRunFlags(cmd, opts)
	return cmd
}

func addRunFlags(cmd *cobra.Command, opts *cliOptions) {
	cmd.Flags().StringVar(&opts.source, "source", "", "directory scanned for archives (overrides config)")
	cmd.Flags().StringVar(&opts.quarantine, "quarantine", "", "move unreadable archives into this directory")
	cmd.Flags().BoolVar(&opts.force, "force", false, "reprocess archives already recorded in the ledger")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "archives loaded concurrently (overrides config)")
	cmd.Flags().IntVar(&opts.batchSize, "batch-size", 0, "rows per insert statement (overrides config)")
	cmd.Flags().StringSliceVar(&opts.ciks, "cik", nil, "load only rows for these CIKs (repeatable)")
}

// buildRunner merges file config and flags into a Runner. When family is
// non-empty and --source is given, the flag defines that family's source
// even without a config file.
func buildRunner(opts *cliOptions, family string) (*ingest.Runner, error) {
	rc := ingest.RunnerConfig{}
	if opts.configFile != "" {
		fileCfg, err := ingest.LoadConfig(opts.configFile)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", opts.configFile, err)
		}
		rc = ingest.RunnerConfigFromFile(fileCfg)
	}
	if opts.dbPath != "" {
		rc.DBPath = opts.dbPath
	}
	if opts.workers > 0 {
		rc.Workers = opts.workers
	}
	if opts.batchSize > 0 {
		rc.BatchSize = opts.batchSize
	}
	if len(opts.ciks) > 0 {
		rc.CIKs = opts.ciks
	}
	if opts.debug {
		rc.Debug = true
	}
	rc.Force = opts.force

	if opts.source != "" {
		if family == "" {
			return nil, fmt.Errorf("--source requires a form family subcommand")
		}
		if rc.Sources == nil {
			rc.Sources = make(map[string]ingest.SourceConfig)
		}
		rc.Sources[family] = ingest.SourceConfig{Dir: opts.source, QuarantineDir: opts.quarantine}
	} else if opts.quarantine != "" && family != "" {
		if src, ok := rc.Sources[family]; ok {
			src.QuarantineDir = opts.quarantine
			rc.Sources[family] = src
		}
	}

	return ingest.NewRunner(rc)
}
