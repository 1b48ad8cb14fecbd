package cli

import (
	"fmt"
	"os"

	"azmig/internal/config"
	"azmig/internal/engine"
	"azmig/internal/inventory"
	"azmig/internal/output"
	"azmig/internal/rules"

	"github.com/spf13/cobra"
)

var assessConfigFile string

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess an inventory export for a migration scenario",
	Long: `Assess every resource in an inventory export against the rule corpus.

The inventory is a JSON array of resource records as returned by an Azure
Resource Graph query (id, name, type, resourceGroup, location,
subscriptionId, plus nested provider attributes).

Output:
	Console output is controlled by --console-format (default: text).
	Structured outputs can be written via:
	- --out / --out-format: write an aggregate JSON array or NDJSON stream to a file
	- --report: write a markdown summary report
	- --no-console: suppress the console sink (use with --out for machine output)

Exit codes:
	0 = every resource ready
	1 = blockers or criticals found
	2 = warnings found, nothing worse
	3 = fatal error (assessment did not run)

Examples:
  azmig assess --inventory resources.json --scenario cross-subscription
  azmig assess --inventory resources.json --scenario cross-region --report readiness.md
  azmig assess --inventory resources.json --no-console --out results.ndjson
  azmig assess --inventory resources.json --rules sub-public-ip-standard,sub-sql-server`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runAssess(cmd))
	},
}

func runAssess(cmd *cobra.Command) int {
	if assessConfigFile != "" {
		if err := applyConfigFile(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 3
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 3
	}

	scenario, err := rules.ParseScenario(cfg.Analysis.Scenario)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 3
	}

	corpus, err := loadCorpus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 3
	}
	corpus, err = corpus.Select(cfg.Analysis.Rules)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 3
	}

	provider, err := inventory.NewFileProvider(cfg.Inventory.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening inventory:", err)
		return 3
	}

	outMgr, err := setupOutputManager(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating output sinks:", err)
		return 3
	}
	defer outMgr.Close()

	return engine.NewRunner(corpus).Run(cmd.Context(), provider, scenario, outMgr)
}

// applyConfigFile layers the config file under explicit flags: file values
// replace defaults, but any flag set on the command line wins.
func applyConfigFile(cmd *cobra.Command) error {
	flagged := *cfg
	if err := config.LoadFile(assessConfigFile, cfg); err != nil {
		return err
	}

	reapply := map[string]func(){
		"inventory":             func() { cfg.Inventory.Path = flagged.Inventory.Path },
		"scenario":              func() { cfg.Analysis.Scenario = flagged.Analysis.Scenario },
		"rules":                 func() { cfg.Analysis.Rules = flagged.Analysis.Rules },
		"console-format":        func() { cfg.Output.ConsoleFormat = flagged.Output.ConsoleFormat },
		"console-filter-status": func() { cfg.Output.ConsoleFilterStatus = flagged.Output.ConsoleFilterStatus },
		"no-console":            func() { cfg.Output.NoConsole = flagged.Output.NoConsole },
		"out":                   func() { cfg.Output.Out = flagged.Output.Out },
		"out-format":            func() { cfg.Output.OutFormat = flagged.Output.OutFormat },
		"report":                func() { cfg.Output.Report = flagged.Output.Report },
	}
	for name, apply := range reapply {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	return nil
}

func setupOutputManager(cfg *config.Config) (*output.Manager, error) {
	outMgr := output.NewManager()

	if !cfg.Output.NoConsole {
		if err := outMgr.AddSink(output.NewConsoleSink(nil, cfg.Output.ConsoleFormat, cfg.Output.ConsoleFilterStatus)); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	if cfg.Output.Report != "" {
		rs, err := output.NewReportSink(cfg.Output.Report)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(rs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().StringVar(&cfg.Inventory.Path, "inventory", "", "Path to a JSON inventory export (required)")
	assessCmd.Flags().StringVar(&cfg.Analysis.Scenario, "scenario", cfg.Analysis.Scenario, "Migration scenario: cross-tenant, cross-subscription, cross-resourcegroup, cross-region")
	assessCmd.Flags().StringVar(&cfg.Analysis.Rules, "rules", "", "Only evaluate these rule IDs (comma-separated; empty = all rules)")
	assessCmd.Flags().StringVar(&cfg.Output.ConsoleFormat, "console-format", cfg.Output.ConsoleFormat, "Console output format: text, json, ndjson")
	assessCmd.Flags().StringSliceVar(&cfg.Output.ConsoleFilterStatus, "console-filter-status", nil, "Only show resources with these migration statuses")
	assessCmd.Flags().BoolVar(&cfg.Output.NoConsole, "no-console", false, "Suppress console output")
	assessCmd.Flags().StringVar(&cfg.Output.Out, "out", "", "Write results to a file (.json or .ndjson)")
	assessCmd.Flags().StringVar(&cfg.Output.OutFormat, "out-format", "", "Force the --out format instead of inferring from the extension")
	assessCmd.Flags().StringVar(&cfg.Output.Report, "report", "", "Write a markdown summary report to a file")
	assessCmd.Flags().StringVar(&assessConfigFile, "config", "", "Optional JSON or YAML config file (flags override file values)")
}
