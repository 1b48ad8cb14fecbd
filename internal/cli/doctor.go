package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"azmig/internal/conformance"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate the rule corpus against the reference matrix",
	Long: `Run the conformance diagnostics: replay the reference move-support matrix
through the analyzer and verify every documentation link the corpus cites.

The two sections are independent. A missing reference matrix skips the logic
section; link checks still run. Discrepancies are reported, never fatal.

Exit codes:
	0 = all checks passed
	1 = logic failures or broken links found

Examples:
  azmig doctor
  azmig doctor --matrix ./reference/move-support-matrix.csv --skip-links
  azmig doctor --json > diagnostics.json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDoctor(cmd))
	},
}

func runDoctor(cmd *cobra.Command) int {
	corpus, err := loadCorpus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	harness := conformance.NewHarness(corpus, conformance.Options{
		MatrixPath:  cfg.Diagnostics.MatrixPath,
		ChunkSize:   cfg.Diagnostics.LinkChunkSize,
		LinkTimeout: time.Duration(cfg.Diagnostics.LinkTimeoutSeconds) * time.Second,
		SkipLinks:   cfg.Diagnostics.SkipLinks,
	})
	report := harness.Run(cmd.Context())

	if doctorJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(report)
	} else {
		printReport(cmd.OutOrStdout(), report)
	}

	if report.Logic.Failed > 0 || report.Links.Broken > 0 {
		return 1
	}
	return 0
}

func printReport(w io.Writer, report conformance.Report) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	bold.Fprintf(w, "Diagnostics run %s\n\n", report.RunID)

	bold.Fprintln(w, "Logic conformance")
	if report.Logic.Skipped {
		fmt.Fprintln(w, "  skipped (reference matrix not found)")
	} else {
		fmt.Fprintf(w, "  %d checks, %d passed, %d failed\n", report.Logic.Total, report.Logic.Passed, report.Logic.Failed)
		for _, f := range report.Logic.Failures {
			red.Fprintf(w, "  row %d %s [%s]: expected %s, got %s\n", f.Row, f.ResourceType, f.Scenario, f.Expected, f.Actual)
		}
	}
	fmt.Fprintln(w)

	bold.Fprintln(w, "Link health")
	fmt.Fprintf(w, "  %d links checked, %d broken\n", report.Links.Checked, report.Links.Broken)
	for _, l := range report.Links.Findings {
		red.Fprintf(w, "  %s (%s)\n", l.URL, l.Detail)
		for _, id := range l.RuleIDs {
			fmt.Fprintf(w, "    cited by %s\n", id)
		}
	}

	if report.Logic.Failed == 0 && report.Links.Broken == 0 {
		fmt.Fprintln(w)
		green.Fprintln(w, "All diagnostics passed.")
	}
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVar(&cfg.Diagnostics.MatrixPath, "matrix", "", "Path to the reference matrix (default reference/move-support-matrix.csv)")
	doctorCmd.Flags().BoolVar(&cfg.Diagnostics.SkipLinks, "skip-links", false, "Skip the outbound link-health checks")
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Print the report as JSON")
}
