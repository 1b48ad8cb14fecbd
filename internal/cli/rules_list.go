package cli

import (
	"fmt"
	"io"

	"azmig/internal/rules"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	rulesListQuiet    bool
	rulesListScenario string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage and list rules",
	Long: `Inspect the built-in rule corpus.

Rules are evaluated during assessments (see "azmig assess --help") and
validated against the reference matrix by "azmig doctor".

Examples:
  # List all rules
  azmig rules list

  # List only cross-region rules
  azmig rules list --scenario cross-region
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rules in corpus order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus, err := loadCorpus()
		if err != nil {
			return err
		}

		var scenario rules.Scenario
		if rulesListScenario != "" {
			scenario, err = rules.ParseScenario(rulesListScenario)
			if err != nil {
				return err
			}
		}

		for _, r := range corpus.Rules() {
			if scenario != "" && r.Scenario != scenario {
				continue
			}
			if rulesListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), r.ID)
			} else {
				printRule(cmd.OutOrStdout(), r)
			}
		}
		return nil
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show [rule-id]",
	Short: "Show details of a specific rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus, err := loadCorpus()
		if err != nil {
			return err
		}
		r, ok := corpus.ByID(args[0])
		if !ok {
			return fmt.Errorf("rule not found: %s", args[0])
		}
		printRule(cmd.OutOrStdout(), r)
		return nil
	},
}

func printRule(w io.Writer, r rules.Rule) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "RULE: %s\n", r.ID)
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintf(w, "Scenario:  %s\n", r.Scenario)
	fmt.Fprintf(w, "Applies:   %s\n", r.ResourceTypePattern)
	fmt.Fprintf(w, "Severity:  %s\n", r.Severity)
	if r.Condition != nil {
		fmt.Fprintf(w, "Condition: %s %s %v\n", r.Condition.Field, r.Condition.Operator, r.Condition.Value)
	}
	fmt.Fprintln(w, r.Message)
	if r.Impact != "" {
		fmt.Fprintf(w, "Impact: %s\n", r.Impact)
	}
	if r.Remediation != "" {
		fmt.Fprintf(w, "Remediation: %s\n", r.Remediation)
	}
	if r.ReferenceLink != "" {
		fmt.Fprintf(w, "Reference: %s\n", r.ReferenceLink)
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesListCmd.Flags().BoolVarP(&rulesListQuiet, "quiet", "q", false, "Only print rule IDs")
	rulesListCmd.Flags().StringVar(&rulesListScenario, "scenario", "", "Only show rules for this scenario")
	rulesCmd.AddCommand(rulesShowCmd)
}
