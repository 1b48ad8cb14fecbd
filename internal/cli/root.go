package cli

import (
	"fmt"
	"os"

	"azmig/internal/config"
	"azmig/internal/logging"
	"azmig/internal/rules"
	"azmig/internal/rules/rulesets"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var cfg = config.New()

var rootCmd = &cobra.Command{
	Use:   "azmig",
	Short: "Assess Azure resource inventories for migration readiness",
	Long: `azmig classifies Azure resources against a declarative rule corpus and
reports, per resource, whether a migration scenario can proceed.

Four scenarios are supported: cross-tenant, cross-subscription,
cross-resourcegroup and cross-region. Resource-group moves inherit every
subscription-move rule.

azmig is assess-only: it reads an exported inventory and never touches the
cloud resources themselves.

Examples:
	# Assess an inventory export for a subscription move
	azmig assess --inventory resources.json --scenario cross-subscription

	# List the rule corpus
	azmig rules list

	# Validate the corpus against the reference move-support matrix
	azmig doctor

	# Print build info
	azmig version`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetVerbose(cfg.Runtime.Verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, "verbose", false, "Enable verbose logging (prints every rule decision and link check)")
}

// loadCorpus assembles the built-in rule corpus. The corpus is validated at
// load; an error here is a build defect in the rulesets package.
func loadCorpus() (*rules.Corpus, error) {
	corpus, err := rules.NewCorpus(rulesets.All()...)
	if err != nil {
		return nil, fmt.Errorf("load rule corpus: %w", err)
	}
	return corpus, nil
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
