package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"autolife/adjudicator/pkg/catalog"
	"autolife/adjudicator/pkg/cli"
)

var policiesFlags struct {
	output string
}

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "Inspect the policy catalog",
	Long:  `Inspect the policy catalog configured under catalog.path.`,
}

var policiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the loaded policy catalog",
	Long: `Load the policy catalog from the configured path and print each
policy's number, type, holder, status, and coverage entries.

Examples:
  # List policies as a table
  adjudicator policies list

  # List policies as JSON
  adjudicator policies list --output json`,
	RunE: listPolicies,
}

var policiesValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a policy catalog file",
	Long: `Load and validate a policy catalog file without starting the server.
Uses the configured catalog path unless an explicit path is given.

Examples:
  # Validate the configured catalog
  adjudicator policies validate

  # Validate a specific file or directory
  adjudicator policies validate ./policies.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: validatePolicies,
}

func init() {
	rootCmd.AddCommand(policiesCmd)
	policiesCmd.AddCommand(policiesListCmd)
	policiesCmd.AddCommand(policiesValidateCmd)

	policiesListCmd.Flags().StringVarP(&policiesFlags.output, "output", "o", "text", "output format (text, json)")
}

func listPolicies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}

	manager, err := catalog.NewManager(cfg.Catalog.Path, logger)
	if err != nil {
		return cli.NewCommandError("policies list", fmt.Errorf("failed to load policy catalog: %w", err))
	}
	defer manager.Stop()

	policies := manager.Catalog().List()

	if policiesFlags.output == string(cli.FormatJSON) {
		formatter := &cli.JSONFormatter{Indent: true}
		return formatter.FormatTo(os.Stdout, policies)
	}

	fmt.Printf("%-16s %-8s %-22s %-10s %s\n", "POLICY", "TYPE", "HOLDER", "STATUS", "COVERAGES")
	for _, p := range policies {
		fmt.Printf("%-16s %-8s %-22s %-10s %d\n",
			p.PolicyNumber, p.PolicyType, p.Policyholder, p.Status, len(p.Coverages))
		for _, c := range p.Coverages {
			fmt.Printf("    %-28s limit $%.0f, deductible $%.0f\n",
				c.CoverageType, c.CoverageLimit, c.Deductible)
		}
	}
	fmt.Printf("\n%d policies loaded from %s\n", len(policies), cfg.Catalog.Path)
	return nil
}

func validatePolicies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}

	path := cfg.Catalog.Path
	if len(args) == 1 {
		path = args[0]
	}

	source := catalog.NewFileSource(path, logger)
	policies, err := source.LoadPolicies()
	if err != nil {
		fmt.Printf("✗ %s is invalid\n", path)
		return cli.NewCommandError("policies validate", err)
	}

	fmt.Printf("✓ %s is valid (%d policies)\n", path, len(policies))
	return nil
}
