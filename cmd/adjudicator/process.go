package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"autolife/adjudicator/pkg/catalog"
	"autolife/adjudicator/pkg/claims"
	"autolife/adjudicator/pkg/cli"
)

var processFlags struct {
	text   string
	output string
}

var processCmd = &cobra.Command{
	Use:   "process [file]",
	Short: "Process a single claim and print the decision",
	Long: `Process one claim submission through the full analysis loop and print
the decided claim, including the recommendation, structured tool results,
and processing log.

The claim text is read from the given file, from --text, or from stdin
when the file argument is "-".

Examples:
  # Process a claim from a file
  adjudicator process claim.txt

  # Process inline text
  adjudicator process --text "Rear-ended on POL-AUTO-001, about $4,500 damage"

  # Process from stdin
  cat claim.txt | adjudicator process -`,
	Args: cobra.MaximumNArgs(1),
	RunE: processClaim,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&processFlags.text, "text", "t", "", "claim text to process")
	processCmd.Flags().StringVarP(&processFlags.output, "output", "o", "text", "output format (text, json)")
}

func processClaim(cmd *cobra.Command, args []string) error {
	claimText, err := readClaimText(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(claimText) == "" {
		return fmt.Errorf("claim text is empty")
	}

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
		return cli.NewCommandError("process", fmt.Errorf("failed to load policy catalog: %w", err))
	}
	defer manager.Stop()

	engine, err := buildEngine(cfg, manager.Catalog(), logger)
	if err != nil {
		return err
	}

	claim, err := engine.ProcessClaim(cmd.Context(), claimText)
	if err != nil {
		return cli.NewCommandError("process", err)
	}

	formatter, err := cli.NewFormatter(cli.OutputFormat(processFlags.output))
	if err != nil {
		return err
	}
	if processFlags.output == string(cli.FormatText) {
		printClaimSummary(claim)
		return nil
	}
	return formatter.FormatTo(os.Stdout, claim)
}

func readClaimText(args []string) (string, error) {
	if processFlags.text != "" {
		return processFlags.text, nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("provide a claim file, --text, or - for stdin")
	}
	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read claim file: %w", err)
	}
	return string(data), nil
}

func printClaimSummary(claim *claims.Claim) {
	fmt.Printf("Claim ID: %s\n", claim.ID)
	if claim.Information != nil {
		fmt.Printf("Policy:   %s (%s)\n", claim.Information.PolicyNumber, claim.Information.ClaimType)
		fmt.Printf("Amount:   $%.2f\n", claim.Information.ClaimAmount)
	}
	if claim.FraudAssessment != nil {
		fmt.Printf("Fraud:    %s (score %.0f)\n", claim.FraudAssessment.RiskLevel, claim.FraudAssessment.RiskScore)
	}
	if rec := claim.Recommendation; rec != nil {
		fmt.Printf("\nDecision: %s (confidence %.0f%%)\n", rec.Status, rec.Confidence*100)
		if rec.ApprovedAmount > 0 {
			fmt.Printf("Approved: $%.2f\n", rec.ApprovedAmount)
		}
		fmt.Printf("Reason:   %s\n", rec.Reasoning)
		for _, step := range rec.NextSteps {
			fmt.Printf("  - %s\n", step)
		}
	}
}
