package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shenikar/maritime_incident_dedup/internal/models"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one deduplication pass",
	Long: `Compare recent unmerged incident reports across sources and merge duplicates.

With --dry-run nothing is written: the pass only reports the pairs it would merge.
A zero --threshold or --max-records falls back to the defaults (0.8 and 100).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		maxRecords, _ := cmd.Flags().GetInt("max-records")
		asJSON, _ := cmd.Flags().GetBool("json")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		summary, err := dedupService.RunDeduplicationPass(ctx, models.RunOptions{
			DryRun:              dryRun,
			ConfidenceThreshold: threshold,
			MaxRecords:          maxRecords,
		})
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		}
		printSummary(summary)
		return nil
	},
}

func init() {
	runCmd.Flags().Bool("dry-run", false, "Report merge candidates without writing")
	runCmd.Flags().Float64("threshold", 0, "Minimum score for a merge (0 = default 0.8)")
	runCmd.Flags().Int("max-records", 0, "Maximum records to analyze (0 = default 100)")
	runCmd.Flags().Bool("json", false, "Print the summary as JSON")
	rootCmd.AddCommand(runCmd)
}

func printSummary(summary *models.RunSummary) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	title := "=== Deduplication Pass ==="
	if summary.DryRun {
		title = "=== Deduplication Pass (dry run) ==="
	}
	fmt.Printf("\n%s\n\n", cyan(title))
	fmt.Printf("  Records analyzed:   %d across %d sources\n", summary.RecordsAnalyzed, summary.SourceCount)
	fmt.Printf("  Pairs compared:     %d\n", summary.PairsCompared)
	fmt.Printf("  Potential matches:  %d (high %d, medium %d)\n",
		summary.PotentialMatchesFound, summary.HighConfidenceMatches, summary.MediumConfidenceMatches)
	fmt.Printf("  Merges performed:   %d\n", summary.MergesPerformed)
	fmt.Printf("  Duration:           %s\n\n", summary.Duration)

	if len(summary.Results) == 0 {
		fmt.Printf("  %s\n\n", gray("No merges"))
		return
	}

	for _, r := range summary.Results {
		switch {
		case r.Kind == models.MergeResultCandidate:
			fmt.Printf("  %s %s <-> %s  score %.3f\n", gray("○"), r.Record1ID, r.Record2ID, r.Score)
		case r.Success:
			fmt.Printf("  %s %s <- %s  score %.3f\n", green("●"), r.PrimaryID, r.SecondaryID, r.Score)
		case r.PrimaryID != uuid.Nil:
			fmt.Printf("  %s %s <- %s  score %.3f  %s\n", red("✗"), r.PrimaryID, r.SecondaryID, r.Score, red(r.Error))
		default:
			fmt.Printf("  %s %s <-> %s  score %.3f  %s\n", red("✗"), r.Record1ID, r.Record2ID, r.Score, red(r.Error))
		}
	}
	fmt.Println()
}
