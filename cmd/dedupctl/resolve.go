package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <record-id>",
	Short: "Print the effective primary of a record",
	Long:  `Follow merged_into links from the record and print the record that currently holds the merged data.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid record id %q: %w", args[0], err)
		}

		primary, err := dedupService.ResolvePrimary(cmd.Context(), id)
		if err != nil {
			return err
		}

		yellow := color.New(color.FgYellow).SprintFunc()
		if primary.ID == id {
			fmt.Printf("%s is its own primary (%s)\n", id, primary.MergeStatus)
		} else {
			fmt.Printf("%s -> %s\n", id, yellow(primary.ID))
		}
		fmt.Printf("  source:  %s\n", primary.Source)
		fmt.Printf("  title:   %s\n", primary.Title)
		if len(primary.MergedSources) > 0 {
			fmt.Printf("  merged:  %v\n", primary.MergedSources)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
