package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rouu123/world-map-name-distribution/internal/catalog"
	"github.com/rouu123/world-map-name-distribution/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show pipeline progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("building country catalog: %w", err)
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		fmt.Printf("Pipeline Status\n")
		fmt.Printf("===============\n")
		fmt.Printf("Catalog countries:  %d\n", cat.Len())
		fmt.Printf("Records stored:     %d\n", s.RecordCount())
		fmt.Printf("With both counts:   %d\n", s.FetchedCount())
		fmt.Printf("With ratio bucket:  %d\n", s.ClassifiedCount())

		if at := s.GetMeta("fetched_at"); at != "" {
			fmt.Printf("Last fetch:         %s\n", at)
		}
		if at := s.GetMeta("classified_at"); at != "" {
			fmt.Printf("Last classify:      %s\n", at)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
