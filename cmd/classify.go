package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rouu123/world-map-name-distribution/internal/classifier"
	"github.com/rouu123/world-map-name-distribution/internal/store"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Recompute ratios and color buckets over the cached dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		records, err := s.ReadDataset()
		if err != nil {
			return fmt.Errorf("reading dataset (run fetch first): %w", err)
		}
		if len(records) == 0 {
			return fmt.Errorf("dataset is empty (run fetch first)")
		}

		classifier.ClassifyAll(records)

		if err := s.WriteDataset(records); err != nil {
			return fmt.Errorf("saving dataset: %w", err)
		}
		if err := s.SetMeta("classified_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
			return err
		}

		classified := 0
		for _, rec := range records {
			if rec.Ratio != nil {
				classified++
			}
		}
		fmt.Printf("Classified %d records (%d with defined ratio).\n", len(records), classified)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
