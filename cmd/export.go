package cmd

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/rouu123/world-map-name-distribution/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the classified dataset as CSV",
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

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOut, err)
		}
		defer f.Close()

		if err := gocsv.MarshalFile(&records, f); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}

		fmt.Printf("Exported %d records to %s\n", len(records), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "data.csv", "Output CSV path")
	rootCmd.AddCommand(exportCmd)
}
