package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/rouu123/world-map-name-distribution/internal/builder"
	"github.com/rouu123/world-map-name-distribution/internal/catalog"
	"github.com/rouu123/world-map-name-distribution/internal/classifier"
	"github.com/rouu123/world-map-name-distribution/internal/fetcher"
	"github.com/rouu123/world-map-name-distribution/internal/model"
	"github.com/rouu123/world-map-name-distribution/internal/store"
)

var fetchForce bool

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch surname/forename counts for every country (cached, rate-limited)",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Catalog construction is fatal on correction drift, before any
		// network activity.
		cat, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("building country catalog: %w", err)
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		existing := make(map[string]model.CountryRecord)
		if !fetchForce {
			records, err := s.ReadDataset()
			if err != nil {
				return fmt.Errorf("reading cached dataset: %w", err)
			}
			for _, rec := range records {
				if rec.HasCounts() {
					existing[rec.Alpha3] = rec
				}
			}
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		f := fetcher.New(cfg.Fetch.BaseURL, cfg.Fetch.UserAgent,
			fetcher.NewRateLimiter(cfg.Fetch.RateLimit, cfg.Fetch.Burst))

		fmt.Printf("Fetching name counts for %d countries (%d cached)...\n", cat.Len(), len(existing))

		b := &builder.Builder{
			Fetcher: f,
			Cached:  existing,
			OnRecord: func(i, total int, rec model.CountryRecord, cached bool) {
				if cached {
					logVerbose("  [%d/%d] %s: cached", i+1, total, rec.CountryKey)
					return
				}
				if ctx.Err() != nil {
					return
				}
				fmt.Printf("  [%d/%d] %s (%s): surnames=%s forenames=%s\n",
					i+1, total, rec.CountryKey, rec.Alpha3,
					formatCount(rec.SurnameCount), formatCount(rec.ForenameCount))
			},
		}

		records := b.Build(ctx, cat)
		if ctx.Err() != nil {
			fmt.Println("\nInterrupted; remaining countries recorded without counts")
		}

		classifier.ClassifyAll(records)

		if err := s.WriteDataset(records); err != nil {
			return fmt.Errorf("saving dataset: %w", err)
		}

		now := time.Now().UTC().Format(time.RFC3339)
		if err := s.SetMeta("fetched_at", now); err != nil {
			return err
		}
		if err := s.SetMeta("classified_at", now); err != nil {
			return err
		}

		fmt.Printf("Saved %d records.\n", len(records))
		return nil
	},
}

func formatCount(n *int) string {
	if n == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d", *n)
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchForce, "force", false, "Re-fetch countries that already have cached counts")
	rootCmd.AddCommand(fetchCmd)
}
