package builder

import (
	"context"
	"fmt"
	"os"

	"github.com/rouu123/world-map-name-distribution/internal/catalog"
	"github.com/rouu123/world-map-name-distribution/internal/model"
)

// CountFetcher retrieves one name population figure per call.
type CountFetcher interface {
	FetchNameCount(ctx context.Context, countryKey string, nameType model.NameType) (int, bool)
}

// Builder assembles the per-country dataset by driving the fetcher over a
// catalog. Per-country failures never abort the run.
type Builder struct {
	Fetcher CountFetcher

	// Cached records, keyed by alpha-3, are reused instead of fetched.
	Cached map[string]model.CountryRecord

	// OnRecord, if set, is called after each record is assembled.
	OnRecord func(i, total int, rec model.CountryRecord, cached bool)
}

// Build produces exactly one record per catalog entry, in catalog order.
// Once ctx is cancelled the remaining countries are emitted with both counts
// missing, so the returned dataset is always full-length.
func (b *Builder) Build(ctx context.Context, cat *catalog.Catalog) []model.CountryRecord {
	entries := cat.Entries()
	records := make([]model.CountryRecord, 0, len(entries))

	for i, e := range entries {
		var rec model.CountryRecord
		cached := false

		if c, ok := b.Cached[e.Alpha3]; ok {
			rec = c
			cached = true
		} else if ctx.Err() != nil {
			rec = model.CountryRecord{CountryKey: e.Key, Alpha3: e.Alpha3}
		} else {
			rec = b.BuildRecord(ctx, e)
		}

		records = append(records, rec)
		if b.OnRecord != nil {
			b.OnRecord(i, len(entries), rec, cached)
		}
	}

	return records
}

// BuildRecord fetches both counts for one country. Anything unexpected
// during assembly downgrades both counts to missing instead of failing.
func (b *Builder) BuildRecord(ctx context.Context, e catalog.Entry) (rec model.CountryRecord) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "  WARNING: assembling record for %s: %v\n", e.Key, r)
			rec = model.CountryRecord{CountryKey: e.Key, Alpha3: e.Alpha3}
		}
	}()

	rec = model.CountryRecord{CountryKey: e.Key, Alpha3: e.Alpha3}

	if n, ok := b.Fetcher.FetchNameCount(ctx, e.Key, model.Surnames); ok {
		rec.SurnameCount = &n
	}
	if n, ok := b.Fetcher.FetchNameCount(ctx, e.Key, model.Forenames); ok {
		rec.ForenameCount = &n
	}

	return rec
}
