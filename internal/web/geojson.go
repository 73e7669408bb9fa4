package web

import (
	"fmt"

	"github.com/paulmach/orb/geojson"

	"github.com/rouu123/world-map-name-distribution/internal/model"
)

// JoinGeoJSON merges the dataset into a country-polygon FeatureCollection on
// the alpha-3 code found in isoProperty. Every feature gets a fill color;
// countries without a record (or without data) get the no-data color.
func JoinGeoJSON(raw []byte, isoProperty string, records []model.CountryRecord) ([]byte, error) {
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding feature collection: %w", err)
	}

	byAlpha3 := make(map[string]model.CountryRecord, len(records))
	for _, rec := range records {
		byAlpha3[rec.Alpha3] = rec
	}

	for _, f := range fc.Features {
		a3, _ := f.Properties[isoProperty].(string)

		rec, ok := byAlpha3[a3]
		if !ok || rec.Color == "" {
			f.Properties["color"] = model.ColorNoData
			continue
		}

		f.Properties["color"] = rec.Color
		f.Properties["country_key"] = rec.CountryKey
		if rec.SurnameCount != nil {
			f.Properties["surname_count"] = *rec.SurnameCount
		}
		if rec.ForenameCount != nil {
			f.Properties["forename_count"] = *rec.ForenameCount
		}
		if rec.Ratio != nil {
			f.Properties["ratio"] = *rec.Ratio
		}
	}

	out, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding feature collection: %w", err)
	}
	return out, nil
}
