package web

import (
	"testing"

	"github.com/paulmach/orb/geojson"

	"github.com/rouu123/world-map-name-distribution/internal/model"
)

const sampleFC = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"ISO_A3_EH": "TST", "NAME": "Testland"},
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]}
    },
    {
      "type": "Feature",
      "properties": {"ISO_A3_EH": "XXX", "NAME": "Unknownia"},
      "geometry": {"type": "Polygon", "coordinates": [[[2,2],[3,2],[3,3],[2,2]]]}
    }
  ]
}`

func intp(n int) *int           { return &n }
func floatp(f float64) *float64 { return &f }

func TestJoinGeoJSON(t *testing.T) {
	records := []model.CountryRecord{
		{
			CountryKey:    "testland",
			Alpha3:        "TST",
			SurnameCount:  intp(40),
			ForenameCount: intp(10),
			Ratio:         floatp(0.25),
			Color:         model.ColorTealDark,
		},
	}

	out, err := JoinGeoJSON([]byte(sampleFC), "ISO_A3_EH", records)
	if err != nil {
		t.Fatalf("JoinGeoJSON: %v", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(out)
	if err != nil {
		t.Fatalf("decoding joined output: %v", err)
	}

	if len(fc.Features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(fc.Features))
	}

	matched := fc.Features[0]
	if matched.Properties["color"] != model.ColorTealDark {
		t.Errorf("expected %s, got %v", model.ColorTealDark, matched.Properties["color"])
	}
	if matched.Properties["country_key"] != "testland" {
		t.Errorf("expected country_key testland, got %v", matched.Properties["country_key"])
	}
	if matched.Properties["ratio"] != 0.25 {
		t.Errorf("expected ratio 0.25, got %v", matched.Properties["ratio"])
	}

	// Unmatched features get the no-data color and no counts.
	unmatched := fc.Features[1]
	if unmatched.Properties["color"] != model.ColorNoData {
		t.Errorf("expected no-data color, got %v", unmatched.Properties["color"])
	}
	if _, ok := unmatched.Properties["country_key"]; ok {
		t.Error("unmatched feature should not carry a country key")
	}
}

func TestJoinGeoJSON_RecordWithoutData(t *testing.T) {
	records := []model.CountryRecord{
		{CountryKey: "testland", Alpha3: "TST", Color: model.ColorNoData},
	}

	out, err := JoinGeoJSON([]byte(sampleFC), "ISO_A3_EH", records)
	if err != nil {
		t.Fatalf("JoinGeoJSON: %v", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(out)
	if err != nil {
		t.Fatalf("decoding joined output: %v", err)
	}

	if fc.Features[0].Properties["color"] != model.ColorNoData {
		t.Errorf("expected no-data color, got %v", fc.Features[0].Properties["color"])
	}
}

func TestJoinGeoJSON_BadInput(t *testing.T) {
	if _, err := JoinGeoJSON([]byte("not geojson"), "ISO_A3_EH", nil); err == nil {
		t.Fatal("expected error for malformed input")
	}
}
