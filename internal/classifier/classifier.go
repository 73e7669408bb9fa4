package classifier

import (
	"github.com/rouu123/world-map-name-distribution/internal/model"
)

// bucket is one ratio bin. Bins are half-open intervals (lower, upper],
// except the first which is closed at 0.
type bucket struct {
	upper float64
	color string
}

var buckets = []bucket{
	{0.25, model.ColorTealDark},
	{0.5, model.ColorTealMid},
	{1, model.ColorTealLight},
	{1.5, model.ColorOrangeLight},
	{2, model.ColorOrangeMid},
}

// Classify computes the forename/surname ratio and assigns a color bucket.
// The ratio is defined only when both counts are present and strictly
// positive; otherwise the record gets the no-data color.
func Classify(rec *model.CountryRecord) {
	if rec.SurnameCount == nil || rec.ForenameCount == nil ||
		*rec.SurnameCount <= 0 || *rec.ForenameCount <= 0 {
		rec.Ratio = nil
		rec.Color = model.ColorNoData
		return
	}

	ratio := float64(*rec.ForenameCount) / float64(*rec.SurnameCount)
	rec.Ratio = &ratio
	rec.Color = ColorFor(ratio)
}

// ColorFor maps a defined ratio to its bucket color. Classification is a
// non-decreasing step function of the ratio.
func ColorFor(ratio float64) string {
	for _, b := range buckets {
		if ratio <= b.upper {
			return b.color
		}
	}
	return model.ColorOrangeDark
}

// ClassifyAll classifies every record in place.
func ClassifyAll(records []model.CountryRecord) {
	for i := range records {
		Classify(&records[i])
	}
}
