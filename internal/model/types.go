package model

// CountryRecord is one row of the name-distribution dataset.
type CountryRecord struct {
	CountryKey    string   `json:"country_key" csv:"country_key"`
	Alpha3        string   `json:"alpha3" csv:"alpha3"`
	SurnameCount  *int     `json:"surname_count,omitempty" csv:"surname_count"`
	ForenameCount *int     `json:"forename_count,omitempty" csv:"forename_count"`
	Ratio         *float64 `json:"ratio,omitempty" csv:"ratio"`
	Color         string   `json:"color" csv:"color"`
}

// HasCounts reports whether both counts were successfully fetched.
func (r *CountryRecord) HasCounts() bool {
	return r.SurnameCount != nil && r.ForenameCount != nil
}

// NameType selects which name population figure to fetch.
type NameType string

const (
	Surnames  NameType = "surnames"
	Forenames NameType = "forenames"
)

// Ratio bucket colors, low ratio (surname-heavy) to high ratio (forename-heavy).
const (
	ColorTealDark    = "#3b7b80"
	ColorTealMid     = "#68999d"
	ColorTealLight   = "#89afb4"
	ColorOrangeLight = "#f1a85f"
	ColorOrangeMid   = "#ee9133"
	ColorOrangeDark  = "#db780b"

	// ColorNoData marks countries where the ratio could not be determined.
	ColorNoData = "#ffffff"
)

// LegendEntry describes one color in the map legend.
type LegendEntry struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// Legend lists the six ratio buckets in order plus the no-data entry.
func Legend() []LegendEntry {
	return []LegendEntry{
		{ColorTealDark, "Many more surnames"},
		{ColorTealMid, "More surnames"},
		{ColorTealLight, "Moderately more surnames"},
		{ColorOrangeLight, "Moderately more forenames"},
		{ColorOrangeMid, "More forenames"},
		{ColorOrangeDark, "Many more forenames"},
		{ColorNoData, "No data"},
	}
}
