package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pariz/gountries"
)

// Reference is one country from the ISO-3166 reference list.
type Reference struct {
	CommonName   string
	OfficialName string
	Alpha3       string
}

// Entry is one catalog row: the URL key used by the remote site and the
// alpha-3 code used to join against geometry and cached rows.
type Entry struct {
	Key    string
	Alpha3 string
}

// Catalog maps canonical country keys to alpha-3 codes, preserving
// insertion order. It is built once per run and read-only afterwards.
type Catalog struct {
	keys   []string
	alpha3 map[string]string
}

// Corrections renames catalog keys whose generated form does not match the
// remote site's URL scheme. Every old key must exist in the built catalog;
// drift between the reference data and this table is a fatal error.
var Corrections = map[string]string{
	"bosnia-and-herzegovina": "bosnia",
	"united-kingdom":         "england",
}

// Key normalizes a country name to the remote site's URL segment form.
func Key(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// Build constructs a catalog from a reference list. The key is the common
// name when available, else the official name. If two reference countries
// normalize to the same key, the later one wins.
func Build(refs []Reference) *Catalog {
	c := &Catalog{alpha3: make(map[string]string, len(refs))}
	for _, ref := range refs {
		name := ref.CommonName
		if name == "" {
			name = ref.OfficialName
		}
		key := Key(name)
		if _, exists := c.alpha3[key]; !exists {
			c.keys = append(c.keys, key)
		}
		c.alpha3[key] = ref.Alpha3
	}
	return c
}

// ApplyCorrections moves each alpha-3 value from its old key to the
// corrected key. An old key absent from the catalog aborts construction.
func (c *Catalog) ApplyCorrections(corrections map[string]string) error {
	olds := make([]string, 0, len(corrections))
	for old := range corrections {
		olds = append(olds, old)
	}
	sort.Strings(olds)

	for _, old := range olds {
		newKey := corrections[old]
		a3, ok := c.alpha3[old]
		if !ok {
			return fmt.Errorf("correction %q -> %q: key %q not present in catalog (reference data drift?)", old, newKey, old)
		}

		delete(c.alpha3, old)
		if _, exists := c.alpha3[newKey]; exists {
			c.dropKey(old)
		} else {
			c.renameKey(old, newKey)
		}
		c.alpha3[newKey] = a3
	}
	return nil
}

func (c *Catalog) renameKey(old, newKey string) {
	for i, k := range c.keys {
		if k == old {
			c.keys[i] = newKey
			return
		}
	}
}

func (c *Catalog) dropKey(old string) {
	for i, k := range c.keys {
		if k == old {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			return
		}
	}
}

// Entries returns the catalog rows in insertion order.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c.keys))
	for _, k := range c.keys {
		entries = append(entries, Entry{Key: k, Alpha3: c.alpha3[k]})
	}
	return entries
}

// Alpha3 looks up the alpha-3 code for a country key.
func (c *Catalog) Alpha3(key string) (string, bool) {
	a3, ok := c.alpha3[key]
	return a3, ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// ReferenceList loads the embedded ISO-3166 dataset and returns it sorted
// by alpha-3 code, so "later reference wins" is deterministic.
func ReferenceList() []Reference {
	query := gountries.New()

	var refs []Reference
	for _, country := range query.FindAllCountries() {
		refs = append(refs, Reference{
			CommonName:   country.Name.Common,
			OfficialName: country.Name.Official,
			Alpha3:       country.Alpha3,
		})
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Alpha3 < refs[j].Alpha3
	})
	return refs
}

// Default builds the catalog from the embedded reference data and applies
// the standard corrections.
func Default() (*Catalog, error) {
	c := Build(ReferenceList())
	if err := c.ApplyCorrections(Corrections); err != nil {
		return nil, err
	}
	return c, nil
}
