package models

import (
	"fmt"
	"sort"
	"strings"
)

// CountryName represents the common/official name pair of a country
type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Flags contains references to the country flag images
type Flags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
	Alt string `json:"alt"`
}

// Currency describes a single currency entry
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Country represents a single country record as returned by the
// REST Countries v3.1 API. The record is read-only: it is fetched fresh
// from the API and never mutated locally.
// Optional fields (capital, borders, languages, currencies) may be absent
// in the source data; display helpers substitute "N/A" for them.
type Country struct {
	Name       CountryName         `json:"name"`
	Code       string              `json:"cca3"` // трехбуквенный код, уникальный идентификатор
	Region     string              `json:"region"`
	Subregion  string              `json:"subregion"`
	Capital    []string            `json:"capital"`
	Population int64               `json:"population"`
	Area       float64             `json:"area"`
	Borders    []string            `json:"borders"`
	Flags      Flags               `json:"flags"`
	Languages  map[string]string   `json:"languages"`
	Currencies map[string]Currency `json:"currencies"`
}

// notAvailable is the display placeholder for absent optional fields
const notAvailable = "N/A"

// Valid reports whether the record is usable: a country must carry
// a three-letter code and a common name. Records failing this check
// are dropped at the data-source boundary.
func (c *Country) Valid() bool {
	return c.Code != "" && c.Name.Common != ""
}

// CapitalDisplay returns the capital name(s) joined with commas,
// or "N/A" when the record has none.
func (c *Country) CapitalDisplay() string {
	if len(c.Capital) == 0 {
		return notAvailable
	}
	return strings.Join(c.Capital, ", ")
}

// LanguagesDisplay returns a sorted, comma-separated list of language
// names, or "N/A" when the record has none.
func (c *Country) LanguagesDisplay() string {
	if len(c.Languages) == 0 {
		return notAvailable
	}

	// Сортируем для детерминированного вывода
	names := make([]string, 0, len(c.Languages))
	for _, name := range c.Languages {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

// CurrenciesDisplay returns a sorted, comma-separated list of currencies
// in "Name (Symbol)" form, or "N/A" when the record has none.
func (c *Country) CurrenciesDisplay() string {
	if len(c.Currencies) == 0 {
		return notAvailable
	}

	entries := make([]string, 0, len(c.Currencies))
	for _, cur := range c.Currencies {
		if cur.Name == "" {
			continue
		}
		if cur.Symbol != "" {
			entries = append(entries, fmt.Sprintf("%s (%s)", cur.Name, cur.Symbol))
		} else {
			entries = append(entries, cur.Name)
		}
	}
	if len(entries) == 0 {
		return notAvailable
	}
	sort.Strings(entries)

	return strings.Join(entries, ", ")
}

// BordersDisplay returns the border country codes joined with commas,
// or "N/A" for island states and records without border data.
func (c *Country) BordersDisplay() string {
	if len(c.Borders) == 0 {
		return notAvailable
	}
	return strings.Join(c.Borders, ", ")
}

// MatchesRegion reports whether the record belongs to the given region.
// Comparison is a case-insensitive exact match on the region field.
func (c *Country) MatchesRegion(region string) bool {
	return strings.EqualFold(c.Region, region)
}
