// SPDX-License-Identifier: MIT
package mobility

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Column names of the mobility report CSV.
const (
	ColumnCountry    = "country_region"
	ColumnDate       = "date"
	ColumnSubRegion1 = "sub_region_1"
	ColumnSubRegion2 = "sub_region_2"

	dateLayout = "2006-01-02"
)

// Filter selects the rows and the value column of a mobility CSV.
//
// Country matches country_region exactly; empty matches every country.
// Year matches the year of the date column; 0 matches every year.
// Column names the percent-change column to bin (required).
// NationalOnly skips rows with a non-empty sub_region_1 or sub_region_2.
// Bins defaults to DefaultBins when zero.
type Filter struct {
	Country      string
	Year         int
	Column       string
	NationalOnly bool
	Bins         Bins
}

// ReadStates streams a mobility CSV and returns the binned state sequence of
// the rows selected by f, in file order.
//
// Rows with an unparseable date, or an empty or non-numeric value, are skipped.
//
// Errors: ErrMissingColumn, ErrBadBins, and csv read errors.
// Complexity: O(rows), one row in memory at a time.
func ReadStates(r io.Reader, f Filter) ([]string, error) {
	bins := f.Bins
	if bins == (Bins{}) {
		bins = DefaultBins
	}
	if err := bins.Validate(); err != nil {
		return nil, err
	}
	if f.Column == "" {
		return nil, fmt.Errorf("mobility: value column: %w", ErrMissingColumn)
	}

	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("mobility: read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	idxCountry, idxDate, idxValue := -1, -1, -1
	var ok bool
	for _, need := range []struct {
		name string
		dst  *int
	}{
		{ColumnCountry, &idxCountry},
		{ColumnDate, &idxDate},
		{f.Column, &idxValue},
	} {
		if *need.dst, ok = cols[need.name]; !ok {
			return nil, fmt.Errorf("mobility: %q: %w", need.name, ErrMissingColumn)
		}
	}
	idxSub1, hasSub1 := cols[ColumnSubRegion1]
	idxSub2, hasSub2 := cols[ColumnSubRegion2]

	field := func(rec []string, i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	var states []string
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("mobility: line %d: %w", line, err)
		}

		if f.Country != "" && field(rec, idxCountry) != f.Country {
			continue
		}
		if f.NationalOnly && ((hasSub1 && field(rec, idxSub1) != "") || (hasSub2 && field(rec, idxSub2) != "")) {
			continue
		}
		date, err := time.Parse(dateLayout, field(rec, idxDate))
		if err != nil {
			continue
		}
		if f.Year != 0 && date.Year() != f.Year {
			continue
		}
		raw := field(rec, idxValue)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if s, ok := bins.Label(v); ok {
			states = append(states, s)
		}
	}

	return states, nil
}
