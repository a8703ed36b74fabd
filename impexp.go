package lifeplan

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to import price histories from third party
// JSON documents (broker exports, market data APIs dumps).

// ImportPriceHistory extracts (year, price) pairs from an arbitrary JSON document.
//
// yearPath and pricePath are JSONPath expressions selecting the same number of
// values, paired by position. Years can be numbers or dates ("2024-12-31", only
// the year is kept). Prices can be numbers or strings using either '.' or ','
// as decimal separator. When several values fall in the same year, the last one wins.
func ImportPriceHistory(r io.Reader, yearPath, pricePath, currency string) ([]PricePoint, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("not a json document: %w", err)
	}

	years, err := selectAll(jobj, yearPath)
	if err != nil {
		return nil, err
	}
	prices, err := selectAll(jobj, pricePath)
	if err != nil {
		return nil, err
	}
	if len(years) != len(prices) {
		return nil, fmt.Errorf("%q selects %d values but %q selects %d", yearPath, len(years), pricePath, len(prices))
	}

	byYear := make(map[int]float64)
	for i := range years {
		y, err := jsonYear(years[i])
		if err != nil {
			return nil, fmt.Errorf("value #%d of %q: %w", i, yearPath, err)
		}
		p, err := jsonNumber(prices[i])
		if err != nil {
			return nil, fmt.Errorf("value #%d of %q: %w", i, pricePath, err)
		}
		byYear[y] = p
	}

	points := make([]PricePoint, 0, len(byYear))
	for y, p := range byYear {
		points = append(points, PricePoint{Year: y, Price: M(p, currency)})
	}
	slices.SortFunc(points, func(a, b PricePoint) int { return a.Year - b.Year })
	return points, nil
}

// MergePrices returns a copy of asset whose price history contains points,
// replacing existing entries of the same year.
func MergePrices(asset AssetInfo, points []PricePoint) AssetInfo {
	merged := make(map[int]Money, len(asset.PriceHistory)+len(points))
	for _, p := range asset.PriceHistory {
		merged[p.Year] = p.Price
	}
	for _, p := range points {
		merged[p.Year] = p.Price
	}
	asset.PriceHistory = make([]PricePoint, 0, len(merged))
	for y, p := range merged {
		asset.PriceHistory = append(asset.PriceHistory, PricePoint{Year: y, Price: p})
	}
	slices.SortFunc(asset.PriceHistory, func(a, b PricePoint) int { return a.Year - b.Year })
	return asset
}

// selectAll evaluates path and always returns a list of values.
func selectAll(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}

func jsonYear(v any) (int, error) {
	switch t := v.(type) {
	case float64:
		return int(t), nil
	case string:
		s := strings.TrimSpace(t)
		if len(s) > 4 {
			s = s[:4]
		}
		y, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid year %q", t)
		}
		return y, nil
	default:
		return 0, fmt.Errorf("invalid year %v of type %T", v, v)
	}
}

func jsonNumber(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		// sometimes, APIs return the value as a string
		s := strings.ReplaceAll(t, ",", ".")
		s = strings.ReplaceAll(s, " ", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q: %w", t, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("invalid number %v of type %T", v, v)
	}
}
