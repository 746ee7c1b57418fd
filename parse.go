package finmarket

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/guregu/null/v6"
	"golang.org/x/exp/constraints"
)

// ========================= SEARCH =========================

// parseSearchResults decodes the search endpoint's JSON body. Any top-level
// value that is not an array is the upstream's zero-match shape.
func parseSearchResults(body []byte) ([]SearchResult, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &ParseError{Index: -1, Field: "body", Err: err}
	}
	items, ok := doc.([]any)
	if !ok {
		return []SearchResult{}, nil
	}

	results := make([]SearchResult, 0, len(items))
	for i, raw := range items {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, &ParseError{Index: i, Field: "item", Err: fmt.Errorf("not an object: %T", raw)}
		}
		id, err := coerceID(obj)
		if err != nil {
			return nil, &ParseError{Index: i, Field: "id_notation", Err: err}
		}
		results = append(results, SearchResult{
			IDNotation: id,
			Name:       stringKey(obj, "NAME", "name"),
			Symbol:     optionalKey(obj, "SYMBOL", "symbol"),
			Market:     optionalKey(obj, "MARKET", "market"),
			Type:       optionalKey(obj, "TYPE", "type"),
			Raw:        obj,
		})
	}
	return results, nil
}

// coerceID resolves the instrument identifier from the key variants the
// upstream uses, skipping empty values. No usable key yields 0.
func coerceID(obj map[string]any) (int, error) {
	for _, key := range []string{"ID_NOTATION", "id_notation", "id"} {
		v, ok := obj[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			if t == 0 {
				continue
			}
			return int(t), nil
		case string:
			if t == "" {
				continue
			}
			n, err := strconv.Atoi(strings.TrimSpace(t))
			if err != nil {
				return 0, fmt.Errorf("%s: %w", key, err)
			}
			return n, nil
		default:
			return 0, fmt.Errorf("%s: unexpected type %T", key, v)
		}
	}
	return 0, nil
}

func stringKey(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// optionalKey keeps "key absent" and "key present but empty" apart: the
// first key present with a non-null value wins, even when empty.
func optionalKey(obj map[string]any, keys ...string) null.String {
	for _, key := range keys {
		v, ok := obj[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return null.StringFrom(s)
		}
		return null.StringFrom(fmt.Sprint(v))
	}
	return null.String{}
}

// ========================= CHART =========================

// The chart endpoint answers with a JavaScript array literal, not JSON:
//
//	[{date:new Date(2025, 0, 21, 9, 0, 0),close:0.24,...},...]
//
// Point objects are located by pattern, fields extracted per name. Month
// arguments are zero-based.
var chartPointPattern = regexp.MustCompile(`\{date:new Date\(([^)]+)\)([^}]*)\}`)

var chartFieldPatterns = map[string]*regexp.Regexp{
	"close":    regexp.MustCompile(`close:([-\d.]+)`),
	"high":     regexp.MustCompile(`high:([-\d.]+)`),
	"low":      regexp.MustCompile(`low:([-\d.]+)`),
	"open":     regexp.MustCompile(`open:([-\d.]+)`),
	"volume":   regexp.MustCompile(`volume:([-\d.]+)`),
	"pctrel":   regexp.MustCompile(`pctrel:([-\d.]+)`),
	"decimals": regexp.MustCompile(`decimals:([-\d.]+)`),
}

var errFieldMissing = errors.New("field missing")

// parseChartPoints decodes a chart body into points, preserving order. A body
// without point objects is an empty chart. Any malformed point fails the
// whole parse.
func parseChartPoints(body string) ([]ChartPoint, error) {
	matches := chartPointPattern.FindAllStringSubmatch(body, -1)
	points := make([]ChartPoint, 0, len(matches))
	for i, m := range matches {
		date, err := parseChartDate(m[1])
		if err != nil {
			return nil, &ParseError{Index: i, Field: "date", Err: err}
		}

		props := m[2]
		p := ChartPoint{Date: date}
		raw, ok := chartField(props, "close")
		if !ok {
			return nil, &ParseError{Index: i, Field: "close", Err: errFieldMissing}
		}
		if p.Close, err = parseNumber[float64](raw); err != nil {
			return nil, &ParseError{Index: i, Field: "close", Err: err}
		}
		if err := setNumber(&p.High, props, "high", i, 0); err != nil {
			return nil, err
		}
		if err := setNumber(&p.Low, props, "low", i, 0); err != nil {
			return nil, err
		}
		if err := setNumber(&p.Open, props, "open", i, 0); err != nil {
			return nil, err
		}
		if err := setNumber(&p.Volume, props, "volume", i, 0); err != nil {
			return nil, err
		}
		if err := setNumber(&p.PctRel, props, "pctrel", i, 0); err != nil {
			return nil, err
		}
		if err := setNumber(&p.Decimals, props, "decimals", i, 2); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// parseChartDate interprets the `new Date(...)` argument list: year, month
// (zero-based), day, then optional hour, minute, second.
func parseChartDate(args string) (time.Time, error) {
	parts := strings.Split(args, ",")
	if len(parts) < 3 || len(parts) > 6 {
		return time.Time{}, fmt.Errorf("want 3 to 6 date arguments, got %d", len(parts))
	}
	nums := make([]int, 6)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return time.Time{}, err
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1]+1, nums[2]
	t := time.Date(year, time.Month(month), day, nums[3], nums[4], nums[5], 0, time.UTC)
	// time.Date normalizes out-of-range arguments, a round trip catches them
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != nums[3] || t.Minute() != nums[4] || t.Second() != nums[5] {
		return time.Time{}, fmt.Errorf("out of range: new Date(%s)", args)
	}
	return t, nil
}

func chartField(props, field string) (string, bool) {
	m := chartFieldPatterns[field].FindStringSubmatch(props)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func parseNumber[T constraints.Integer | constraints.Float](s string) (T, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return T(v), nil
}

// setNumber stores the parsed field into dst, or def when the field is not
// present. A present but malformed value fails with a ParseError.
func setNumber[T constraints.Integer | constraints.Float](dst *T, props, field string, index int, def T) error {
	raw, ok := chartField(props, field)
	if !ok {
		*dst = def
		return nil
	}
	v, err := parseNumber[T](raw)
	if err != nil {
		return &ParseError{Index: index, Field: field, Err: err}
	}
	*dst = v
	return nil
}
