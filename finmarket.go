package finmarket

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const API_BASE_URL = "https://bancobci.finmarketslive.cl/www"

const (
	DefaultTimeout = 30 * time.Second
	DefaultMarket  = "chile"
	DefaultQuality = "RLT"
	DefaultSpan    = Span1Y
)

// ========================= CLIENT =========================

// Config configures a [Client]. The zero value targets the production
// service with the default timeout.
type Config struct {
	// BaseURL replaces the production endpoint root, mainly for tests.
	BaseURL string
	// Timeout bounds each call end to end. Zero means DefaultTimeout.
	Timeout time.Duration
	// HTTPClient, when set, is used as-is and Timeout is ignored.
	HTTPClient *http.Client
}

// Client issues search and chart requests. It holds only static
// configuration: no session, no cookies, no state across calls.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = API_BASE_URL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: strings.TrimSuffix(base, "/"), http: httpClient}
}

// Browser profile the upstream expects; bare library requests are rejected.
var defaultHeaders = map[string]string{
	"accept":             "application/json, text/javascript, */*; q=0.01",
	"accept-language":    "en-US,en;q=0.9,es;q=0.8",
	"sec-ch-ua":          `"Not(A:Brand";v="8", "Chromium";v="144", "Google Chrome";v="144"`,
	"sec-ch-ua-mobile":   "?0",
	"sec-ch-ua-platform": `"Windows"`,
	"sec-fetch-dest":     "empty",
	"sec-fetch-mode":     "cors",
	"sec-fetch-site":     "same-origin",
	"user-agent":         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/144.0.0.0 Safari/537.36",
	"x-requested-with":   "XMLHttpRequest",
}

func (c *Client) get(path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path + "?" + query.Encode()
	req, _ := http.NewRequest("GET", u, nil)
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}
	req.Header.Set("referer", c.baseURL+"/index.html")
	slog.Debug(fmt.Sprintf("GET %s", u))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		slog.Error(fmt.Sprintf("%d: %s", resp.StatusCode, statusDetail(resp.StatusCode)))
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: u}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	return body, nil
}

// ========================= REQUESTS =========================

// ChartRequest is the chart endpoint's full parameter surface. Zero values
// fall back to the 1Y span and RLT quality. Volume asks the upstream to
// include traded volume per point.
type ChartRequest struct {
	IDNotation int
	TimeSpan   TimeSpan
	Quality    string
	Volume     bool
}

func (r ChartRequest) span() TimeSpan {
	if r.TimeSpan == "" {
		return DefaultSpan
	}
	return r.TimeSpan
}

func (r ChartRequest) values() url.Values {
	quality := r.Quality
	if quality == "" {
		quality = DefaultQuality
	}
	values := url.Values{}
	values.Set("ID_NOTATION", strconv.Itoa(r.IDNotation))
	values.Set("QUALITY", quality)
	values.Set("VOLUME", strconv.FormatBool(r.Volume))
	// MAX history has no span code, the upstream wants a date window
	if span := r.span(); span == SpanMax {
		values.Set("DATEINI", "1900-01-01")
		values.Set("DATEFIN", time.Now().UTC().Format(time.DateOnly))
	} else {
		values.Set("TIME_SPAN", string(span))
	}
	return values
}

func searchValues(query, market string) url.Values {
	values := url.Values{}
	values.Set("SEARCH_VALUE", query)
	values.Set("MERCADO", market)
	return values
}

// ========================= API =========================

// Search looks up instruments matching query in the default market. Zero
// matches is a successful empty result, not an error.
func (c *Client) Search(query string) ([]SearchResult, error) {
	return c.SearchMarket(query, DefaultMarket)
}

// SearchMarket looks up instruments in a specific market.
func (c *Client) SearchMarket(query, market string) ([]SearchResult, error) {
	body, err := c.get("/global/buscador.html", searchValues(query, market))
	if err != nil {
		return nil, err
	}
	return parseSearchResults(body)
}

// GetChart fetches a chart series with the full parameter surface.
func (c *Client) GetChart(req ChartRequest) (*ChartData, error) {
	body, err := c.get("/chart/datachart.html", req.values())
	if err != nil {
		return nil, err
	}
	points, err := parseChartPoints(string(body))
	if err != nil {
		return nil, err
	}
	return &ChartData{
		IDNotation: req.IDNotation,
		TimeSpan:   req.span(),
		Points:     points,
	}, nil
}

// GetChartData fetches the series for one instrument over a span, with
// default quality and no volume data. An unknown idNotation is not detected
// locally; it surfaces as whatever the upstream answers.
func (c *Client) GetChartData(idNotation int, span TimeSpan) (*ChartData, error) {
	return c.GetChart(ChartRequest{IDNotation: idNotation, TimeSpan: span})
}

// Wrappers for the common spans, pure delegations to [Client.GetChartData].

func (c *Client) GetIntraday(idNotation int) (*ChartData, error) {
	return c.GetChartData(idNotation, Span1D)
}

func (c *Client) GetWeekly(idNotation int) (*ChartData, error) {
	return c.GetChartData(idNotation, Span5D)
}

func (c *Client) GetMonthly(idNotation int) (*ChartData, error) {
	return c.GetChartData(idNotation, Span1M)
}

func (c *Client) GetYearly(idNotation int) (*ChartData, error) {
	return c.GetChartData(idNotation, Span1Y)
}
