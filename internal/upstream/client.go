// Package upstream implements the client for the external market data
// provider (Yahoo Finance chart and quoteSummary endpoints). It returns
// normalized domain records and fails closed on anything it cannot parse.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/quotegate/quotegate/internal/domain/models"
)

const (
	dailyInterval = "1d"

	// secondsPerDay widens the chart window by one day. The provider
	// treats period2 as an exclusive bound, so without this offset the
	// requested end date is silently dropped from the series.
	secondsPerDay = 86400
)

// Client speaks the provider's chart and quoteSummary contracts.
// One round trip per fetch; no retries, no backoff.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given provider base URL
// (e.g. "https://query1.finance.yahoo.com"). A nil httpClient falls
// back to a tuned default with a 20 second total timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(20 * time.Second)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// NewHTTPClient creates an HTTP client for the provider with explicit
// transport settings. http.DefaultClient has no timeout at all, so a
// custom client is required for every outbound call.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}

// Bars fetches the daily OHLCV series for [start, end] inclusive.
//
// The provider window is [unix(start), unix(end)+86400) because its upper
// bound is exclusive; dropping the offset loses the last requested day.
// A symbol with no data in range yields an empty slice and a nil error.
func (c *Client) Bars(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error) {
	q := url.Values{}
	q.Set("period1", strconv.FormatInt(start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.Unix()+secondsPerDay, 10))
	q.Set("interval", dailyInterval)
	q.Set("includeAdjustedClose", "true")

	result, err := c.chart(ctx, symbol, q)
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Timestamp) == 0 {
		return []models.Bar{}, nil
	}

	var quote quoteBlock
	if len(result.Indicators.Quote) > 0 {
		quote = result.Indicators.Quote[0]
	}
	var adj []*float64
	if len(result.Indicators.AdjClose) > 0 {
		adj = result.Indicators.AdjClose[0].AdjClose
	}

	bars := make([]models.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		bars = append(bars, models.Bar{
			Date:     dayOf(ts),
			Open:     at(quote.Open, i),
			High:     at(quote.High, i),
			Low:      at(quote.Low, i),
			Close:    at(quote.Close, i),
			AdjClose: at(adj, i),
			Volume:   at(quote.Volume, i),
		})
	}
	return bars, nil
}

// Dividends fetches all dividend events for the symbol and filters them
// to the closed interval [start, end] client-side; the provider's event
// feed has no native range filtering worth relying on.
func (c *Client) Dividends(ctx context.Context, symbol string, start, end time.Time) ([]models.Dividend, error) {
	result, err := c.events(ctx, symbol, end, "div")
	if err != nil {
		return nil, err
	}

	divs := []models.Dividend{}
	if result == nil || result.Events == nil {
		return divs, nil
	}
	for _, ev := range result.Events.Dividends {
		d := dayOf(ev.Date)
		if inRange(d, start, end) {
			divs = append(divs, models.Dividend{Date: d, Cash: ev.Amount})
		}
	}
	sort.Slice(divs, func(i, j int) bool { return divs[i].Date.Before(divs[j].Date) })
	return divs, nil
}

// Splits fetches all split events for the symbol with the same
// retrieve-then-filter pattern as Dividends. Ratio strings that do not
// parse as "numerator/denominator" degrade to 1.0 instead of failing.
func (c *Client) Splits(ctx context.Context, symbol string, start, end time.Time) ([]models.Split, error) {
	result, err := c.events(ctx, symbol, end, "split")
	if err != nil {
		return nil, err
	}

	splits := []models.Split{}
	if result == nil || result.Events == nil {
		return splits, nil
	}
	for _, ev := range result.Events.Splits {
		d := dayOf(ev.Date)
		if inRange(d, start, end) {
			splits = append(splits, models.Split{Date: d, Ratio: ParseSplitRatio(ev.SplitRatio)})
		}
	}
	sort.Slice(splits, func(i, j int) bool { return splits[i].Date.Before(splits[j].Date) })
	return splits, nil
}

// Info fetches the company snapshot from the quoteSummary endpoint.
// Fields the provider does not report stay nil; a structurally empty
// result still succeeds with only the symbol populated.
func (c *Client) Info(ctx context.Context, symbol string) (models.Info, error) {
	info := models.Info{Symbol: symbol}

	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape("price,summaryProfile"))

	var envelope quoteSummaryEnvelope
	if err := c.getJSON(ctx, u, &envelope); err != nil {
		return models.Info{}, err
	}
	if envelope.QuoteSummary.Error != nil {
		return models.Info{}, &Error{StatusCode: http.StatusOK, Reason: envelope.QuoteSummary.Error.Description}
	}
	if len(envelope.QuoteSummary.Result) == 0 {
		return info, nil
	}

	result := envelope.QuoteSummary.Result[0]
	if p := result.Price; p != nil {
		info.LongName = p.LongName
		info.Currency = p.Currency
		info.Exchange = p.ExchangeName
		if p.MarketCap != nil {
			info.MarketCap = p.MarketCap.Raw
		}
	}
	if sp := result.SummaryProfile; sp != nil {
		info.Sector = sp.Sector
		info.Industry = sp.Industry
	}
	return info, nil
}

// ParseSplitRatio parses a "numerator/denominator" split ratio string
// (e.g. "4/1" -> 4.0). Malformed input or a zero denominator yields the
// neutral ratio 1.0.
func ParseSplitRatio(s string) float64 {
	num, denom, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return 1.0
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 1.0
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(denom), 64)
	if err != nil || d == 0 {
		return 1.0
	}
	return n / d
}

// chart performs one call against the chart endpoint and unwraps the
// single-result envelope. A missing result with no in-band error means
// the symbol simply has no data, reported as (nil, nil).
func (c *Client) chart(ctx context.Context, symbol string, q url.Values) (*chartResult, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(symbol), q.Encode())

	var envelope chartEnvelope
	if err := c.getJSON(ctx, u, &envelope); err != nil {
		return nil, err
	}
	if envelope.Chart.Error != nil {
		return nil, &Error{StatusCode: http.StatusOK, Reason: envelope.Chart.Error.Description}
	}
	if len(envelope.Chart.Result) == 0 {
		return nil, nil
	}
	return &envelope.Chart.Result[0], nil
}

// events requests the full event history for one event type. period1=0
// pulls everything the provider has; filtering happens in the caller.
func (c *Client) events(ctx context.Context, symbol string, end time.Time, eventType string) (*chartResult, error) {
	q := url.Values{}
	q.Set("period1", "0")
	q.Set("period2", strconv.FormatInt(end.Unix()+secondsPerDay, 10))
	q.Set("interval", dailyInterval)
	q.Set("events", eventType)
	return c.chart(ctx, symbol, q)
}

// getJSON performs a GET and decodes the body into out. Non-2xx statuses
// and undecodable bodies both become *Error so callers can fail closed.
func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build upstream request: %w", err)
	}
	// The provider rejects requests without a browser-like agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; quotegate/1.0)")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{StatusCode: http.StatusBadGateway, Reason: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{StatusCode: resp.StatusCode, Reason: "malformed response body"}
	}
	return nil
}

// dayOf truncates a unix timestamp to its UTC calendar day.
func dayOf(ts int64) time.Time {
	t := time.Unix(ts, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// inRange reports whether d falls within the closed interval [start, end].
func inRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// at safely indexes a nullable series; out-of-range reads are nil.
func at(vals []*float64, i int) *float64 {
	if i < 0 || i >= len(vals) {
		return nil
	}
	return vals[i]
}
