package dto

import (
	"github.com/quotegate/quotegate/internal/domain/models"
)

// dateFormat is the calendar-day format used on every response boundary.
// Internally dates stay time.Time so the cache can filter on them; they
// are only rendered as strings here.
const dateFormat = "2006-01-02"

// BarResponse represents one OHLCV record as returned by
// GET /api/public/ohlcv.
//
// Fields match the API contract and may differ from internal domain models.
// Nil numeric fields serialize as JSON null when the provider omitted the value.
type BarResponse struct {
	Date     string   `json:"date" example:"2024-01-02"`
	Open     *float64 `json:"open" example:"187.15"`
	High     *float64 `json:"high" example:"188.44"`
	Low      *float64 `json:"low" example:"183.89"`
	Close    *float64 `json:"close" example:"185.64"`
	AdjClose *float64 `json:"adj_close" example:"184.92"`
	Volume   *float64 `json:"volume" example:"82488700"`
}

// DividendResponse represents one cash dividend event as returned by
// GET /api/public/dividends.
type DividendResponse struct {
	Date string  `json:"date" example:"2024-02-09"`
	Cash float64 `json:"cash" example:"0.24"`
}

// SplitResponse represents one split event as returned by
// GET /api/public/splits.
type SplitResponse struct {
	Date  string  `json:"date" example:"2020-08-31"`
	Ratio float64 `json:"ratio" example:"4.0"`
}

// InfoResponse represents the company snapshot returned by
// GET /api/public/info. Optional fields are null when the provider
// has no value for them.
type InfoResponse struct {
	Symbol    string   `json:"symbol" example:"2330.TW"`
	LongName  *string  `json:"longName" example:"Taiwan Semiconductor Manufacturing Company Limited"`
	Currency  *string  `json:"currency" example:"TWD"`
	Exchange  *string  `json:"exchange" example:"TAI"`
	MarketCap *float64 `json:"marketCap" example:"21500000000000"`
	Sector    *string  `json:"sector" example:"Technology"`
	Industry  *string  `json:"industry" example:"Semiconductors"`
}

// UniverseResponse represents the symbol list returned by
// GET /api/public/universe.
type UniverseResponse struct {
	Market  string   `json:"market" example:"ETF_TW"`
	Symbols []string `json:"symbols"`
}

// NewBarResponses converts domain bars into their wire representation,
// formatting dates as YYYY-MM-DD. Always returns a non-nil slice so an
// empty result serializes as [] rather than null.
func NewBarResponses(bars []models.Bar) []BarResponse {
	out := make([]BarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, BarResponse{
			Date:     b.Date.Format(dateFormat),
			Open:     b.Open,
			High:     b.High,
			Low:      b.Low,
			Close:    b.Close,
			AdjClose: b.AdjClose,
			Volume:   b.Volume,
		})
	}
	return out
}

// NewDividendResponses converts domain dividend events into their wire representation.
func NewDividendResponses(divs []models.Dividend) []DividendResponse {
	out := make([]DividendResponse, 0, len(divs))
	for _, d := range divs {
		out = append(out, DividendResponse{Date: d.Date.Format(dateFormat), Cash: d.Cash})
	}
	return out
}

// NewSplitResponses converts domain split events into their wire representation.
func NewSplitResponses(splits []models.Split) []SplitResponse {
	out := make([]SplitResponse, 0, len(splits))
	for _, s := range splits {
		out = append(out, SplitResponse{Date: s.Date.Format(dateFormat), Ratio: s.Ratio})
	}
	return out
}

// NewInfoResponse converts the domain company snapshot into its wire representation.
func NewInfoResponse(info models.Info) InfoResponse {
	return InfoResponse{
		Symbol:    info.Symbol,
		LongName:  info.LongName,
		Currency:  info.Currency,
		Exchange:  info.Exchange,
		MarketCap: info.MarketCap,
		Sector:    info.Sector,
		Industry:  info.Industry,
	}
}
