package upstream

// Wire schemas for the two provider endpoints consumed by the client.
// Each response shape is modeled explicitly; anything that does not fit
// these structs is treated as an upstream failure rather than parsed
// loosely. Optional provider fields are pointers so absent and null both
// decode to nil.

// chartEnvelope is the top-level body of /v8/finance/chart/{symbol}.
type chartEnvelope struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

// apiError is the provider's in-band error object, present on both feeds.
type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// chartResult holds one symbol's series: parallel arrays indexed by
// timestamp, plus optional corporate action events.
type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote    []quoteBlock    `json:"quote"`
		AdjClose []adjCloseBlock `json:"adjclose"`
	} `json:"indicators"`
	Events *chartEvents `json:"events"`
}

// quoteBlock carries the per-day OHLCV arrays. Individual days may be
// null inside the arrays, hence the pointer element type.
type quoteBlock struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}

type adjCloseBlock struct {
	AdjClose []*float64 `json:"adjclose"`
}

// chartEvents lists corporate actions keyed by their unix timestamp string.
type chartEvents struct {
	Dividends map[string]dividendEvent `json:"dividends"`
	Splits    map[string]splitEvent    `json:"splits"`
}

type dividendEvent struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

type splitEvent struct {
	Date       int64  `json:"date"`
	SplitRatio string `json:"splitRatio"`
}

// quoteSummaryEnvelope is the top-level body of
// /v10/finance/quoteSummary/{symbol}.
type quoteSummaryEnvelope struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *apiError            `json:"error"`
	} `json:"quoteSummary"`
}

type quoteSummaryResult struct {
	Price          *priceModule          `json:"price"`
	SummaryProfile *summaryProfileModule `json:"summaryProfile"`
}

// priceModule is the subset of the "price" module the service exposes.
type priceModule struct {
	LongName     *string   `json:"longName"`
	Currency     *string   `json:"currency"`
	ExchangeName *string   `json:"exchangeName"`
	MarketCap    *rawValue `json:"marketCap"`
}

// rawValue is the provider's {raw, fmt} number wrapper; only the raw
// numeric value is consumed.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

type summaryProfileModule struct {
	Sector   *string `json:"sector"`
	Industry *string `json:"industry"`
}
