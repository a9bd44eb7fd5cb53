package models

import "time"

// Bar is one daily price candle for an instrument.
//
// All numeric fields are pointers because the upstream provider omits
// individual values for some trading days (halted sessions, missing
// adjusted series). A nil field means the provider reported no value,
// which is distinct from zero.
type Bar struct {
	Date     time.Time
	Open     *float64
	High     *float64
	Low      *float64
	Close    *float64
	AdjClose *float64
	Volume   *float64
}

// Dividend is a single cash dividend event.
type Dividend struct {
	Date time.Time
	Cash float64
}

// Split is a single stock split event. Ratio is numerator/denominator
// (e.g. a 4-for-1 split has Ratio 4.0).
type Split struct {
	Date  time.Time
	Ratio float64
}

// Info is a basic company snapshot. Every field except Symbol is optional;
// the provider frequently returns partial profiles, especially for ETFs.
type Info struct {
	Symbol    string
	LongName  *string
	Currency  *string
	Exchange  *string
	MarketCap *float64
	Sector    *string
	Industry  *string
}
