package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotegate/quotegate/internal/domain/models"
)

func fp(v float64) *float64 { return &v }

func TestNewBarResponses_FormatsDates(t *testing.T) {
	bars := []models.Bar{
		{
			Date:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Open:  fp(187.15),
			Close: fp(185.64),
		},
	}

	out := NewBarResponses(bars)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-01-02", out[0].Date)
	assert.Equal(t, 187.15, *out[0].Open)
	assert.Nil(t, out[0].Volume)
}

func TestNewBarResponses_EmptySerializesAsArray(t *testing.T) {
	out := NewBarResponses(nil)
	b, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestNewBarResponses_NilFieldsAreNull(t *testing.T) {
	bars := []models.Bar{{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}}
	b, err := json.Marshal(NewBarResponses(bars))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"date":"2024-01-02","open":null,"high":null,"low":null,"close":null,"adj_close":null,"volume":null}]`, string(b))
}

func TestNewDividendAndSplitResponses(t *testing.T) {
	divs := NewDividendResponses([]models.Dividend{
		{Date: time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC), Cash: 0.24},
	})
	require.Len(t, divs, 1)
	assert.Equal(t, "2024-02-09", divs[0].Date)
	assert.Equal(t, 0.24, divs[0].Cash)

	splits := NewSplitResponses([]models.Split{
		{Date: time.Date(2020, 8, 31, 0, 0, 0, 0, time.UTC), Ratio: 4.0},
	})
	require.Len(t, splits, 1)
	assert.Equal(t, "2020-08-31", splits[0].Date)
	assert.Equal(t, 4.0, splits[0].Ratio)
}

func TestNewInfoResponse_PartialProfile(t *testing.T) {
	name := "Apple Inc."
	out := NewInfoResponse(models.Info{Symbol: "AAPL", LongName: &name})
	assert.Equal(t, "AAPL", out.Symbol)
	assert.Equal(t, "Apple Inc.", *out.LongName)
	assert.Nil(t, out.Sector)
}
