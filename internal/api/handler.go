package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quotegate/quotegate/internal/domain/dto"
	"github.com/quotegate/quotegate/internal/service"
	"github.com/quotegate/quotegate/internal/upstream"
)

const (
	dateFormat = "2006-01-02"

	defaultStart      = "2018-01-01"
	defaultSplitStart = "2010-01-01" // splits are sparse; the default window reaches further back

	defaultLimit = 5000
	maxLimit     = 20000

	defaultMarket = "ETF_TW"
)

// Handler provides HTTP handlers for the public market data endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Call the service layer (normalize, cache, fetch)
//   - Translate domain records into response DTOs, formatting dates as
//     YYYY-MM-DD at this boundary only
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.MarketDataService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.MarketDataService) *Handler {
	return &Handler{svc: svc}
}

// GetOHLCV handles GET /api/public/ohlcv requests.
//
// GetOHLCV godoc
// @Summary      Daily OHLCV bars
// @Description  Returns daily open/high/low/close/adjusted-close/volume records for a symbol within a date range, with offset/limit paging
// @Tags         public-data
// @Produce      json
// @Param        symbol  query     string  true   "Ticker symbol"  example(2330.TW)
// @Param        start   query     string  false  "Start date YYYY-MM-DD"  default(2018-01-01)
// @Param        end     query     string  false  "End date YYYY-MM-DD (default: today UTC)"
// @Param        limit   query     int     false  "Max records (1-20000)"  default(5000)
// @Param        offset  query     int     false  "Records to skip"  default(0)
// @Success      200     {array}   dto.BarResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /api/public/ohlcv [get]
func (h *Handler) GetOHLCV(c *gin.Context) {
	sym, ok := requiredSymbol(c)
	if !ok {
		return
	}
	start, end, ok := dateRange(c, defaultStart)
	if !ok {
		return
	}

	limit, ok := intParam(c, "limit", defaultLimit, 1, maxLimit)
	if !ok {
		return
	}
	offset, ok := intParam(c, "offset", 0, 0, 1<<30)
	if !ok {
		return
	}

	bars, err := h.svc.Bars(c.Request.Context(), sym, start, end, offset, limit)
	if err != nil {
		writeFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBarResponses(bars))
}

// GetDividends handles GET /api/public/dividends requests.
//
// GetDividends godoc
// @Summary      Cash dividends
// @Description  Returns dividend cash payments for a symbol between two dates
// @Tags         public-data
// @Produce      json
// @Param        symbol  query     string  true   "Ticker symbol"  example(AAPL)
// @Param        start   query     string  false  "Start date YYYY-MM-DD"  default(2018-01-01)
// @Param        end     query     string  false  "End date YYYY-MM-DD (default: today UTC)"
// @Success      200     {array}   dto.DividendResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /api/public/dividends [get]
func (h *Handler) GetDividends(c *gin.Context) {
	sym, ok := requiredSymbol(c)
	if !ok {
		return
	}
	start, end, ok := dateRange(c, defaultStart)
	if !ok {
		return
	}

	divs, err := h.svc.Dividends(c.Request.Context(), sym, start, end)
	if err != nil {
		writeFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDividendResponses(divs))
}

// GetSplits handles GET /api/public/splits requests.
//
// GetSplits godoc
// @Summary      Stock splits
// @Description  Returns split ratios for a symbol between two dates
// @Tags         public-data
// @Produce      json
// @Param        symbol  query     string  true   "Ticker symbol"  example(AAPL)
// @Param        start   query     string  false  "Start date YYYY-MM-DD"  default(2010-01-01)
// @Param        end     query     string  false  "End date YYYY-MM-DD (default: today UTC)"
// @Success      200     {array}   dto.SplitResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /api/public/splits [get]
func (h *Handler) GetSplits(c *gin.Context) {
	sym, ok := requiredSymbol(c)
	if !ok {
		return
	}
	start, end, ok := dateRange(c, defaultSplitStart)
	if !ok {
		return
	}

	splits, err := h.svc.Splits(c.Request.Context(), sym, start, end)
	if err != nil {
		writeFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSplitResponses(splits))
}

// GetInfo handles GET /api/public/info requests.
//
// GetInfo godoc
// @Summary      Company info
// @Description  Returns basic company information (name, currency, exchange, market cap, sector, industry)
// @Tags         public-data
// @Produce      json
// @Param        symbol  query     string  true  "Ticker symbol"  example(2330.TW)
// @Success      200     {object}  dto.InfoResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /api/public/info [get]
func (h *Handler) GetInfo(c *gin.Context) {
	sym, ok := requiredSymbol(c)
	if !ok {
		return
	}

	info, err := h.svc.Info(c.Request.Context(), sym)
	if err != nil {
		writeFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewInfoResponse(info))
}

// GetUniverse handles GET /api/public/universe requests.
//
// GetUniverse godoc
// @Summary      Example symbol lists
// @Description  Returns a hardcoded list of commonly traded symbols for a market category
// @Tags         public-data
// @Produce      json
// @Param        market  query     string  false  "Market category"  default(ETF_TW)
// @Success      200     {object}  dto.UniverseResponse
// @Router       /api/public/universe [get]
func (h *Handler) GetUniverse(c *gin.Context) {
	market := c.DefaultQuery("market", defaultMarket)
	c.JSON(http.StatusOK, dto.UniverseResponse{
		Market:  market,
		Symbols: h.svc.Universe(market),
	})
}

// requiredSymbol extracts the mandatory symbol parameter, writing a 400
// response when it is absent. Normalization happens in the service layer.
func requiredSymbol(c *gin.Context) (string, bool) {
	sym := strings.TrimSpace(c.Query("symbol"))
	if sym == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol is required", nil))
		return "", false
	}
	return sym, true
}

// dateRange parses the optional start/end parameters, applying the given
// start default and "today in UTC" as the end default.
func dateRange(c *gin.Context, startDefault string) (time.Time, time.Time, bool) {
	start, err := time.Parse(dateFormat, c.DefaultQuery("start", startDefault))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid start format, expected YYYY-MM-DD", err))
		return time.Time{}, time.Time{}, false
	}

	endStr := c.Query("end")
	if endStr == "" {
		endStr = time.Now().UTC().Format(dateFormat)
	}
	end, err := time.Parse(dateFormat, endStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid end format, expected YYYY-MM-DD", err))
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

// intParam parses an optional integer query parameter and validates it
// against [min, max].
func intParam(c *gin.Context, name string, def, min, max int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			fmt.Sprintf("invalid %s: must be an integer in [%d, %d]", name, min, max), err))
		return 0, false
	}
	return v, true
}

// writeFetchError maps a service failure to its HTTP representation:
// upstream failures become 502 with the provider status embedded,
// anything else is a 500.
func writeFetchError(c *gin.Context, err error) {
	var ue *upstream.Error
	if errors.As(err, &ue) {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(
			fmt.Sprintf("upstream provider unavailable (status %d)", ue.StatusCode), err))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch market data", err))
}
