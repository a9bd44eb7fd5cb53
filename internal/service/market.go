// Package service implements the business flow shared by every endpoint:
// normalize the symbol, consult the result cache, fetch from the upstream
// provider on a miss, and store what came back.
package service

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/quotegate/quotegate/internal/cache"
	"github.com/quotegate/quotegate/internal/domain/models"
	"github.com/quotegate/quotegate/internal/logger"
	"github.com/quotegate/quotegate/internal/symbol"
	"github.com/quotegate/quotegate/internal/universe"
)

const dateFormat = "2006-01-02"

// Record kinds used in cache keys. One kind per endpoint feed.
const (
	kindBars      = "ohlcv"
	kindDividends = "div"
	kindSplits    = "split"
	kindInfo      = "info"
)

// Fetcher is the upstream contract the service depends on. The production
// implementation is upstream.Client; tests substitute stubs.
type Fetcher interface {
	Bars(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error)
	Dividends(ctx context.Context, symbol string, start, end time.Time) ([]models.Dividend, error)
	Splits(ctx context.Context, symbol string, start, end time.Time) ([]models.Split, error)
	Info(ctx context.Context, symbol string) (models.Info, error)
}

// MarketDataService defines the operations behind the public endpoints.
type MarketDataService interface {
	// Bars returns the daily OHLCV series for [start, end] with
	// offset/limit pagination applied to the cached, time-filtered slice.
	Bars(ctx context.Context, rawSymbol string, start, end time.Time, offset, limit int) ([]models.Bar, error)
	Dividends(ctx context.Context, rawSymbol string, start, end time.Time) ([]models.Dividend, error)
	Splits(ctx context.Context, rawSymbol string, start, end time.Time) ([]models.Split, error)
	Info(ctx context.Context, rawSymbol string) (models.Info, error)
	// Universe returns the static example symbol list for a market key.
	Universe(market string) []string
}

type marketDataService struct {
	fetcher Fetcher
	cache   *cache.Store
	sf      singleflight.Group
}

// NewMarketDataService wires a MarketDataService with its upstream fetcher
// and an explicitly constructed cache. The cache lives for the whole
// process; there is no teardown beyond process exit.
func NewMarketDataService(fetcher Fetcher, store *cache.Store) MarketDataService {
	return &marketDataService{fetcher: fetcher, cache: store}
}

func (s *marketDataService) Bars(ctx context.Context, rawSymbol string, start, end time.Time, offset, limit int) ([]models.Bar, error) {
	sym := symbol.Normalize(rawSymbol)
	key := cache.Key{Kind: kindBars, Symbol: sym, Start: start.Format(dateFormat), End: end.Format(dateFormat)}

	v, err := s.fetchThrough(key, func() (any, error) {
		return s.fetcher.Bars(ctx, sym, start, end)
	})
	if err != nil {
		return nil, err
	}
	return paginate(v.([]models.Bar), offset, limit), nil
}

func (s *marketDataService) Dividends(ctx context.Context, rawSymbol string, start, end time.Time) ([]models.Dividend, error) {
	sym := symbol.Normalize(rawSymbol)
	key := cache.Key{Kind: kindDividends, Symbol: sym, Start: start.Format(dateFormat), End: end.Format(dateFormat)}

	v, err := s.fetchThrough(key, func() (any, error) {
		return s.fetcher.Dividends(ctx, sym, start, end)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Dividend), nil
}

func (s *marketDataService) Splits(ctx context.Context, rawSymbol string, start, end time.Time) ([]models.Split, error) {
	sym := symbol.Normalize(rawSymbol)
	key := cache.Key{Kind: kindSplits, Symbol: sym, Start: start.Format(dateFormat), End: end.Format(dateFormat)}

	v, err := s.fetchThrough(key, func() (any, error) {
		return s.fetcher.Splits(ctx, sym, start, end)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Split), nil
}

func (s *marketDataService) Info(ctx context.Context, rawSymbol string) (models.Info, error) {
	sym := symbol.Normalize(rawSymbol)
	key := cache.Key{Kind: kindInfo, Symbol: sym}

	v, err := s.fetchThrough(key, func() (any, error) {
		return s.fetcher.Info(ctx, sym)
	})
	if err != nil {
		return models.Info{}, err
	}
	return v.(models.Info), nil
}

func (s *marketDataService) Universe(market string) []string {
	return universe.Lookup(market)
}

// fetchThrough implements the cache-aside flow for one key. Concurrent
// misses for the same key collapse into a single upstream call via
// singleflight. Failed fetches are never cached; empty results are.
func (s *marketDataService) fetchThrough(key cache.Key, fetch func() (any, error)) (any, error) {
	if v, ok := s.cache.Get(key); ok {
		return v, nil
	}

	v, err, _ := s.sf.Do(sfKey(key), func() (any, error) {
		// A concurrent flight may have populated the cache already.
		if v, ok := s.cache.Get(key); ok {
			return v, nil
		}
		log := logger.With("component", "market-service")
		log.Debug().
			Str("kind", key.Kind).
			Str("symbol", key.Symbol).
			Str("start", key.Start).
			Str("end", key.End).
			Msg("cache miss, fetching upstream")

		out, err := fetch()
		if err != nil {
			return nil, err
		}
		s.cache.Put(key, out)
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// sfKey renders a cache key as the flat string singleflight groups on.
func sfKey(k cache.Key) string {
	return k.Kind + "|" + k.Symbol + "|" + k.Start + "|" + k.End
}

// paginate clamps offset and offset+limit to the slice bounds; an offset
// at or past the end yields an empty slice rather than an error.
func paginate(bars []models.Bar, offset, limit int) []models.Bar {
	total := len(bars)
	lo := offset
	if lo > total {
		lo = total
	}
	hi := lo + limit
	if hi > total {
		hi = total
	}
	return bars[lo:hi]
}
