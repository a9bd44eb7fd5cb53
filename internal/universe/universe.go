// Package universe holds the static example symbol lists served by the
// /api/public/universe endpoint.
package universe

import "strings"

// common maps a market-category key to its example symbols. The lists are
// intentionally hardcoded; they are a starting point for clients, not a
// live index constituency.
var common = map[string][]string{
	"ETF_TW": {"0050.TW", "0056.TW", "00878.TW", "00919.TW"},
	"ETF_US": {"SPY", "VOO", "VTI", "VYM", "SCHD", "QQQ"},
}

// Lookup returns the example symbols for a market key. The lookup is
// case-insensitive; unknown keys yield an empty slice, never an error.
func Lookup(market string) []string {
	syms, ok := common[strings.ToUpper(strings.TrimSpace(market))]
	if !ok {
		return []string{}
	}
	// Copy so callers cannot mutate the table.
	out := make([]string, len(syms))
	copy(out, syms)
	return out
}
