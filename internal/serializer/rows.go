package serializer

import (
	"math"
	"strconv"
	"strings"

	"github.com/kieshlabs/personagen/internal/catalog"
	"github.com/kieshlabs/personagen/internal/persona"
)

// birthDateLayout is the date-only format used in identity rows.
const birthDateLayout = "2006-01-02"

// StockHeaders returns the catalog sheet header row.
func StockHeaders() []string {
	return []string{"StockId", "Ticker", "CompanyName", "Price (USD)"}
}

// IdentityHeaders returns the identity sheet header row.
func IdentityHeaders() []string {
	return []string{"UserId", "Username", "FullName", "Email", "Birthdate"}
}

// HoldingHeaders returns the holding sheet header row: one share-count
// column per instrument, in catalog order.
func HoldingHeaders(cat *catalog.Catalog) []string {
	return append([]string{"UserId", "Balance"}, cat.Symbols()...)
}

// ProfileHeaders returns the profile-parameter sheet header row.
func ProfileHeaders() []string {
	return []string{
		"UserId", "Seed", "DecisionIntervalSeconds", "TradeProb",
		"UseMarketProb", "UseSlippageMarketProb", "OnlineProb",
		"BuyBiasPrc", "MinTradeAmountPrc", "MaxTradeAmountPrc",
		"PerPositionMaxPrc", "MinCashReservePrc", "MaxCashReservePrc",
		"SlippageTolerancePrc", "MinLimitOffsetPrc", "MaxLimitOffsetPrc",
		"AggressivenessPrc", "MinOpenPositions", "MaxOpenPositions",
		"MaxDailyTrades", "MaxOpenOrders", "WatchlistCsv", "Strategy",
	}
}

// StockRows returns one row per catalog instrument.
func StockRows(cat *catalog.Catalog) [][]any {
	rows := make([][]any, 0, cat.Len())
	for _, inst := range cat.Instruments() {
		rows = append(rows, []any{inst.ID, inst.Symbol, inst.Name, inst.Price})
	}
	return rows
}

// IdentityRow returns the identity record for one profile.
func IdentityRow(p persona.Profile) []any {
	return []any{p.ID, p.Handle, p.DisplayName, p.Email, p.BirthDate.Format(birthDateLayout)}
}

// HoldingRow returns the holding record for one profile: balance followed
// by the share count of every catalog instrument, zero where not held.
func HoldingRow(p persona.Profile, cat *catalog.Catalog) []any {
	row := make([]any, 0, 2+cat.Len())
	row = append(row, p.ID, Round2(p.Balance))
	for _, inst := range cat.Instruments() {
		row = append(row, p.Holdings[inst.ID])
	}
	return row
}

// ProfileRow returns the parameter record for one profile. All fractional
// fields are rounded to 4 decimal digits.
func ProfileRow(p persona.Profile) []any {
	return []any{
		p.ID,
		p.Seed,
		p.DecisionIntervalSeconds,
		Round4(p.TradeProb),
		Round4(p.UseMarketProb),
		Round4(p.UseSlippageProb),
		Round4(p.OnlineProb),
		Round4(p.BuyBias),
		Round4(p.MinTradeAmount),
		Round4(p.MaxTradeAmount),
		Round4(p.PerPositionMax),
		Round4(p.MinCashFrac),
		Round4(p.MaxCashFrac),
		Round4(p.SlippageTolerance),
		Round4(p.MinLimitOffset),
		Round4(p.MaxLimitOffset),
		Round4(p.Aggressiveness),
		p.MinStocks,
		p.MaxStocks,
		p.MaxDailyTrades,
		p.MaxOpenOrders,
		WatchlistCSV(p.Watchlist),
		int(p.Strategy),
	}
}

// WatchlistCSV renders instrument ids as a comma-delimited string. Ids are
// kept in the order supplied, which the generator guarantees is ascending.
func WatchlistCSV(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// Round4 rounds to 4 decimal digits.
func Round4(x float64) float64 {
	return math.Round(x*10_000) / 10_000
}

// Round2 rounds to 2 decimal digits.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
