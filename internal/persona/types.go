package persona

import "time"

// Strategy tags one of the fixed trading strategies a persona runs.
type Strategy int

const (
	StrategyMomentum Strategy = iota + 1
	StrategyMeanReversion
	StrategyValue
	StrategyNoise

	numStrategies = 4
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyMomentum:
		return "momentum"
	case StrategyMeanReversion:
		return "mean-reversion"
	case StrategyValue:
		return "value"
	case StrategyNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// Profile is one fully-synthesized trading-bot persona. It is assembled by
// the five pipeline stages and immutable once complete.
type Profile struct {
	// Identity
	ID          int       // Sequential numeric id, unique within a batch
	Handle      string    // Username, alphanumeric 5-20 chars, unique within a batch
	DisplayName string    // Full display name
	Email       string    // Contact address
	BirthDate   time.Time // Date of birth within the configured adult range
	Seed        int64     // Seed for the persona's future simulated behavior

	// Trade properties
	Aggressiveness          float64  // Risk appetite in [0,1]; drives most later derivations
	OnlineProb              float64  // Probability of being online at any moment, [0,1]
	DecisionIntervalSeconds int      // Seconds between decisions, >= 1
	TradeProb               float64  // Probability of trading per decision, [0,1]
	Strategy                Strategy // Fixed strategy tag

	// Portfolio
	Balance     float64     // Starting balance in USD
	MinCashFrac float64     // Minimum cash reserve fraction, <= MaxCashFrac
	MaxCashFrac float64     // Maximum cash reserve fraction, [0,1]
	MinStocks   int         // Minimum open positions, >= 1
	MaxStocks   int         // Maximum open positions, > MinStocks, < catalog size
	Watchlist   []int       // Monitored instrument ids, ascending, superset of holdings
	Holdings    map[int]int // Instrument id -> share count for held positions

	// Order-type preferences
	UseMarketProb   float64 // Probability of using market orders, [0,1]
	UseSlippageProb float64 // Probability of using slippage orders, [0,1]
	BuyBias         float64 // Buy-side bias, hard-clamped to [0.40, 0.60]

	// Trade limits
	SlippageTolerance float64 // Max acceptable execution-price deviation, [0,1]
	MinLimitOffset    float64 // Min fractional limit-price offset, <= MaxLimitOffset
	MaxLimitOffset    float64 // Max fractional limit-price offset, [0,1]
	PerPositionMax    float64 // Max fraction of portfolio per position, <= 1/MaxStocks
	MinTradeAmount    float64 // Min trade size as portfolio fraction, <= MaxTradeAmount
	MaxTradeAmount    float64 // Max trade size as portfolio fraction, <= PerPositionMax
	MaxDailyTrades    int     // Daily trade cap, >= 100
	MaxOpenOrders     int     // Concurrent open-order cap, >= 10
}

// Policy holds the configurable generation policy applied to every persona
// in a batch.
type Policy struct {
	MinAge int // Youngest allowed age in years
	MaxAge int // Oldest allowed age in years
}

// DefaultPolicy returns the default adult age range.
func DefaultPolicy() Policy {
	return Policy{MinAge: 18, MaxAge: 80}
}
