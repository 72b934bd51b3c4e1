package catalog

// Default returns the built-in catalog of 21 large-cap instruments used
// when no catalog file is configured.
func Default() *Catalog {
	c, err := New([]Instrument{
		{Symbol: "MSFT", Name: "Microsoft Corporation", Price: 513.71},
		{Symbol: "NVDA", Name: "NVIDIA Corporation", Price: 173.50},
		{Symbol: "AAPL", Name: "Apple Inc.", Price: 213.88},
		{Symbol: "AMZN", Name: "Amazon.com, Inc.", Price: 231.44},
		{Symbol: "GOOG", Name: "Alphabet Inc.", Price: 194.08},
		{Symbol: "META", Name: "Meta Platforms, Inc.", Price: 712.68},
		{Symbol: "AVGO", Name: "Broadcom Inc.", Price: 290.18},
		{Symbol: "TSLA", Name: "Tesla, Inc.", Price: 316.06},
		{Symbol: "TSM", Name: "Taiwan Semiconductor Manufacturing", Price: 245.60},
		{Symbol: "WMT", Name: "Walmart Inc.", Price: 97.47},
		{Symbol: "LLY", Name: "Eli Lilly & Co", Price: 812.69},
		{Symbol: "V", Name: "Visa Inc.", Price: 357.04},
		{Symbol: "ORCL", Name: "Oracle Corporation", Price: 245.12},
		{Symbol: "NFLX", Name: "Netflix, Inc.", Price: 1180.49},
		{Symbol: "MA", Name: "Mastercard Incorporated", Price: 568.22},
		{Symbol: "BAC", Name: "Bank of America Corporation", Price: 48.45},
		{Symbol: "ASML", Name: "ASML Holding N.V.", Price: 711.25},
		{Symbol: "KO", Name: "The Coca-Cola Company", Price: 69.17},
		{Symbol: "BABA", Name: "Alibaba Group Holding Limited", Price: 120.03},
		{Symbol: "MCD", Name: "McDonald's Corporation", Price: 298.47},
		{Symbol: "AMD", Name: "Advanced Micro Devices, Inc.", Price: 166.47},
	})
	if err != nil {
		// The built-in table is validated by tests; this cannot happen.
		panic(err)
	}
	return c
}
