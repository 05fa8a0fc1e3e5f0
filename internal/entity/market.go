package entity

// JeonseRatioRow is the jeonse-to-sale price ratio for one region, computed
// from the latest sale and lease aggregates.
type JeonseRatioRow struct {
	Region         string  `json:"region"`
	AvgSalePrice   float64 `json:"avg_sale_price"`
	AvgJeonsePrice float64 `json:"avg_jeonse_price"`
	JeonseRatio    float64 `json:"jeonse_ratio"`
}

// PriceTrendRow is one month of average sale and jeonse prices for a region
// or an apartment complex.
type PriceTrendRow struct {
	Name        string  `json:"name"`
	Month       string  `json:"month"`
	TradeType   string  `json:"trade_type"`
	AvgPrice    float64 `json:"avg_price"`
	SampleCount int     `json:"sample_count"`
}

// TransactionVolumeRow is the listing count for one region and month.
type TransactionVolumeRow struct {
	Region       string `json:"region"`
	Month        string `json:"month"`
	TradeType    string `json:"trade_type"`
	Transactions int    `json:"transactions"`
}
