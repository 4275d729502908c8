package model

// Stats is the summary view over the trades and opportunities collections,
// recomputed from stored state on every GET /api/stats call.
type Stats struct {
	TotalTrades                int     `json:"total_trades"`
	SuccessfulTrades           int     `json:"successful_trades"`
	WinRate                    float64 `json:"win_rate"`
	TotalProfitETH             float64 `json:"total_profit_eth"`
	TotalProfitUSD             float64 `json:"total_profit_usd"`
	TotalGasSpent              float64 `json:"total_gas_spent"`
	NetProfitETH               float64 `json:"net_profit_eth"`
	BestTradeProfit            string  `json:"best_trade_profit"`
	BestTradePath              string  `json:"best_trade_path"`
	WorstTradeProfit           string  `json:"worst_trade_profit"`
	TotalOpportunitiesDetected int64   `json:"total_opportunities_detected"`
	ProfitableOpportunities    int64   `json:"profitable_opportunities"`
	AvgProfitPerTrade          float64 `json:"avg_profit_per_trade"`
}
