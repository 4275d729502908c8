// Package stats derives summary statistics from the trades and
// opportunities collections.
package stats

import (
	"context"
	"math"
	"strconv"

	"flashbot/backend/internal/model"
	"flashbot/backend/internal/store"
)

// Aggregator computes the dashboard summary. It is a pure function of
// stored state and recomputes on every call; nothing is cached.
type Aggregator struct {
	store store.Store
}

// New creates a stats aggregator over the given store
func New(s store.Store) *Aggregator {
	return &Aggregator{store: s}
}

// Compute scans all trades and opportunities and returns the summary.
// Profit fields are stored as decimal strings; they are parsed as floats
// for computation only. Ties for best/worst trade resolve to the first
// document in store enumeration order.
func (a *Aggregator) Compute(ctx context.Context) (*model.Stats, error) {
	trades, err := a.store.Find(ctx, model.CollectionTrades, nil, store.FindOptions{})
	if err != nil {
		return nil, err
	}

	var (
		successfulCount int
		totalProfit     float64
		totalProfitUSD  float64
		totalGas        float64
		best            store.Document
		bestProfit      float64
		worst           store.Document
		worstProfit     float64
	)

	for _, t := range trades {
		profit := floatField(t, "profit")
		totalGas += floatField(t, "gas_cost")

		if worst == nil || profit < worstProfit {
			worst, worstProfit = t, profit
		}

		if t["status"] != model.TradeStatusSuccess {
			continue
		}
		successfulCount++
		totalProfit += profit
		totalProfitUSD += floatField(t, "profit_usd")
		if best == nil || profit > bestProfit {
			best, bestProfit = t, profit
		}
	}

	winRate := 0.0
	if len(trades) > 0 {
		winRate = float64(successfulCount) / float64(len(trades)) * 100
	}

	avgProfit := 0.0
	if successfulCount > 0 {
		avgProfit = totalProfit / float64(successfulCount)
	}

	oppCount, err := a.store.Count(ctx, model.CollectionOpportunities, nil)
	if err != nil {
		return nil, err
	}
	profitableOppCount, err := a.store.Count(ctx, model.CollectionOpportunities, store.Filter{
		"status": model.OpportunityStatusProfitable,
	})
	if err != nil {
		return nil, err
	}

	return &model.Stats{
		TotalTrades:                len(trades),
		SuccessfulTrades:           successfulCount,
		WinRate:                    round(winRate, 1),
		TotalProfitETH:             round(totalProfit, 6),
		TotalProfitUSD:             round(totalProfitUSD, 2),
		TotalGasSpent:              round(totalGas, 6),
		NetProfitETH:               round(totalProfit-totalGas, 6),
		BestTradeProfit:            stringField(best, "profit", "0"),
		BestTradePath:              stringField(best, "path", "N/A"),
		WorstTradeProfit:           stringField(worst, "profit", "0"),
		TotalOpportunitiesDetected: oppCount,
		ProfitableOpportunities:    profitableOppCount,
		AvgProfitPerTrade:          round(avgProfit, 6),
	}, nil
}

// floatField parses a numeric document field, tolerating decimal strings.
// Absent or malformed values read as 0.
func floatField(doc store.Document, field string) float64 {
	switch v := doc[field].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// stringField returns a document field rendered as a string, or fallback if
// the document is nil or the field absent
func stringField(doc store.Document, field, fallback string) string {
	if doc == nil {
		return fallback
	}
	switch v := doc[field].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fallback
	}
}

func round(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
