// Package seed populates empty collections with synthetic demo data at boot.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"flashbot/backend/internal/model"
	"flashbot/backend/internal/store"
	"flashbot/backend/pkg/logger"

	"github.com/shopspring/decimal"
)

var opportunityTokens = []string{"WETH", "USDC", "USDbC", "DAI", "cbETH", "AERO", "DEGEN", "BRETT"}

var tradeTokens = []string{"WETH", "USDC", "USDbC", "DAI", "cbETH"}

var dexes = []string{"Uniswap V3", "Aerodrome", "PancakeSwap", "Odos"}

var logLevels = []string{
	model.LogLevelInfo,
	model.LogLevelWarn,
	model.LogLevelError,
	model.LogLevelProfit,
	model.LogLevelScan,
}

var logMessages = []string{
	"Bot started successfully",
	"Loaded 1247 arbitrage paths",
	"Fetched 23 flash loanable assets from Aave V3",
	"Scanning path: WETH -> USDC -> DAI -> WETH",
	"No profitable opportunity on current scan",
	"Detected opportunity: 0.0234 WETH profit",
	"Transaction simulation successful",
	"Sent transaction: 0xabc123...",
	"Transaction confirmed in block 25123456",
	"Profit realized: 0.0234 WETH ($58.50)",
	"RPC fallback activated: switching to backup node",
	"Gas price spike detected: 0.08 gwei -> pausing",
	"Resuming scans after gas cooldown",
	"Token database refreshed: 342 tokens",
	"Z-score alert: WETH/USDC deviation at 2.7",
}

var opportunityStatuses = []string{
	model.OpportunityStatusDetected,
	model.OpportunityStatusEvaluating,
	model.OpportunityStatusExpired,
	model.OpportunityStatusProfitable,
}

// Seeder populates empty collections with representative synthetic records.
// Idempotent: a non-empty collection is never touched, so restarts do not
// duplicate data.
type Seeder struct {
	store store.Store
	log   *logger.Logger
}

// New creates a seeder over the given store
func New(s store.Store, log *logger.Logger) *Seeder {
	return &Seeder{
		store: s,
		log:   log,
	}
}

// Run seeds each empty collection in turn
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedSettings(ctx); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	if err := s.seedBotStatus(ctx); err != nil {
		return fmt.Errorf("seed bot status: %w", err)
	}
	if err := s.seedOpportunities(ctx); err != nil {
		return fmt.Errorf("seed opportunities: %w", err)
	}
	if err := s.seedTrades(ctx); err != nil {
		return fmt.Errorf("seed trades: %w", err)
	}
	if err := s.seedLogs(ctx); err != nil {
		return fmt.Errorf("seed logs: %w", err)
	}
	return nil
}

func (s *Seeder) isEmpty(ctx context.Context, collection string) (bool, error) {
	count, err := s.store.Count(ctx, collection, nil)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (s *Seeder) seedSettings(ctx context.Context) error {
	empty, err := s.isEmpty(ctx, model.CollectionSettings)
	if err != nil || !empty {
		return err
	}

	err = s.store.UpsertSingleton(ctx, model.CollectionSettings, store.Document{
		"max_gas_price_gwei":    0.1,
		"min_profit_threshold":  0.001,
		"max_flash_loan_amount": 100.0,
		"slippage_buffer":       0.001,
		"scan_interval_ms":      4000,
		"scan_amount":           "1",
		"profit_threshold":      0.4,
		"z_score_threshold":     2.5,
		"bot_active":            true,
		"updated_at":            store.FormatTime(time.Now()),
	})
	if err != nil {
		return err
	}

	s.log.Info("Seeded default settings")
	return nil
}

func (s *Seeder) seedBotStatus(ctx context.Context) error {
	empty, err := s.isEmpty(ctx, model.CollectionBotStatus)
	if err != nil || !empty {
		return err
	}

	now := store.FormatTime(time.Now())
	err = s.store.UpsertSingleton(ctx, model.CollectionBotStatus, store.Document{
		"status":             "idle",
		"started_at":         now,
		"last_scan_at":       now,
		"scans_count":        0,
		"paths_loaded":       0,
		"wallet_address":     "Not Connected",
		"wallet_balance_eth": "0.0",
		"network":            "base",
		"uptime_seconds":     0,
	})
	if err != nil {
		return err
	}

	s.log.Info("Seeded bot status")
	return nil
}

func (s *Seeder) seedOpportunities(ctx context.Context) error {
	empty, err := s.isEmpty(ctx, model.CollectionOpportunities)
	if err != nil || !empty {
		return err
	}

	docs := make([]store.Document, 0, 15)
	for i := 0; i < 15; i++ {
		t1, t2, t3 := samplePath(opportunityTokens)
		profit := decimal.NewFromFloat(randFloat(0.001, 0.5)).Round(4)
		docs = append(docs, store.Document{
			"detected_at":          store.FormatTime(time.Now().Add(-time.Duration(randInt(1, 120)) * time.Minute)),
			"path":                 fmt.Sprintf("%s -> %s -> %s -> %s", t1, t2, t3, t1),
			"dexes":                fmt.Sprintf("%s / %s", dexes[rand.Intn(len(dexes))], dexes[rand.Intn(len(dexes))]),
			"flash_loan_asset":     t1,
			"flash_loan_amount":    formatDecimal(randFloat(1, 50), 2),
			"estimated_profit":     profit.String(),
			"estimated_profit_usd": profit.Mul(decimal.NewFromInt(2500)).Round(2).String(),
			"gas_cost_estimate":    formatDecimal(randFloat(0.0001, 0.005), 5),
			"status":               opportunityStatuses[rand.Intn(len(opportunityStatuses))],
			"net_profit":           profit.Sub(decimal.NewFromFloat(randFloat(0.0001, 0.002))).Round(4).String(),
		})
	}

	if _, err := s.store.InsertMany(ctx, model.CollectionOpportunities, docs); err != nil {
		return err
	}

	s.log.Infof("Seeded %d opportunities", len(docs))
	return nil
}

func (s *Seeder) seedTrades(ctx context.Context) error {
	empty, err := s.isEmpty(ctx, model.CollectionTrades)
	if err != nil || !empty {
		return err
	}

	docs := make([]store.Document, 0, 10)
	for i := 0; i < 10; i++ {
		t1, t2, t3 := samplePath(tradeTokens)
		profit := decimal.NewFromFloat(randFloat(-0.01, 0.3)).Round(4)
		status := model.TradeStatusReverted
		if profit.IsPositive() {
			status = model.TradeStatusSuccess
		}
		docs = append(docs, store.Document{
			"executed_at":       store.FormatTime(time.Now().Add(-time.Duration(randInt(1, 72)) * time.Hour)),
			"path":              fmt.Sprintf("%s -> %s -> %s -> %s", t1, t2, t3, t1),
			"flash_loan_amount": formatDecimal(randFloat(1, 50), 2),
			"profit":            profit.String(),
			"profit_usd":        profit.Mul(decimal.NewFromInt(2500)).Round(2).String(),
			"gas_cost":          formatDecimal(randFloat(0.0001, 0.003), 5),
			"tx_hash":           randTxHash(),
			"status":            status,
			"block_number":      randInt(25000000, 26000000),
		})
	}

	if _, err := s.store.InsertMany(ctx, model.CollectionTrades, docs); err != nil {
		return err
	}

	s.log.Infof("Seeded %d trades", len(docs))
	return nil
}

func (s *Seeder) seedLogs(ctx context.Context) error {
	empty, err := s.isEmpty(ctx, model.CollectionLogs)
	if err != nil || !empty {
		return err
	}

	docs := make([]store.Document, 0, 30)
	for i := 0; i < 30; i++ {
		docs = append(docs, store.Document{
			"timestamp": store.FormatTime(time.Now().Add(-time.Duration(randInt(1, 3600)) * time.Second)),
			"level":     logLevels[rand.Intn(len(logLevels))],
			"message":   logMessages[rand.Intn(len(logMessages))],
		})
	}

	// Insertion order establishes a chronological baseline even though the
	// stored timestamps are randomized.
	sort.Slice(docs, func(i, j int) bool {
		return docs[i]["timestamp"].(string) < docs[j]["timestamp"].(string)
	})

	if _, err := s.store.InsertMany(ctx, model.CollectionLogs, docs); err != nil {
		return err
	}

	s.log.Infof("Seeded %d log entries", len(docs))
	return nil
}

// samplePath picks three distinct tokens for a cyclic arbitrage path
func samplePath(tokens []string) (string, string, string) {
	perm := rand.Perm(len(tokens))
	return tokens[perm[0]], tokens[perm[1]], tokens[perm[2]]
}

func randFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func randInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// formatDecimal renders a monetary value as a fixed-precision decimal string
func formatDecimal(value float64, places int32) string {
	return decimal.NewFromFloat(value).Round(places).String()
}

func randTxHash() string {
	const hexDigits = "abcdef0123456789"
	hash := make([]byte, 64)
	for i := range hash {
		hash[i] = hexDigits[rand.Intn(len(hexDigits))]
	}
	return "0x" + string(hash)
}
