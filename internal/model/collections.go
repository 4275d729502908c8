// Package model defines the dashboard's collections and API schemas.
package model

// Collection names in the document store
const (
	CollectionSettings      = "settings"
	CollectionBotStatus     = "bot_status"
	CollectionOpportunities = "opportunities"
	CollectionTrades        = "trades"
	CollectionLogs          = "bot_logs"
)

// Collections lists every collection the service manages
var Collections = []string{
	CollectionSettings,
	CollectionBotStatus,
	CollectionOpportunities,
	CollectionTrades,
	CollectionLogs,
}

// Opportunity status constants
const (
	OpportunityStatusDetected   = "detected"
	OpportunityStatusEvaluating = "evaluating"
	OpportunityStatusExpired    = "expired"
	OpportunityStatusProfitable = "profitable"
)

// Trade status constants
const (
	TradeStatusSuccess  = "success"
	TradeStatusReverted = "reverted"
)

// Log level constants
const (
	LogLevelInfo   = "INFO"
	LogLevelWarn   = "WARN"
	LogLevelError  = "ERROR"
	LogLevelProfit = "PROFIT"
	LogLevelScan   = "SCAN"
)
