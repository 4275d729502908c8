package model

// SettingsUpdate is the request body for PUT /api/settings. All fields are
// optional; only fields present in the request are merged into the stored
// settings document. Unknown fields in the body are ignored.
type SettingsUpdate struct {
	MaxGasPriceGwei    *float64 `json:"max_gas_price_gwei"`
	MinProfitThreshold *float64 `json:"min_profit_threshold"`
	MaxFlashLoanAmount *float64 `json:"max_flash_loan_amount"`
	SlippageBuffer     *float64 `json:"slippage_buffer"`
	ScanIntervalMs     *int     `json:"scan_interval_ms"`
	ScanAmount         *string  `json:"scan_amount"`
	ProfitThreshold    *float64 `json:"profit_threshold"`
	ZScoreThreshold    *float64 `json:"z_score_threshold"`
	BotActive          *bool    `json:"bot_active"`
}

// Fields returns the non-nil fields as a document fragment for merging
func (u *SettingsUpdate) Fields() map[string]any {
	fields := map[string]any{}
	if u.MaxGasPriceGwei != nil {
		fields["max_gas_price_gwei"] = *u.MaxGasPriceGwei
	}
	if u.MinProfitThreshold != nil {
		fields["min_profit_threshold"] = *u.MinProfitThreshold
	}
	if u.MaxFlashLoanAmount != nil {
		fields["max_flash_loan_amount"] = *u.MaxFlashLoanAmount
	}
	if u.SlippageBuffer != nil {
		fields["slippage_buffer"] = *u.SlippageBuffer
	}
	if u.ScanIntervalMs != nil {
		fields["scan_interval_ms"] = *u.ScanIntervalMs
	}
	if u.ScanAmount != nil {
		fields["scan_amount"] = *u.ScanAmount
	}
	if u.ProfitThreshold != nil {
		fields["profit_threshold"] = *u.ProfitThreshold
	}
	if u.ZScoreThreshold != nil {
		fields["z_score_threshold"] = *u.ZScoreThreshold
	}
	if u.BotActive != nil {
		fields["bot_active"] = *u.BotActive
	}
	return fields
}
