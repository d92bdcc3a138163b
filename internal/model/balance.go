package model

// TokenBalance is one asset balance of an address
type TokenBalance struct {
	Symbol   string `json:"symbol"`
	Amount   string `json:"amount"` // decimal string, already scaled by Decimals
	Decimals int    `json:"decimals"`
}

// BalanceResponse represents response for GET /{chain}/balance
type BalanceResponse struct {
	Chain    Chain          `json:"chain"`
	Address  string         `json:"address"`
	Balances []TokenBalance `json:"balances"`
	USDValue string         `json:"usdValue,omitempty"` // native asset only
}
