// Package types
package types

// TokenInfo is one record of the market-data provider's coin list.
// The catalog holds an immutable snapshot of these, loaded once per process.
type TokenInfo struct {
	ID        string            `json:"id"`
	Symbol    string            `json:"symbol"`
	Name      string            `json:"name"`
	Platforms map[string]string `json:"platforms"`
}
