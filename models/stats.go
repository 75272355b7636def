package models

type SignalStats struct {
	Total int64 `json:"total"`
	Buy   int64 `json:"buy"`
	Sell  int64 `json:"sell"`
}
