package models

const (
	EventBuy  = "buy"
	EventSell = "sell"
)

// Signal is one stored trading alert. Exactly one of BuyPrice and SellPrice
// is set, matching Event.
type Signal struct {
	ID          uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	Symbol      string   `json:"symbol" gorm:"type:varchar(50);not null"`
	Event       string   `json:"event" gorm:"type:varchar(10);not null"`
	BuyPrice    *float64 `json:"buy_price,omitempty"`
	SellPrice   *float64 `json:"sell_price,omitempty"`
	DisplayTime string   `json:"display_time" gorm:"type:varchar(50);not null"`
}

func (Signal) TableName() string {
	return "signals"
}

// Price returns whichever side's price is set.
func (s Signal) Price() float64 {
	if s.BuyPrice != nil {
		return *s.BuyPrice
	}
	if s.SellPrice != nil {
		return *s.SellPrice
	}
	return 0
}
