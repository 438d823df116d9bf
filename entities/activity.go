package entities

import "time"

type ZoneActivity struct {
	ActivityID  uint      `gorm:"primaryKey" json:"activity_id"`
	ZoneID      uint      `gorm:"index" json:"zone_id"`
	Type        string    `json:"type"` // Expense|Harvest|Treatment|Note
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Cost        float64   `json:"cost"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time
}
