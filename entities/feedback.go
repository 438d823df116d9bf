package entities

import "time"

type Feedback struct {
	FeedbackID uint      `gorm:"primaryKey" json:"feedback_id"`
	UserID     string    `json:"user_id" gorm:"index"`
	Category   string    `json:"category"` // bug|feature|general
	Message    string    `json:"message"`
	Rating     int       `json:"rating"` // 1..5
	CreatedAt  time.Time `json:"created_at"`
}
