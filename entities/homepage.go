package entities

import "time"

// HomepageConfig versions the CMS-editable homepage document. Data is opaque
// JSON; readers default missing fields rather than migrating old versions.
type HomepageConfig struct {
	ConfigID  uint      `gorm:"primaryKey" json:"config_id"`
	Version   int       `json:"version" gorm:"index"`
	Data      string    `json:"data"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
}
