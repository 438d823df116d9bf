package entities

import "time"

// Record-store entities. These live in one JSON document keyed by zoneId,
// not in the relational store, so field names follow the document contract
// (camelCase) rather than the API column convention.

type Responsibility struct {
	ID         string     `json:"id"`
	ZoneID     string     `json:"zoneId"`
	TaskName   string     `json:"taskName"`
	AssignedTo string     `json:"assignedTo"`
	DueDate    time.Time  `json:"dueDate"`
	Status     string     `json:"status"` // pending|completed
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

type LifecycleStage struct {
	ID         string     `json:"id"`
	ZoneID     string     `json:"zoneId"`
	Stage      string     `json:"stage"` // Sowing|Germination|Vegetative|Flowering|Harvest
	Date       *time.Time `json:"date"`
	Notes      string     `json:"notes"`
	AIAdvisory string     `json:"aiAdvisory"`
	IsActive   bool       `json:"isActive"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

type DiaryEntry struct {
	ID        string     `json:"id"`
	ZoneID    string     `json:"zoneId"`
	Date      time.Time  `json:"date"`
	Type      string     `json:"type"` // note|incident
	Content   string     `json:"content"`
	ImageURL  *string    `json:"imageUrl"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type HarvestLog struct {
	ID            string     `json:"id"`
	ZoneID        string     `json:"zoneId"`
	ExpectedYield float64    `json:"expectedYield"` // kg
	ActualYield   float64    `json:"actualYield"`   // kg
	QualityGrade  string     `json:"qualityGrade"`
	HarvestDate   time.Time  `json:"harvestDate"`
	Deviation     float64    `json:"deviation"` // percent, snapshot at write time
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// FarmData is the whole persisted document.
type FarmData struct {
	Responsibilities []Responsibility `json:"responsibilities"`
	Lifecycle        []LifecycleStage `json:"lifecycle"`
	Diary            []DiaryEntry     `json:"diary"`
	Harvest          []HarvestLog     `json:"harvest"`
}

// ZoneRecords is the aggregate view of one zone across all four collections.
type ZoneRecords struct {
	Responsibilities []Responsibility `json:"responsibilities"`
	Lifecycle        []LifecycleStage `json:"lifecycle"`
	Diary            []DiaryEntry     `json:"diary"`
	Harvest          []HarvestLog     `json:"harvest"`
}
