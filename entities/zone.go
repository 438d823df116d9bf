package entities

import "time"

type GeoJSONPolygon struct {
	Type        string          `json:"type"`
	Coordinates [][][2]float64  `json:"coordinates"`
}

type SensorReadings struct {
	Temperature  float64   `json:"temperature"`
	Humidity     float64   `json:"humidity"`
	SoilMoisture float64   `json:"soil_moisture"`
	Sunlight     float64   `json:"sunlight"`
	Timestamp    time.Time `json:"timestamp"`
}

type Zone struct {
	ZoneID         uint            `gorm:"primaryKey" json:"zone_id"`
	FarmID         string          `json:"farm_id" gorm:"index"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	CropName       string          `json:"crop_name"`
	AreaAcres      float64         `json:"area_acres"`
	SoilType       string          `json:"soil_type"`       // sand|loam|clay
	IrrigationType string          `json:"irrigation_type"` // drip|sprinkler|flood|none
	Status         string          `json:"status"`          // Healthy|Risk|Critical
	CropStage      string          `json:"crop_stage"`
	Coordinates    *GeoJSONPolygon `gorm:"serializer:json" json:"coordinates,omitempty"`
	CurrentSensors *SensorReadings `gorm:"serializer:json" json:"current_sensors,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
