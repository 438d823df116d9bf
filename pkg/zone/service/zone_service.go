package service

import (
	"context"

	"agrisense/entities"
	"agrisense/pkg/advisory"
	"agrisense/pkg/ai"
)

type AdvisoryResponse struct {
	ZoneID            uint                 `json:"zone_id"`
	Stage             string               `json:"stage"`
	Advisory          *ai.Advisory         `json:"advisory"`
	SuggestedArticles []entities.ArticleRef `json:"suggested_articles,omitempty"`
}

type ZoneService interface {
	UpdateSensors(zoneID uint, s entities.SensorReadings) (*entities.Zone, error)
	Advise(ctx context.Context, zoneID uint, weather advisory.Weather) (*AdvisoryResponse, error)
}
