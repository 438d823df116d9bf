package serviceImp

import (
	"context"
	"strconv"
	"strings"
	"time"

	"agrisense/entities"
	"agrisense/pkg/advisory"
	"agrisense/pkg/ai"
	"agrisense/pkg/records"
	"agrisense/pkg/zone/repository"
	"agrisense/pkg/zone/service"
)

type kbSuggester interface {
	Suggest(query string, k int) ([]entities.ArticleRef, error)
}

type ZoneSvc struct {
	repo  repository.ZoneRepository
	store *records.Store
	llm   ai.Client
	kb    kbSuggester
}

func NewZoneService(r repository.ZoneRepository, s *records.Store, llm ai.Client, kb kbSuggester) *ZoneSvc {
	return &ZoneSvc{repo: r, store: s, llm: llm, kb: kb}
}

// statusFor mirrors the advisory thresholds so the zone badge and the
// advisory engine never disagree about severity.
func statusFor(s entities.SensorReadings) string {
	switch {
	case s.SoilMoisture < 25 || s.Temperature > 42:
		return "Critical"
	case s.SoilMoisture < 40 || s.SoilMoisture > 85 || s.Temperature > 35 || s.Temperature < 10 || s.Humidity > 85:
		return "Risk"
	default:
		return "Healthy"
	}
}

func (s *ZoneSvc) UpdateSensors(zoneID uint, reading entities.SensorReadings) (*entities.Zone, error) {
	z, err := s.repo.FindByID(zoneID)
	if err != nil {
		return nil, err
	}
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}
	z.CurrentSensors = &reading
	z.Status = statusFor(reading)
	if err := s.repo.Update(z); err != nil {
		return nil, err
	}
	return z, nil
}

// Advise assembles the advisory context from the zone's sensors, stage and
// diary, asks the AI client, and writes the recommendation back into the
// zone's active lifecycle stage. Overlapping invocations are not guarded;
// last write wins.
func (s *ZoneSvc) Advise(ctx context.Context, zoneID uint, weather advisory.Weather) (*service.AdvisoryResponse, error) {
	z, err := s.repo.FindByID(zoneID)
	if err != nil {
		return nil, err
	}
	zoneKey := strconv.FormatUint(uint64(zoneID), 10)

	// Seeds the five stages if this zone has never been opened.
	s.store.ListLifecycle(zoneKey)
	active := s.store.ActiveStage(zoneKey)

	req := advisory.Context{
		Crop:       z.CropName,
		Stage:      z.CropStage,
		Weather:    weather,
		DiaryNotes: s.store.ListDiary(zoneKey),
	}
	if active != nil {
		req.Stage = active.Stage
	}
	if cs := z.CurrentSensors; cs != nil {
		m, t, h := cs.SoilMoisture, cs.Temperature, cs.Humidity
		req.Sensors = advisory.Sensors{SoilMoisture: &m, Temperature: &t, Humidity: &h}
	}

	adv, err := s.llm.Advise(ctx, req)
	if err != nil {
		return nil, err
	}

	if active != nil {
		s.store.SetAdvisory(active.ID, adv.Recommendation)
	}

	resp := &service.AdvisoryResponse{ZoneID: zoneID, Stage: req.Stage, Advisory: adv}
	if s.kb != nil {
		query := strings.TrimSpace(z.CropName + " " + req.Stage)
		if refs, err := s.kb.Suggest(query, 3); err == nil {
			resp.SuggestedArticles = refs
		}
	}
	return resp, nil
}
