package records

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"agrisense/entities"
)

// LifecycleStages is the fixed stage order every zone passes through.
var LifecycleStages = []string{"Sowing", "Germination", "Vegetative", "Flowering", "Harvest"}

// Store owns the four zone-scoped collections and persists them as one JSON
// document through the injected Persistence. A failed Save is logged and the
// in-memory state keeps the mutation for the rest of the session.
type Store struct {
	mu   sync.Mutex
	data entities.FarmData
	p    Persistence
}

func NewStore(p Persistence) *Store {
	s := &Store{p: p}
	blob, err := p.Load()
	if err != nil {
		log.Printf("[records] load: %v (starting empty)", err)
		return s
	}
	if len(blob) == 0 {
		return s
	}
	if err := json.Unmarshal(blob, &s.data); err != nil {
		log.Printf("[records] corrupt document: %v (starting empty)", err)
		s.data = entities.FarmData{}
	}
	return s
}

// Flush serializes the current document. Callers mutating the result do not
// affect the store.
func (s *Store) Flush() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Marshal(s.data)
}

// persist must be called with the lock held.
func (s *Store) persist() {
	blob, err := json.Marshal(s.data)
	if err != nil {
		log.Printf("[records] marshal: %v", err)
		return
	}
	if err := s.p.Save(blob); err != nil {
		log.Printf("[records] save: %v (keeping in-memory state)", err)
	}
}

func generateID() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), suffix)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func deviationPct(expected, actual float64) float64 {
	if expected <= 0 {
		return 0
	}
	return round2((actual - expected) / expected * 100)
}

// ---- responsibilities ----

type ResponsibilityInput struct {
	TaskName   string     `json:"taskName"`
	AssignedTo string     `json:"assignedTo"`
	DueDate    time.Time  `json:"dueDate"`
	Status     string     `json:"status"`
}

type ResponsibilityPatch struct {
	TaskName   *string    `json:"taskName"`
	AssignedTo *string    `json:"assignedTo"`
	DueDate    *time.Time `json:"dueDate"`
	Status     *string    `json:"status"`
}

func (s *Store) ListResponsibilities(zoneID string) []entities.Responsibility {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entities.Responsibility{}
	for _, r := range s.data.Responsibilities {
		if r.ZoneID == zoneID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) CreateResponsibility(zoneID string, in ResponsibilityInput) entities.Responsibility {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.AssignedTo == "" {
		in.AssignedTo = "Self"
	}
	if in.Status == "" {
		in.Status = "pending"
	}
	r := entities.Responsibility{
		ID:         generateID(),
		ZoneID:     zoneID,
		TaskName:   in.TaskName,
		AssignedTo: in.AssignedTo,
		DueDate:    in.DueDate,
		Status:     in.Status,
		CreatedAt:  time.Now(),
	}
	s.data.Responsibilities = append(s.data.Responsibilities, r)
	s.persist()
	return r
}

func (s *Store) UpdateResponsibility(id string, p ResponsibilityPatch) *entities.Responsibility {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Responsibilities {
		if s.data.Responsibilities[i].ID != id {
			continue
		}
		r := &s.data.Responsibilities[i]
		if p.TaskName != nil {
			r.TaskName = *p.TaskName
		}
		if p.AssignedTo != nil {
			r.AssignedTo = *p.AssignedTo
		}
		if p.DueDate != nil {
			r.DueDate = *p.DueDate
		}
		if p.Status != nil {
			r.Status = *p.Status
		}
		now := time.Now()
		r.UpdatedAt = &now
		s.persist()
		out := *r
		return &out
	}
	return nil // missing id is a no-op
}

func (s *Store) DeleteResponsibility(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Responsibilities {
		if s.data.Responsibilities[i].ID == id {
			s.data.Responsibilities = append(s.data.Responsibilities[:i], s.data.Responsibilities[i+1:]...)
			s.persist()
			return
		}
	}
}

// ---- lifecycle ----

type StagePatch struct {
	Date       *time.Time `json:"date"`
	Notes      *string    `json:"notes"`
	AIAdvisory *string    `json:"aiAdvisory"`
	IsActive   *bool      `json:"isActive"`
}

func stageOrder(name string) int {
	for i, st := range LifecycleStages {
		if st == name {
			return i
		}
	}
	return len(LifecycleStages)
}

// ListLifecycle seeds the five fixed stages on first access for a zone, with
// the first stage active and dated.
func (s *Store) ListLifecycle(zoneID string) []entities.LifecycleStage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.lifecycleForZone(zoneID)
	if len(out) == 0 {
		now := time.Now()
		for i, name := range LifecycleStages {
			st := entities.LifecycleStage{
				ID:        generateID(),
				ZoneID:    zoneID,
				Stage:     name,
				IsActive:  i == 0,
				CreatedAt: now,
			}
			if i == 0 {
				d := now
				st.Date = &d
			}
			s.data.Lifecycle = append(s.data.Lifecycle, st)
		}
		s.persist()
		out = s.lifecycleForZone(zoneID)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return stageOrder(out[i].Stage) < stageOrder(out[j].Stage)
	})
	return out
}

func (s *Store) lifecycleForZone(zoneID string) []entities.LifecycleStage {
	out := []entities.LifecycleStage{}
	for _, st := range s.data.Lifecycle {
		if st.ZoneID == zoneID {
			out = append(out, st)
		}
	}
	return out
}

func (s *Store) UpdateStage(id string, p StagePatch) *entities.LifecycleStage {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Lifecycle {
		if s.data.Lifecycle[i].ID != id {
			continue
		}
		st := &s.data.Lifecycle[i]
		// Activating one stage deactivates every other stage in the zone.
		if p.IsActive != nil && *p.IsActive {
			for j := range s.data.Lifecycle {
				if s.data.Lifecycle[j].ZoneID == st.ZoneID && s.data.Lifecycle[j].ID != id {
					s.data.Lifecycle[j].IsActive = false
				}
			}
		}
		if p.IsActive != nil {
			st.IsActive = *p.IsActive
		}
		if p.Date != nil {
			st.Date = p.Date
		}
		if p.Notes != nil {
			st.Notes = *p.Notes
		}
		if p.AIAdvisory != nil {
			st.AIAdvisory = *p.AIAdvisory
		}
		now := time.Now()
		st.UpdatedAt = &now
		s.persist()
		out := *st
		return &out
	}
	return nil
}

// SetActiveStage makes stageName the single active stage of the zone and
// stamps its date on first activation.
func (s *Store) SetActiveStage(zoneID, stageName string) *entities.LifecycleStage {
	s.mu.Lock()
	defer s.mu.Unlock()
	var activated *entities.LifecycleStage
	for i := range s.data.Lifecycle {
		st := &s.data.Lifecycle[i]
		if st.ZoneID != zoneID {
			continue
		}
		st.IsActive = st.Stage == stageName
		if st.IsActive {
			if st.Date == nil {
				now := time.Now()
				st.Date = &now
			}
			activated = st
		}
	}
	if activated == nil {
		return nil
	}
	s.persist()
	out := *activated
	return &out
}

// SetAdvisory is the asynchronous write-back path for advisory results.
// The caller holds no ordering guarantee between overlapping invocations;
// last write wins.
func (s *Store) SetAdvisory(id, text string) *entities.LifecycleStage {
	return s.UpdateStage(id, StagePatch{AIAdvisory: &text})
}

// ActiveStage returns the currently active stage of the zone, if any.
func (s *Store) ActiveStage(zoneID string) *entities.LifecycleStage {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.data.Lifecycle {
		if st.ZoneID == zoneID && st.IsActive {
			out := st
			return &out
		}
	}
	return nil
}

// ---- diary ----

type DiaryInput struct {
	Date     *time.Time `json:"date"`
	Type     string     `json:"type"`
	Content  string     `json:"content"`
	ImageURL *string    `json:"imageUrl"`
}

type DiaryPatch struct {
	Date     *time.Time `json:"date"`
	Type     *string    `json:"type"`
	Content  *string    `json:"content"`
	ImageURL *string    `json:"imageUrl"`
}

func (s *Store) ListDiary(zoneID string) []entities.DiaryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entities.DiaryEntry{}
	for _, d := range s.data.Diary {
		if d.ZoneID == zoneID {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (s *Store) CreateDiaryEntry(zoneID string, in DiaryInput) entities.DiaryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	if in.Type == "" {
		in.Type = "note"
	}
	d := entities.DiaryEntry{
		ID:        generateID(),
		ZoneID:    zoneID,
		Date:      date,
		Type:      in.Type,
		Content:   in.Content,
		ImageURL:  in.ImageURL,
		CreatedAt: time.Now(),
	}
	s.data.Diary = append(s.data.Diary, d)
	s.persist()
	return d
}

func (s *Store) UpdateDiaryEntry(id string, p DiaryPatch) *entities.DiaryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Diary {
		if s.data.Diary[i].ID != id {
			continue
		}
		d := &s.data.Diary[i]
		if p.Date != nil {
			d.Date = *p.Date
		}
		if p.Type != nil {
			d.Type = *p.Type
		}
		if p.Content != nil {
			d.Content = *p.Content
		}
		if p.ImageURL != nil {
			d.ImageURL = p.ImageURL
		}
		now := time.Now()
		d.UpdatedAt = &now
		s.persist()
		out := *d
		return &out
	}
	return nil
}

func (s *Store) DeleteDiaryEntry(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Diary {
		if s.data.Diary[i].ID == id {
			s.data.Diary = append(s.data.Diary[:i], s.data.Diary[i+1:]...)
			s.persist()
			return
		}
	}
}

// ---- harvest ----

type HarvestInput struct {
	ExpectedYield float64    `json:"expectedYield"`
	ActualYield   float64    `json:"actualYield"`
	QualityGrade  string     `json:"qualityGrade"`
	HarvestDate   *time.Time `json:"harvestDate"`
}

type HarvestPatch struct {
	ExpectedYield *float64   `json:"expectedYield"`
	ActualYield   *float64   `json:"actualYield"`
	QualityGrade  *string    `json:"qualityGrade"`
	HarvestDate   *time.Time `json:"harvestDate"`
}

func (s *Store) ListHarvest(zoneID string) []entities.HarvestLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entities.HarvestLog{}
	for _, h := range s.data.Harvest {
		if h.ZoneID == zoneID {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].HarvestDate.After(out[j].HarvestDate) })
	return out
}

func (s *Store) CreateHarvestLog(zoneID string, in HarvestInput) entities.HarvestLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	date := time.Now()
	if in.HarvestDate != nil {
		date = *in.HarvestDate
	}
	h := entities.HarvestLog{
		ID:            generateID(),
		ZoneID:        zoneID,
		ExpectedYield: in.ExpectedYield,
		ActualYield:   in.ActualYield,
		QualityGrade:  in.QualityGrade,
		HarvestDate:   date,
		Deviation:     deviationPct(in.ExpectedYield, in.ActualYield),
		CreatedAt:     time.Now(),
	}
	s.data.Harvest = append(s.data.Harvest, h)
	s.persist()
	return h
}

func (s *Store) UpdateHarvestLog(id string, p HarvestPatch) *entities.HarvestLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Harvest {
		if s.data.Harvest[i].ID != id {
			continue
		}
		h := &s.data.Harvest[i]
		if p.ExpectedYield != nil {
			h.ExpectedYield = *p.ExpectedYield
		}
		if p.ActualYield != nil {
			h.ActualYield = *p.ActualYield
		}
		if p.QualityGrade != nil {
			h.QualityGrade = *p.QualityGrade
		}
		if p.HarvestDate != nil {
			h.HarvestDate = *p.HarvestDate
		}
		// Deviation is a write-time snapshot, never re-derived on read.
		h.Deviation = deviationPct(h.ExpectedYield, h.ActualYield)
		now := time.Now()
		h.UpdatedAt = &now
		s.persist()
		out := *h
		return &out
	}
	return nil
}

func (s *Store) DeleteHarvestLog(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Harvest {
		if s.data.Harvest[i].ID == id {
			s.data.Harvest = append(s.data.Harvest[:i], s.data.Harvest[i+1:]...)
			s.persist()
			return
		}
	}
}

// ---- aggregate / document ops ----

// Aggregate collects every collection for one zone; the report formatter
// consumes this shape. Lifecycle seeds like ListLifecycle does.
func (s *Store) Aggregate(zoneID string) entities.ZoneRecords {
	lifecycle := s.ListLifecycle(zoneID)
	return entities.ZoneRecords{
		Responsibilities: s.ListResponsibilities(zoneID),
		Lifecycle:        lifecycle,
		Diary:            s.ListDiary(zoneID),
		Harvest:          s.ListHarvest(zoneID),
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = entities.FarmData{}
	s.persist()
}

// Export returns a deep copy of the whole document.
func (s *Store) Export() entities.FarmData {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out entities.FarmData
	blob, err := json.Marshal(s.data)
	if err != nil {
		return out
	}
	_ = json.Unmarshal(blob, &out)
	return out
}

func (s *Store) Import(data entities.FarmData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.persist()
}

// SeedDemo populates a zone with sample records for first-run demos.
func (s *Store) SeedDemo(zoneID string) {
	due := time.Now().AddDate(0, 0, 7)
	s.CreateResponsibility(zoneID, ResponsibilityInput{
		TaskName: "Apply organic fertilizer", AssignedTo: "Self", DueDate: due,
	})
	done := time.Now().AddDate(0, 0, -2)
	s.CreateResponsibility(zoneID, ResponsibilityInput{
		TaskName: "Check irrigation system", AssignedTo: "Worker", DueDate: done, Status: "completed",
	})
	d1 := time.Now().AddDate(0, 0, -5)
	s.CreateDiaryEntry(zoneID, DiaryInput{
		Date: &d1, Content: "Applied organic compost to improve soil quality. Observed healthy plant growth.",
	})
	d2 := time.Now().AddDate(0, 0, -1)
	s.CreateDiaryEntry(zoneID, DiaryInput{
		Date: &d2, Type: "incident",
		Content: "Spotted minor aphid infestation on lower leaves. Applied neem oil spray.",
	})
	s.ListLifecycle(zoneID)
}
