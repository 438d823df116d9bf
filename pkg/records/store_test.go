package records

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"agrisense/entities"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(NewMemoryPersistence(nil))
}

func TestResponsibilityLifecycle(t *testing.T) {
	s := newTestStore(t)

	r := s.CreateResponsibility("z1", ResponsibilityInput{TaskName: "Fertilize"})
	if r.ID == "" {
		t.Fatal("expected generated id")
	}
	if r.AssignedTo != "Self" || r.Status != "pending" {
		t.Fatalf("defaults not applied: %+v", r)
	}

	name := "Fertilize north plot"
	status := "completed"
	out := s.UpdateResponsibility(r.ID, ResponsibilityPatch{TaskName: &name, Status: &status})
	if out == nil {
		t.Fatal("update returned nil for existing id")
	}
	if out.TaskName != name || out.Status != status {
		t.Fatalf("patch not applied: %+v", out)
	}
	if out.UpdatedAt == nil {
		t.Error("expected updatedAt to be stamped")
	}

	if got := s.UpdateResponsibility("missing", ResponsibilityPatch{TaskName: &name}); got != nil {
		t.Fatalf("update of missing id should be a no-op, got %+v", got)
	}

	s.DeleteResponsibility(r.ID)
	s.DeleteResponsibility(r.ID) // second delete is idempotent
	if got := s.ListResponsibilities("z1"); len(got) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(got))
	}
}

func TestZoneIsolation(t *testing.T) {
	s := newTestStore(t)
	s.CreateResponsibility("z1", ResponsibilityInput{TaskName: "a"})
	s.CreateResponsibility("z2", ResponsibilityInput{TaskName: "b"})
	s.CreateResponsibility("z2", ResponsibilityInput{TaskName: "c"})

	if got := len(s.ListResponsibilities("z1")); got != 1 {
		t.Errorf("z1 count = %d, want 1", got)
	}
	if got := len(s.ListResponsibilities("z2")); got != 2 {
		t.Errorf("z2 count = %d, want 2", got)
	}
	if got := len(s.ListResponsibilities("z3")); got != 0 {
		t.Errorf("z3 count = %d, want 0", got)
	}
}

func TestUniqueIDs(t *testing.T) {
	s := newTestStore(t)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		r := s.CreateResponsibility("z1", ResponsibilityInput{TaskName: "t"})
		if seen[r.ID] {
			t.Fatalf("duplicate id generated: %s", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestLifecycleSeedsFiveStages(t *testing.T) {
	s := newTestStore(t)

	stages := s.ListLifecycle("z1")
	if len(stages) != len(LifecycleStages) {
		t.Fatalf("seeded %d stages, want %d", len(stages), len(LifecycleStages))
	}
	for i, st := range stages {
		if st.Stage != LifecycleStages[i] {
			t.Errorf("stage[%d] = %s, want %s", i, st.Stage, LifecycleStages[i])
		}
	}
	if !stages[0].IsActive || stages[0].Date == nil {
		t.Error("first stage should be active and dated")
	}
	for _, st := range stages[1:] {
		if st.IsActive {
			t.Errorf("stage %s should not be active on seed", st.Stage)
		}
	}

	// second call must not reseed
	if again := s.ListLifecycle("z1"); len(again) != len(LifecycleStages) {
		t.Fatalf("reseed happened: %d stages", len(again))
	}
}

func TestSetActiveStageSingleActive(t *testing.T) {
	s := newTestStore(t)
	s.ListLifecycle("z1")

	out := s.SetActiveStage("z1", "Flowering")
	if out == nil || out.Stage != "Flowering" {
		t.Fatalf("activation failed: %+v", out)
	}
	if out.Date == nil {
		t.Error("activation should stamp date")
	}

	active := 0
	for _, st := range s.ListLifecycle("z1") {
		if st.IsActive {
			active++
			if st.Stage != "Flowering" {
				t.Errorf("wrong active stage: %s", st.Stage)
			}
		}
	}
	if active != 1 {
		t.Fatalf("active stages = %d, want 1", active)
	}

	if got := s.SetActiveStage("z1", "Ripening"); got != nil {
		t.Fatalf("unknown stage name should return nil, got %+v", got)
	}

	if as := s.ActiveStage("z1"); as == nil || as.Stage != "Flowering" {
		t.Fatalf("ActiveStage = %+v, want Flowering", as)
	}
}

func TestUpdateStageActivationDeactivatesOthers(t *testing.T) {
	s := newTestStore(t)
	stages := s.ListLifecycle("z1")

	active := true
	if out := s.UpdateStage(stages[2].ID, StagePatch{IsActive: &active}); out == nil || !out.IsActive {
		t.Fatalf("activation patch failed: %+v", out)
	}
	count := 0
	for _, st := range s.ListLifecycle("z1") {
		if st.IsActive {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("active stages = %d, want 1", count)
	}
}

func TestDiaryDefaultsAndOrdering(t *testing.T) {
	s := newTestStore(t)

	old := time.Now().AddDate(0, 0, -3)
	recent := time.Now().AddDate(0, 0, -1)
	s.CreateDiaryEntry("z1", DiaryInput{Date: &old, Content: "older"})
	s.CreateDiaryEntry("z1", DiaryInput{Date: &recent, Content: "newer"})

	got := s.ListDiary("z1")
	if len(got) != 2 {
		t.Fatalf("diary count = %d, want 2", len(got))
	}
	if got[0].Content != "newer" || got[1].Content != "older" {
		t.Fatalf("diary not date-descending: %s, %s", got[0].Content, got[1].Content)
	}
	if got[0].Type != "note" {
		t.Errorf("default type = %s, want note", got[0].Type)
	}
}

func TestHarvestDeviation(t *testing.T) {
	s := newTestStore(t)

	h := s.CreateHarvestLog("z1", HarvestInput{ExpectedYield: 1000, ActualYield: 1150})
	if h.Deviation != 15 {
		t.Fatalf("deviation = %v, want 15", h.Deviation)
	}

	zero := s.CreateHarvestLog("z1", HarvestInput{ExpectedYield: 0, ActualYield: 500})
	if zero.Deviation != 0 {
		t.Fatalf("deviation with zero expected = %v, want 0", zero.Deviation)
	}

	// deviation is recomputed when yields change
	actual := 900.0
	out := s.UpdateHarvestLog(h.ID, HarvestPatch{ActualYield: &actual})
	if out == nil {
		t.Fatal("update returned nil")
	}
	if out.Deviation != -10 {
		t.Fatalf("recomputed deviation = %v, want -10", out.Deviation)
	}

	frac := s.CreateHarvestLog("z1", HarvestInput{ExpectedYield: 300, ActualYield: 310})
	if frac.Deviation != 3.33 {
		t.Fatalf("fractional deviation = %v, want 3.33", frac.Deviation)
	}
}

func TestAggregateCollectsAllCollections(t *testing.T) {
	s := newTestStore(t)
	s.CreateResponsibility("z1", ResponsibilityInput{TaskName: "t"})
	s.CreateDiaryEntry("z1", DiaryInput{Content: "d"})
	s.CreateHarvestLog("z1", HarvestInput{ExpectedYield: 10, ActualYield: 10})

	agg := s.Aggregate("z1")
	if len(agg.Responsibilities) != 1 || len(agg.Diary) != 1 || len(agg.Harvest) != 1 {
		t.Fatalf("aggregate counts wrong: %+v", agg)
	}
	if len(agg.Lifecycle) != len(LifecycleStages) {
		t.Fatalf("aggregate should seed lifecycle, got %d stages", len(agg.Lifecycle))
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	p := NewMemoryPersistence(nil)
	s := NewStore(p)
	s.CreateResponsibility("z1", ResponsibilityInput{TaskName: "persisted"})

	reloaded := NewStore(p)
	got := reloaded.ListResponsibilities("z1")
	if len(got) != 1 || got[0].TaskName != "persisted" {
		t.Fatalf("reload lost data: %+v", got)
	}
}

func TestCorruptDocumentStartsEmpty(t *testing.T) {
	s := NewStore(NewMemoryPersistence([]byte("{not json")))
	if got := s.ListResponsibilities("z1"); len(got) != 0 {
		t.Fatalf("corrupt blob should yield empty store, got %d", len(got))
	}
}

type failingPersistence struct{ fail bool }

func (f *failingPersistence) Load() ([]byte, error) { return nil, nil }
func (f *failingPersistence) Save([]byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return nil
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	p := &failingPersistence{fail: true}
	s := NewStore(p)

	r := s.CreateResponsibility("z1", ResponsibilityInput{TaskName: "survives"})
	got := s.ListResponsibilities("z1")
	if len(got) != 1 || got[0].ID != r.ID {
		t.Fatalf("mutation lost after save failure: %+v", got)
	}
}

func TestExportImportClear(t *testing.T) {
	s := newTestStore(t)
	s.CreateResponsibility("z1", ResponsibilityInput{TaskName: "t"})

	doc := s.Export()
	if len(doc.Responsibilities) != 1 {
		t.Fatalf("export count = %d, want 1", len(doc.Responsibilities))
	}
	// export is a deep copy
	doc.Responsibilities[0].TaskName = "mutated"
	if s.ListResponsibilities("z1")[0].TaskName != "t" {
		t.Fatal("export copy leaked back into the store")
	}

	s.Clear()
	if len(s.ListResponsibilities("z1")) != 0 {
		t.Fatal("clear left records behind")
	}

	s.Import(doc)
	if got := s.ListResponsibilities("z1"); len(got) != 1 || got[0].TaskName != "mutated" {
		t.Fatalf("import failed: %+v", got)
	}
}

func TestSeedDemoPopulatesZone(t *testing.T) {
	s := newTestStore(t)
	s.SeedDemo("z1")

	if got := len(s.ListResponsibilities("z1")); got != 2 {
		t.Errorf("seeded responsibilities = %d, want 2", got)
	}
	diary := s.ListDiary("z1")
	if len(diary) != 2 {
		t.Fatalf("seeded diary = %d, want 2", len(diary))
	}
	foundIncident := false
	for _, d := range diary {
		if d.Type == "incident" && strings.Contains(strings.ToLower(d.Content), "aphid") {
			foundIncident = true
		}
	}
	if !foundIncident {
		t.Error("seed should include an aphid incident entry")
	}
	if got := len(s.ListLifecycle("z1")); got != len(LifecycleStages) {
		t.Errorf("seeded lifecycle = %d stages", got)
	}
}

func TestFlushMarshalsDocument(t *testing.T) {
	s := newTestStore(t)
	s.CreateResponsibility("z1", ResponsibilityInput{TaskName: "t"})

	blob, err := s.Flush()
	if err != nil {
		t.Fatalf("flush: %v", err)
	}
	var doc entities.FarmData
	if err := json.Unmarshal(blob, &doc); err != nil {
		t.Fatalf("flush produced invalid json: %v", err)
	}
	if len(doc.Responsibilities) != 1 {
		t.Fatalf("flush document count = %d, want 1", len(doc.Responsibilities))
	}
}
