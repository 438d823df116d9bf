package serviceImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agrisense/entities"
)

type memRepo struct {
	articles []entities.KBArticle
}

func (m *memRepo) Create(a *entities.KBArticle) error {
	a.ArticleID = uint(len(m.articles) + 1)
	m.articles = append(m.articles, *a)
	return nil
}
func (m *memRepo) All() ([]entities.KBArticle, error)  { return m.articles, nil }
func (m *memRepo) List() ([]entities.KBArticle, error) { return m.articles, nil }

func seeded() *Svc {
	r := &memRepo{articles: []entities.KBArticle{
		{ArticleID: 1, Title: "Aphid control in wheat", Tags: "pests,wheat", Text: "Neem oil works against aphids."},
		{ArticleID: 2, Title: "Irrigation scheduling", Tags: "water", Text: "Schedule drip irrigation for wheat at dawn."},
		{ArticleID: 3, Title: "Rice paddy management", Tags: "rice", Text: "Maintain water depth."},
	}}
	return New(r)
}

func TestIngestTextValidation(t *testing.T) {
	s := New(&memRepo{})
	if _, err := s.IngestText("", "tags", "body", ""); err == nil {
		t.Error("expected error for empty title")
	}
	if _, err := s.IngestText("Title", "tags", "   ", ""); err == nil {
		t.Error("expected error for empty text")
	}
	a, err := s.IngestText("Title", "tags", "body", "http://x")
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if a.ArticleID == 0 {
		t.Error("article not persisted")
	}
}

func TestSearchScoresTitleOverBody(t *testing.T) {
	s := seeded()
	got, err := s.Search("wheat", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("results = %d, want 2", len(got))
	}
	// "Aphid control in wheat" hits title+tags, outranks the body-only hit.
	if got[0].ArticleID != 1 {
		t.Errorf("top result = %d, want 1", got[0].ArticleID)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	s := seeded()
	if got, _ := s.Search("   ", 5); got != nil {
		t.Errorf("blank query should return nothing, got %d", len(got))
	}
	if got, _ := s.Search("wheat", 0); got != nil {
		t.Errorf("k=0 should return nothing, got %d", len(got))
	}
}

func TestSuggestReturnsRefs(t *testing.T) {
	s := seeded()
	refs, err := s.Suggest("rice", 3)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(refs) != 1 || refs[0].Title != "Rice paddy management" {
		t.Fatalf("refs = %+v", refs)
	}
}

func TestIngestURLExtractsMainContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Pest Guide</title></head><body>
			<nav>skip this</nav>
			<main><h1>Aphids</h1><p>Spray neem oil weekly.</p></main>
		</body></html>`))
	}))
	defer srv.Close()

	s := seeded()
	a, err := s.IngestURL(srv.URL, "pests")
	if err != nil {
		t.Fatalf("ingest url: %v", err)
	}
	if a.Title != "Pest Guide" {
		t.Errorf("title = %q", a.Title)
	}
	if !strings.Contains(a.Text, "neem oil") {
		t.Errorf("text missing main content: %q", a.Text)
	}
	if strings.Contains(a.Text, "skip this") {
		t.Errorf("nav content leaked into text: %q", a.Text)
	}
}

func TestIngestURLRejectsBinary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-"))
	}))
	defer srv.Close()

	if _, err := seeded().IngestURL(srv.URL, ""); err == nil {
		t.Error("expected unsupported content-type error")
	}
}
