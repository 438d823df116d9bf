package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agrisense/pkg/advisory"
)

func moisture(v float64) *float64 { return &v }

func TestMockClientEvaluatesRules(t *testing.T) {
	c := &mockClient{delay: 0}
	adv, err := c.Advise(context.Background(), advisory.Context{
		Stage:   "Vegetative",
		Sensors: advisory.Sensors{SoilMoisture: moisture(30)},
	})
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if adv.Source != mockSource {
		t.Errorf("source = %q, want %q", adv.Source, mockSource)
	}
	if adv.RiskLevel != advisory.RiskHigh {
		t.Errorf("risk = %s, want High", adv.RiskLevel)
	}
	if adv.Timestamp == "" {
		t.Error("expected timestamp")
	}
}

func TestMockClientHonorsCancellation(t *testing.T) {
	c := &mockClient{delay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Advise(ctx, advisory.Context{}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestOllamaClientParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"response":"{\"recommendation\":\"Irrigate at dawn.\",\"confidence\":0.9,\"riskLevel\":\"Medium\"}"}`))
	}))
	defer srv.Close()

	c := NewOllama(srv.URL, "llama3")
	adv, err := c.Advise(context.Background(), advisory.Context{Stage: "Vegetative"})
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if adv.Recommendation != "Irrigate at dawn." || adv.Confidence != 0.9 {
		t.Errorf("unexpected result: %+v", adv.Result)
	}
	if adv.Source != "Ollama (llama3)" {
		t.Errorf("source = %q", adv.Source)
	}
}

func TestOllamaClientNormalizesBadRiskLevel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":"{\"recommendation\":\"ok\",\"confidence\":0.8,\"riskLevel\":\"SEVERE\"}"}`))
	}))
	defer srv.Close()

	adv, _ := NewOllama(srv.URL, "llama3").Advise(context.Background(), advisory.Context{})
	if adv.RiskLevel != advisory.RiskMedium {
		t.Errorf("risk = %s, want Medium after normalization", adv.RiskLevel)
	}
}

func TestOllamaClientFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	adv, err := NewOllama(srv.URL, "llama3").Advise(context.Background(), advisory.Context{
		Sensors: advisory.Sensors{SoilMoisture: moisture(30)},
	})
	if err != nil {
		t.Fatalf("fallback should not error: %v", err)
	}
	if adv.Source != "Rule Engine (Ollama unavailable)" {
		t.Errorf("source = %q", adv.Source)
	}
	if adv.RiskLevel != advisory.RiskHigh {
		t.Errorf("fallback should run the rule engine, risk = %s", adv.RiskLevel)
	}
}

func TestOllamaClientFallsBackOnGarbageResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":"not json at all"}`))
	}))
	defer srv.Close()

	adv, err := NewOllama(srv.URL, "llama3").Advise(context.Background(), advisory.Context{})
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if !strings.Contains(adv.Source, "Rule Engine") {
		t.Errorf("source = %q, want rule engine fallback", adv.Source)
	}
}

func TestOllamaClientFallsBackWhenUnreachable(t *testing.T) {
	adv, err := NewOllama("http://127.0.0.1:1", "llama3").Advise(context.Background(), advisory.Context{})
	if err != nil {
		t.Fatalf("advise: %v", err)
	}
	if !strings.Contains(adv.Source, "Rule Engine") {
		t.Errorf("source = %q, want rule engine fallback", adv.Source)
	}
}

func TestRenderAdvisoryPromptIncludesSignals(t *testing.T) {
	p := renderAdvisoryPrompt(advisory.Context{
		Crop:    "Wheat",
		Stage:   "Flowering",
		Sensors: advisory.Sensors{SoilMoisture: moisture(42)},
	})
	for _, want := range []string{"Wheat", "Flowering", "42.0"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
