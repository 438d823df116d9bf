package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"agrisense/pkg/advisory"
)

type ollamaClient struct {
	endpoint string
	model    string
	httpc    *http.Client
}

// NewOllama talks to a local Ollama server. Any transport or parse failure
// degrades to the rule engine; advisory requests never fail outright.
func NewOllama(endpoint, model string) Client {
	return &ollamaClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *ollamaClient) Advise(ctx context.Context, req advisory.Context) (*Advisory, error) {
	type generateReq struct {
		Model  string `json:"model"`
		Prompt string `json:"prompt"`
		Format string `json:"format"`
		Stream bool   `json:"stream"`
	}
	body, _ := json.Marshal(generateReq{
		Model:  c.model,
		Prompt: renderAdvisoryPrompt(req),
		Format: "json",
		Stream: false,
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return c.fallback(req), nil
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return c.fallback(req), nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.fallback(req), nil
	}

	var out struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Response == "" {
		return c.fallback(req), nil
	}

	var res advisory.Result
	if err := json.Unmarshal([]byte(out.Response), &res); err != nil || res.Recommendation == "" {
		return c.fallback(req), nil
	}
	if _, ok := map[string]bool{advisory.RiskLow: true, advisory.RiskMedium: true, advisory.RiskHigh: true}[res.RiskLevel]; !ok {
		res.RiskLevel = advisory.RiskMedium
	}
	return &Advisory{
		Result:    res,
		Timestamp: time.Now().Format(time.RFC3339),
		Source:    "Ollama (" + c.model + ")",
	}, nil
}

func (c *ollamaClient) fallback(req advisory.Context) *Advisory {
	return &Advisory{
		Result:    advisory.Evaluate(req),
		Timestamp: time.Now().Format(time.RFC3339),
		Source:    "Rule Engine (Ollama unavailable)",
	}
}

func renderAdvisoryPrompt(req advisory.Context) string {
	var sb strings.Builder
	sb.WriteString("You are an agronomy assistant. Reply ONLY valid JSON of the form ")
	sb.WriteString(`{"recommendation":"...","confidence":0.85,"riskLevel":"Low|Medium|High"}.` + "\n\n")
	fmt.Fprintf(&sb, "Crop: %s\nStage: %s\n", req.Crop, req.Stage)
	if req.Sensors.SoilMoisture != nil {
		fmt.Fprintf(&sb, "Soil moisture: %.1f%%\n", *req.Sensors.SoilMoisture)
	}
	if req.Sensors.Temperature != nil {
		fmt.Fprintf(&sb, "Temperature: %.1f C\n", *req.Sensors.Temperature)
	}
	if req.Sensors.Humidity != nil {
		fmt.Fprintf(&sb, "Humidity: %.1f%%\n", *req.Sensors.Humidity)
	}
	if req.Weather.Precipitation > 0 {
		fmt.Fprintf(&sb, "Expected precipitation: %.1f mm\n", req.Weather.Precipitation)
	}
	for _, n := range req.DiaryNotes {
		fmt.Fprintf(&sb, "Diary (%s): %s\n", n.Type, n.Content)
	}
	sb.WriteString("\nGive one concise, actionable recommendation.")
	return sb.String()
}
