package advisory

import (
	"fmt"
	"math"
	"strings"

	"agrisense/entities"
)

const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

var riskRank = map[string]int{RiskLow: 0, RiskMedium: 1, RiskHigh: 2}

type Weather struct {
	Precipitation float64 `json:"precipitation"` // mm
	WindKPH       float64 `json:"wind_kph"`
	Condition     string  `json:"condition"`
}

type Sensors struct {
	SoilMoisture *float64 `json:"soil_moisture"`
	Temperature  *float64 `json:"temperature"`
	Humidity     *float64 `json:"humidity"`
}

// Context is the advisory input snapshot. Everything except Stage is
// optional; rules whose inputs are absent simply do not fire.
type Context struct {
	Crop       string                `json:"crop"`
	Stage      string                `json:"stage"`
	Weather    Weather               `json:"weather"`
	Sensors    Sensors               `json:"sensors"`
	DiaryNotes []entities.DiaryEntry `json:"diaryNotes"`
}

type Result struct {
	Recommendation string  `json:"recommendation"`
	Confidence     float64 `json:"confidence"`
	RiskLevel      string  `json:"riskLevel"`
}

// accumulator collects rule effects: message list in rule order, max
// confidence, highest risk. Risk never downgrades.
type accumulator struct {
	messages   []string
	confidence float64
	risk       string
}

func (a *accumulator) say(msg string) { a.messages = append(a.messages, msg) }

func (a *accumulator) raise(conf float64) {
	if conf > a.confidence {
		a.confidence = conf
	}
}

func (a *accumulator) escalate(risk string) {
	if riskRank[risk] > riskRank[a.risk] {
		a.risk = risk
	}
}

type rule struct {
	name  string
	apply func(Context, *accumulator)
}

// Rules fire independently; only the concatenation order of messages depends
// on their position here.
var rules = []rule{
	{"soil-moisture", func(c Context, a *accumulator) {
		m := c.Sensors.SoilMoisture
		if m == nil {
			return
		}
		switch {
		case *m < 40:
			a.say("Soil moisture is critically low. Increase irrigation frequency immediately.")
			a.escalate(RiskHigh)
			a.raise(0.92)
		case *m < 60:
			a.say("Soil moisture is below optimal. Consider increasing irrigation by 15-20%.")
			a.escalate(RiskMedium)
			a.raise(0.88)
		case *m > 85:
			a.say("Soil moisture is very high. Reduce irrigation to prevent waterlogging.")
			a.escalate(RiskMedium)
			a.raise(0.85)
		}
	}},
	{"temperature", func(c Context, a *accumulator) {
		t := c.Sensors.Temperature
		if t == nil {
			return
		}
		if *t > 35 {
			a.say("High temperature detected. Ensure adequate water supply and consider shade netting.")
			a.escalate(RiskMedium)
			a.raise(0.87)
		} else if *t < 10 {
			a.say("Low temperature may stress plants. Monitor for frost damage.")
			a.escalate(RiskMedium)
			a.raise(0.82)
		}
	}},
	{"humidity", func(c Context, a *accumulator) {
		h := c.Sensors.Humidity
		if h == nil || *h <= 85 {
			return
		}
		a.say("High humidity increases fungal disease risk. Improve air circulation and monitor for signs of disease.")
		a.escalate(RiskMedium)
		a.raise(0.84)
	}},
	{"stage-advice", func(c Context, a *accumulator) {
		if tip := stageAdvice(c.Stage, c.Crop); tip != "" {
			a.say(tip)
			a.raise(0.80)
		}
	}},
	{"diary-incidents", func(c Context, a *accumulator) {
		if !hasPestIncident(c.DiaryNotes) {
			return
		}
		a.say("Recent pest/disease incidents detected. Continue monitoring and consider preventive organic treatments.")
		a.escalate(RiskMedium)
		a.raise(0.86)
	}},
	{"precipitation", func(c Context, a *accumulator) {
		if c.Weather.Precipitation <= 30 {
			return
		}
		a.say("Heavy rainfall expected. Ensure proper drainage to prevent waterlogging.")
		a.escalate(RiskMedium)
	}},
}

var incidentKeywords = []string{"pest", "disease", "aphid", "fungus"}

func hasPestIncident(notes []entities.DiaryEntry) bool {
	for _, n := range notes {
		if n.Type != "incident" {
			continue
		}
		content := strings.ToLower(n.Content)
		for _, kw := range incidentKeywords {
			if strings.Contains(content, kw) {
				return true
			}
		}
	}
	return false
}

// Evaluate runs the rule table over the context. Deterministic; never fails.
func Evaluate(c Context) Result {
	if c.Stage == "" {
		c.Stage = "Vegetative"
	}
	acc := accumulator{confidence: 0.75, risk: RiskLow}
	for _, r := range rules {
		r.apply(c, &acc)
	}
	if len(acc.messages) == 0 {
		acc.say(fmt.Sprintf("Crop health appears normal for %s stage. Continue current management practices.", c.Stage))
	}
	return Result{
		Recommendation: strings.Join(acc.messages, " "),
		Confidence:     round2(acc.confidence),
		RiskLevel:      acc.risk,
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
