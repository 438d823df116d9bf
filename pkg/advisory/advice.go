package advisory

import "strings"

// stageAdviceMap holds crop-specific tips per stage plus a stage-generic
// default. Unknown stage/crop pairs degrade to the default, then to nothing.
var stageAdviceMap = map[string]map[string]string{
	"Sowing": {
		"default": "Ensure proper seed depth and spacing. Keep soil consistently moist for germination.",
		"Wheat":   "Sow at 2-3 cm depth. Maintain soil moisture at 70-80% for optimal germination.",
		"Rice":    "Ensure field is properly leveled and flooded. Maintain 5-7 cm water depth.",
		"Corn":    "Plant at 4-5 cm depth. Ensure soil temperature is above 10°C for good germination.",
	},
	"Germination": {
		"default": "Maintain consistent moisture. Protect seedlings from extreme weather.",
		"Wheat":   "Monitor for damping-off disease. Ensure adequate drainage.",
		"Rice":    "Maintain shallow water depth. Watch for snail damage.",
		"Corn":    "Protect from birds. Monitor soil moisture closely.",
	},
	"Vegetative": {
		"default": "Apply nitrogen-rich fertilizer. Monitor for pest activity.",
		"Wheat":   "Apply first nitrogen dose. Monitor for aphids and rust.",
		"Rice":    "Apply urea in split doses. Control weeds and maintain water level.",
		"Corn":    "Side-dress with nitrogen. Monitor for corn borer.",
	},
	"Flowering": {
		"default": "Ensure adequate water supply. Avoid stress during this critical period.",
		"Wheat":   "Maintain soil moisture. Monitor for head blight.",
		"Rice":    "Maintain 5-10 cm water depth. Watch for blast disease.",
		"Corn":    "Ensure consistent moisture. Monitor for corn earworm.",
	},
	"Harvest": {
		"default": "Monitor crop maturity. Plan harvest timing to optimize yield and quality.",
		"Wheat":   "Harvest when moisture content is 12-14%. Check grain hardness.",
		"Rice":    "Harvest when 80-85% of grains are golden yellow. Avoid over-maturity.",
		"Corn":    "Harvest when kernel moisture is 20-25%. Check kernel milk line.",
	},
}

func stageAdvice(stage, crop string) string {
	byCrop, ok := stageAdviceMap[stage]
	if !ok {
		return ""
	}
	if tip, ok := byCrop[crop]; ok {
		return tip
	}
	return byCrop["default"]
}

// QuickAdvisory answers a fixed set of known issues without a full context.
func QuickAdvisory(issue string) Result {
	switch issue {
	case "low_moisture":
		return Result{"Increase irrigation frequency. Consider drip irrigation for water efficiency.", 0.90, RiskMedium}
	case "high_moisture":
		return Result{"Reduce irrigation. Improve drainage to prevent root rot.", 0.88, RiskMedium}
	case "pest_detected":
		return Result{"Identify pest species. Apply appropriate organic or chemical control. Monitor daily.", 0.85, RiskHigh}
	case "disease_suspected":
		return Result{"Isolate affected area. Collect samples for lab testing. Apply preventive fungicide if needed.", 0.82, RiskHigh}
	case "nutrient_deficiency":
		return Result{"Conduct soil test. Apply balanced fertilizer based on test results.", 0.87, RiskMedium}
	default:
		return Result{"Monitor the situation closely. Consult with agricultural expert if issue persists.", 0.70, RiskLow}
	}
}

var diarySuggestions = []struct {
	keywords    []string
	suggestions []string
}{
	{[]string{"pest", "insect", "aphid"}, []string{
		"Consider applying neem oil or insecticidal soap.",
		"Monitor daily and document pest population changes.",
	}},
	{[]string{"yellow", "wilting"}, []string{
		"Check soil moisture and drainage.",
		"Inspect for root rot or nutrient deficiency.",
	}},
	{[]string{"disease", "fungus", "mold"}, []string{
		"Remove affected plant parts.",
		"Improve air circulation and reduce humidity.",
		"Consider applying organic fungicide.",
	}},
	{[]string{"fertilizer", "compost"}, []string{
		"Monitor plant response over next 7-10 days.",
		"Avoid over-application to prevent nutrient burn.",
	}},
}

// AnalyzeDiaryEntry scans an entry's text and suggests follow-up actions.
func AnalyzeDiaryEntry(content string) ([]string, float64) {
	lower := strings.ToLower(content)
	var out []string
	for _, group := range diarySuggestions {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				out = append(out, group.suggestions...)
				break
			}
		}
	}
	if len(out) == 0 {
		return []string{"Entry logged. Continue monitoring."}, 0.60
	}
	return out, 0.80
}
