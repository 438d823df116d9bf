package homepage

// DefaultConfig is the compiled-in homepage document served when no admin
// has published a version yet. Readers default missing fields instead of
// migrating, so additions here stay backward-compatible.
const DefaultConfig = `{
  "hero": {
    "title": "Cultivate Brilliance — Grow Smarter, Harvest Better",
    "subtitle": "AI-guided recommendations • Market connect • Farm to table",
    "ctaPrimary": {"label": "Explore Crops", "href": "/crops"},
    "ctaSecondary": {"label": "Sell Now", "href": "/marketplace"}
  },
  "advisories": [
    {
      "title": "Late blight alert for potatoes",
      "summary": "High humidity increases risk of late blight. Apply preventive fungicides and ensure proper drainage."
    },
    {
      "title": "Integrated pest management for aphids",
      "summary": "Aphid populations rising. Consider beneficial insects and neem-based sprays before chemical intervention."
    },
    {
      "title": "Water conservation techniques",
      "summary": "Implement drip irrigation and mulching to reduce water usage by up to 40% during dry season."
    }
  ],
  "theme": {
    "primary": "#6B21A8",
    "accent": "#F97316",
    "muted": "#F8FAFC"
  }
}`
