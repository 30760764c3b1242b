package pipeline

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/ayush/idea-to-launch/backend/internal/models"
)

// PromptData carries whatever a stage's template needs. Only the fields for
// the stage being built are read.
type PromptData struct {
	Topic   string
	Trends  []string
	Product models.Product
	Offer   models.Offer
}

// DefaultTemplates are the stage prompts. Each one states the required
// fields, shows the exact JSON shape and lists the stage constraints.
var DefaultTemplates = map[Stage]string{
	StageTrends: `Analyze the current trends for the topic "{{.Topic}}" and provide:
1. Rising trends (3 to 5 items)
2. Market opportunities
3. Potential challenges
4. Competition level (low, medium or high)
5. Technical feasibility (an integer from 1 to 10)
6. Market potential (low, medium or high)

Respond with JSON only, using exactly this shape:
{
  "trending_topics": ["trend 1", "trend 2", "trend 3"],
  "market_opportunities": ["opportunity 1", "opportunity 2"],
  "challenges": ["challenge 1", "challenge 2"],
  "competition_level": "medium",
  "technical_feasibility": 8,
  "market_potential": "high"
}`,

	StageProducts: `Based on the topic "{{.Topic}}" and the trends "{{join .Trends ", "}}",
propose exactly 3 winning digital products, one of each type:
1. A SaaS product (type "saas")
2. An information product such as a course or ebook (type "info")
3. A digital service (type "service")

For each product provide: name, type, short description, suggested price,
creation difficulty (an integer from 1 to 10), revenue potential (low, medium
or high), required technologies, estimated development time and target audience.

Respond with JSON only, using exactly this shape:
{
  "products": [
    {
      "name": "Product name",
      "type": "saas",
      "description": "Short description",
      "suggested_price": "$99/month",
      "difficulty": 7,
      "revenue_potential": "high",
      "technologies": ["React", "Node.js", "PostgreSQL"],
      "development_time": "3-6 months",
      "target_audience": "Target audience"
    }
  ]
}`,

	StageOffer: `Create a complete marketing offer for the topic "{{.Topic}}" and this product:
Product: {{.Product.Name}} - {{.Product.Description}}

Generate:
1. A catchy title (60 characters maximum)
2. A core value proposition
3. Exactly 5 benefit bullet points
4. Landing page copy (300 to 500 words)
5. A welcome email for the onboarding sequence
6. A primary call to action
7. SEO keywords (5 to 8 keywords)

Respond with JSON only, using exactly this shape:
{
  "title": "Catchy title",
  "value_proposition": "Value proposition",
  "benefits": ["benefit 1", "benefit 2", "benefit 3", "benefit 4", "benefit 5"],
  "landing_page_text": "Full landing page copy...",
  "welcome_email": {
    "subject": "Email subject",
    "content": "Email body..."
  },
  "cta_primary": "Primary call to action",
  "seo_keywords": ["keyword 1", "keyword 2"]
}`,

	StageAds: `Create ad drafts for the topic "{{.Topic}}" and this offer:
Title: {{.Offer.Title}} - Promise: {{.Offer.ValueProposition}}

Write one ad for each of these 5 platforms, using these exact platform names:
1. "{{index .Platforms 0}}" (feed format)
2. "{{index .Platforms 1}}" (search)
3. "{{index .Platforms 2}}" (B2B)
4. "{{index .Platforms 3}}" (promoted post)
5. "{{index .Platforms 4}}" (short creative)

For each platform provide: headline, description text, call to action,
suggested keywords, target audience and a suggested daily budget written as
"$<amount>/day".

Respond with JSON only, using exactly this shape:
{
  "ads": [
    {
      "platform": "Facebook",
      "headline": "Ad headline",
      "description": "Ad description",
      "cta": "Call to action",
      "keywords": ["keyword 1", "keyword 2"],
      "target_audience": "Target audience",
      "suggested_budget": "$50/day"
    }
  ]
}`,
}

var promptPlatforms = []string{
	models.PlatformFacebook,
	models.PlatformGoogleAds,
	models.PlatformLinkedIn,
	models.PlatformTwitter,
	models.PlatformTikTok,
}

var promptFuncs = template.FuncMap{"join": strings.Join}

// PromptBuilder renders stage prompts from templates.
type PromptBuilder struct {
	templates map[Stage]*template.Template
}

// NewPromptBuilder parses DefaultTemplates with any overrides applied.
func NewPromptBuilder(overrides map[Stage]string) (*PromptBuilder, error) {
	b := &PromptBuilder{templates: make(map[Stage]*template.Template, len(Stages))}
	for _, stage := range Stages {
		text := DefaultTemplates[stage]
		if o, ok := overrides[stage]; ok {
			text = o
		}
		tmpl, err := template.New(string(stage)).Funcs(promptFuncs).Option("missingkey=zero").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("prompt template %s: %w", stage, err)
		}
		b.templates[stage] = tmpl
	}
	return b, nil
}

// Build renders the prompt for stage. It never validates its input; an
// error only comes from an unknown stage or an override template that cannot
// render the data it was given.
func (b *PromptBuilder) Build(stage Stage, data PromptData) (string, error) {
	tmpl, ok := b.templates[stage]
	if !ok {
		return "", fmt.Errorf("no prompt template for stage %q", stage)
	}

	var sb strings.Builder
	view := struct {
		PromptData
		Platforms []string
	}{data, promptPlatforms}
	if err := tmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("prompt template %s: %w", stage, err)
	}
	return sb.String(), nil
}
