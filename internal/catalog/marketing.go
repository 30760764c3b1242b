package catalog

type TemplateStructure struct {
	Title            string   `json:"title"`
	ValueProposition string   `json:"value_proposition"`
	Benefits         []string `json:"benefits"`
	LandingPage      string   `json:"landing_page"`
	Email            string   `json:"email"`
}

type OfferTemplate struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Structure   TemplateStructure `json:"structure"`
	BestFor     []string          `json:"best_for"`
}

// OfferTemplatesNote accompanies the offer template listing.
const OfferTemplatesNote = "These templates can be used as a starting point for automatic offer generation"

// OfferTemplates returns the offer skeletons keyed by template id.
func OfferTemplates() map[string]OfferTemplate {
	return map[string]OfferTemplate{
		"saas_launch": {
			Name:        "SaaS Launch Template",
			Description: "Template for launching a SaaS product",
			Structure: TemplateStructure{
				Title:            "Hook + Benefit + Urgency",
				ValueProposition: "Problem + Solution + Outcome",
				Benefits:         []string{"Quantified benefit 1", "Quantified benefit 2", "Quantified benefit 3"},
				LandingPage:      "Problem-focused + Social proof + Clear CTA",
				Email:            "Welcome + Value + Next steps",
			},
			BestFor: []string{"SaaS products", "Software tools", "Digital platforms"},
		},
		"info_product": {
			Name:        "Information Product Template",
			Description: "Template for information products",
			Structure: TemplateStructure{
				Title:            "Transformation + Specific outcome",
				ValueProposition: "Current state + Desired state + How",
				Benefits:         []string{"Specific result 1", "Specific result 2", "Specific result 3"},
				LandingPage:      "Story + Authority + Guarantee + CTA",
				Email:            "Personal story + Value preview + Purchase link",
			},
			BestFor: []string{"Online courses", "Ebooks", "Video tutorials", "Coaching programs"},
		},
		"service_offer": {
			Name:        "Service Offer Template",
			Description: "Template for service offers",
			Structure: TemplateStructure{
				Title:            "Outcome + Timeframe + Guarantee",
				ValueProposition: "Challenge + Expertise + Result",
				Benefits:         []string{"Deliverable 1", "Deliverable 2", "Deliverable 3"},
				LandingPage:      "Case study + Process + Investment + CTA",
				Email:            "Consultation offer + Portfolio + Next steps",
			},
			BestFor: []string{"Consulting", "Agency services", "Custom development", "Coaching"},
		},
	}
}

type CharacterLimits struct {
	Headline    any `json:"headline"`
	Description any `json:"description"`
	CTA         any `json:"cta"`
}

type AdPlatform struct {
	Name            string          `json:"name"`
	AdTypes         []string        `json:"ad_types"`
	CharacterLimits CharacterLimits `json:"character_limits"`
	BestFor         []string        `json:"best_for"`
	BudgetRange     string          `json:"budget_range"`
}

// AdPlatforms returns the supported ad platforms keyed by request key.
func AdPlatforms() map[string]AdPlatform {
	return map[string]AdPlatform{
		"facebook": {
			Name:            "Facebook & Instagram",
			AdTypes:         []string{"Feed", "Stories", "Reels", "Carousel"},
			CharacterLimits: CharacterLimits{40, 125, 20},
			BestFor:         []string{"B2C", "E-commerce", "Lead generation"},
			BudgetRange:     "$5-500/day",
		},
		"google": {
			Name:            "Google Ads",
			AdTypes:         []string{"Search", "Display", "Video", "Shopping"},
			CharacterLimits: CharacterLimits{30, 90, 25},
			BestFor:         []string{"B2B", "High-intent traffic", "Lead generation"},
			BudgetRange:     "$10-1000/day",
		},
		"linkedin": {
			Name:            "LinkedIn Ads",
			AdTypes:         []string{"Sponsored Content", "Message Ads", "Dynamic Ads"},
			CharacterLimits: CharacterLimits{70, 600, 25},
			BestFor:         []string{"B2B", "Professional services", "Recruitment"},
			BudgetRange:     "$20-2000/day",
		},
		"twitter": {
			Name:            "Twitter/X Ads",
			AdTypes:         []string{"Promoted Tweets", "Promoted Accounts", "Promoted Trends"},
			CharacterLimits: CharacterLimits{280, "N/A", 280},
			BestFor:         []string{"Real-time engagement", "News", "Community building"},
			BudgetRange:     "$10-500/day",
		},
		"tiktok": {
			Name:            "TikTok Ads",
			AdTypes:         []string{"In-Feed", "Brand Takeover", "Hashtag Challenge"},
			CharacterLimits: CharacterLimits{100, 220, 30},
			BestFor:         []string{"Gen Z", "Viral content", "Brand awareness"},
			BudgetRange:     "$20-1000/day",
		},
	}
}

// PlatformRecommendations lists suggested platform keys per audience.
func PlatformRecommendations() map[string][]string {
	return map[string][]string{
		"b2b":       {"linkedin", "google"},
		"b2c":       {"facebook", "tiktok", "twitter"},
		"ecommerce": {"facebook", "google"},
		"services":  {"linkedin", "google", "facebook"},
	}
}
