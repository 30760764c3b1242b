// Package catalog serves the static reference data behind the listing
// endpoints. None of it is generated.
package catalog

import "github.com/ayush/idea-to-launch/backend/internal/models"

// LastUpdated is reported with every static listing.
const LastUpdated = "2024-01-01T00:00:00Z"

type TrendingTopic struct {
	Topic      string  `json:"topic"`
	TrendScore int     `json:"trend_score"`
	GrowthRate float64 `json:"growth_rate"`
	Category   string  `json:"category"`
}

var trendingTopics = []TrendingTopic{
	{"AI Content Creation", 95, 0.45, "Technology"},
	{"Remote Work Tools", 88, 0.32, "Business"},
	{"Sustainable Tech", 82, 0.28, "Environment"},
	{"No-Code Platforms", 78, 0.35, "Technology"},
	{"Digital Wellness", 75, 0.22, "Health"},
}

// TrendingTopics returns at most limit topics in their fixed order.
func TrendingTopics(limit int) []TrendingTopic {
	return head(trendingTopics, limit)
}

type TrendingProduct struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	Category        string `json:"category"`
	TrendScore      int    `json:"trend_score"`
	MarketSize      string `json:"market_size"`
	Competition     string `json:"competition"`
	MonthlySearches int    `json:"monthly_searches"`
}

var trendingProducts = []TrendingProduct{
	{"AI Content Generator Pro", models.ProductSaaS, "Content Creation", 95, "Large", "Medium", 45000},
	{"Remote Team Builder Course", models.ProductInfo, "Business Training", 88, "Medium", "Low", 12000},
	{"No-Code App Development Service", models.ProductService, "Development", 82, "Large", "Medium", 28000},
	{"Sustainable Business Analytics", models.ProductSaaS, "Analytics", 78, "Medium", "Low", 8500},
	{"Digital Wellness Coaching Program", models.ProductInfo, "Health & Wellness", 75, "Medium", "Medium", 15000},
}

// TrendingProducts returns at most limit products, restricted to one product
// type when productType is not empty.
func TrendingProducts(productType string, limit int) []TrendingProduct {
	out := make([]TrendingProduct, 0, len(trendingProducts))
	for _, p := range trendingProducts {
		if productType == "" || p.Type == productType {
			out = append(out, p)
		}
	}
	return head(out, limit)
}

type Category struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Examples        []string `json:"examples"`
	TypicalPricing  string   `json:"typical_pricing"`
	DevelopmentTime string   `json:"development_time"`
	RevenueModel    string   `json:"revenue_model"`
}

// Categories describes each product type.
func Categories() map[string]Category {
	return map[string]Category{
		models.ProductSaaS: {
			Name:            "Software as a Service",
			Description:     "Web applications and online software sold by recurring subscription",
			Examples:        []string{"CRM", "Project Management", "Analytics Tools"},
			TypicalPricing:  "$29-299/month",
			DevelopmentTime: "3-12 months",
			RevenueModel:    "Subscription",
		},
		models.ProductInfo: {
			Name:            "Information Products",
			Description:     "Courses, ebooks, guides and online training",
			Examples:        []string{"Online Courses", "Ebooks", "Video Tutorials"},
			TypicalPricing:  "$49-497",
			DevelopmentTime: "1-3 months",
			RevenueModel:    "One-time sale",
		},
		models.ProductService: {
			Name:            "Digital Services",
			Description:     "Automated or semi-automated services",
			Examples:        []string{"Consulting", "Automation", "Content Creation"},
			TypicalPricing:  "$500-5000/project",
			DevelopmentTime: "1-6 months",
			RevenueModel:    "Project-based",
		},
	}
}

func head[T any](items []T, limit int) []T {
	if limit < 0 {
		limit = 0
	}
	if limit < len(items) {
		items = items[:limit]
	}
	return append([]T(nil), items...)
}
