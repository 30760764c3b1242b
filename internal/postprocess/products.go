// Package postprocess filters and enriches stage output before it is
// returned to a client. Every function here is pure.
package postprocess

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ayush/idea-to-launch/backend/internal/models"
)

// ProductCriteria selects products from a generated list. An empty Types
// list places no restriction on the product type.
type ProductCriteria struct {
	Types            []string
	MinDifficulty    int
	MaxDifficulty    int
	RevenuePotential string
}

// AllProducts is the criteria that keeps every product.
func AllProducts() ProductCriteria {
	return ProductCriteria{
		Types:            append([]string(nil), models.ProductTypes...),
		MinDifficulty:    1,
		MaxDifficulty:    10,
		RevenuePotential: models.RevenueAny,
	}
}

// Match reports whether p satisfies c. Missing difficulty counts as 5 and
// missing revenue potential as medium.
func (c ProductCriteria) Match(p models.Product) bool {
	if len(c.Types) > 0 && !slices.Contains(c.Types, p.Type) {
		return false
	}
	d := p.DifficultyOrDefault()
	if d < c.MinDifficulty || d > c.MaxDifficulty {
		return false
	}
	want := strings.ToLower(c.RevenuePotential)
	if want != "" && want != models.RevenueAny && p.RevenueOrDefault() != want {
		return false
	}
	return true
}

// FilterProducts keeps the products matching c, in their original order.
func FilterProducts(products []models.Product, c ProductCriteria) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if c.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// MarketResearch holds the lookup-table estimates for a product type.
type MarketResearch struct {
	CompetitorCount         string `json:"competitor_count"`
	MarketMaturity          string `json:"market_maturity"`
	CustomerAcquisitionCost string `json:"customer_acquisition_cost"`
}

// SuccessMetrics holds the estimates derived from difficulty and revenue.
type SuccessMetrics struct {
	BreakEvenTime      string `json:"break_even_time"`
	SuccessProbability string `json:"success_probability"`
	ScalabilityScore   string `json:"scalability_score"`
}

var marketTable = map[string]MarketResearch{
	models.ProductSaaS:    {"High (500+)", "Mature", "$50-200"},
	models.ProductInfo:    {"Medium (100-500)", "Growing", "$10-50"},
	models.ProductService: {"Low (10-100)", "Emerging", "$100-500"},
}

const unknownBand = "Unknown"

// MarketFor returns the market estimates for a product type.
func MarketFor(productType string) MarketResearch {
	if productType == "" {
		productType = models.ProductSaaS
	}
	if m, ok := marketTable[productType]; ok {
		return m
	}
	return MarketResearch{unknownBand, unknownBand, unknownBand}
}

// MetricsFor derives the success estimates for p.
func MetricsFor(p models.Product) SuccessMetrics {
	d, rev := p.DifficultyOrDefault(), p.RevenueOrDefault()

	var m SuccessMetrics
	switch {
	case rev == models.LevelHigh && d <= 6:
		m.BreakEvenTime = "3-6 months"
	case rev == models.LevelMedium:
		m.BreakEvenTime = "6-12 months"
	default:
		m.BreakEvenTime = "12+ months"
	}

	switch {
	case rev == models.LevelHigh && d <= 5:
		m.SuccessProbability = "High (70-80%)"
	case rev == models.LevelMedium && d <= 7:
		m.SuccessProbability = "Medium (50-70%)"
	default:
		m.SuccessProbability = "Low (20-50%)"
	}

	switch p.Type {
	case models.ProductSaaS, "":
		m.ScalabilityScore = "High (9/10)"
	case models.ProductInfo:
		m.ScalabilityScore = "Medium (6/10)"
	default:
		m.ScalabilityScore = "Low (4/10)"
	}
	return m
}

// Recommendations returns the generic advice for p within topic.
func Recommendations(p models.Product, topic string) []string {
	recs := []string{
		fmt.Sprintf("Focus on differentiation in the %s space", topic),
		"Build an MVP quickly to validate the market",
		"Invest in digital marketing from launch",
	}
	if p.DifficultyOrDefault() > 7 {
		recs = append(recs, "Consider a technical partnership")
	}
	if p.RevenueOrDefault() == models.LevelHigh {
		recs = append(recs, "Plan a significant marketing budget")
	}
	return recs
}

// EnrichProducts appends market_research, success_metrics and
// recommendations to each product. Generated fields are left as they are.
func EnrichProducts(products []models.Product, topic string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.With(map[string]any{
			"market_research": MarketFor(p.Type),
			"success_metrics": MetricsFor(p),
			"recommendations": Recommendations(p, topic),
		}))
	}
	return out
}
