package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest marks client input that fails validation.
var ErrInvalidRequest = errors.New("invalid request")

const (
	DefaultTone        = "professional"
	DefaultBudgetRange = "medium"
	RevenueAny         = "any"
)

// SourceToggles selects which illustrative external-source blocks are
// attached to a topic search.
type SourceToggles struct {
	GoogleTrends bool
	Reddit       bool
	SERP         bool
}

// TopicSearchRequest is the JSON body for POST /api/topics/search.
//
// include_trends used to switch every external block at once. The three
// per-source flags override it individually and default to its value.
type TopicSearchRequest struct {
	Topic               string `json:"topic"`
	IncludeTrends       *bool  `json:"include_trends,omitempty"`
	IncludeCompetition  *bool  `json:"include_competition,omitempty"`
	IncludeGoogleTrends *bool  `json:"include_google_trends,omitempty"`
	IncludeReddit       *bool  `json:"include_reddit,omitempty"`
	IncludeSERP         *bool  `json:"include_serp,omitempty"`
}

// Sources resolves the per-source toggles.
func (r TopicSearchRequest) Sources() SourceToggles {
	base := boolOr(r.IncludeTrends, true)
	return SourceToggles{
		GoogleTrends: boolOr(r.IncludeGoogleTrends, base),
		Reddit:       boolOr(r.IncludeReddit, base),
		SERP:         boolOr(r.IncludeSERP, base),
	}
}

// Parameters echoes the request flags back to the client.
func (r TopicSearchRequest) Parameters() map[string]any {
	s := r.Sources()
	return map[string]any{
		"include_trends":        boolOr(r.IncludeTrends, true),
		"include_competition":   boolOr(r.IncludeCompetition, true),
		"include_google_trends": s.GoogleTrends,
		"include_reddit":        s.Reddit,
		"include_serp":          s.SERP,
	}
}

// ProductSearchRequest is the JSON body for POST /api/products/search.
type ProductSearchRequest struct {
	Topic            string   `json:"topic"`
	Trends           []string `json:"trends"`
	ProductTypes     []string `json:"product_types"`
	MinDifficulty    *int     `json:"min_difficulty,omitempty"`
	MaxDifficulty    *int     `json:"max_difficulty,omitempty"`
	RevenuePotential string   `json:"revenue_potential"`
}

// Normalize applies defaults and validates the search bounds.
func (r *ProductSearchRequest) Normalize() error {
	topic, err := ValidateTopic(r.Topic)
	if err != nil {
		return err
	}
	r.Topic = topic
	if r.Trends == nil {
		r.Trends = []string{}
	}
	if r.ProductTypes == nil {
		r.ProductTypes = append([]string(nil), ProductTypes...)
	}
	if r.MinDifficulty == nil {
		r.MinDifficulty = IntPtr(1)
	}
	if r.MaxDifficulty == nil {
		r.MaxDifficulty = IntPtr(10)
	}
	if r.RevenuePotential == "" {
		r.RevenuePotential = RevenueAny
	}
	for _, d := range []int{*r.MinDifficulty, *r.MaxDifficulty} {
		if d < 1 || d > 10 {
			return fmt.Errorf("%w: difficulty bounds must be between 1 and 10", ErrInvalidRequest)
		}
	}
	return nil
}

// GenerateOfferRequest is the JSON body for POST /api/generate/offer.
type GenerateOfferRequest struct {
	Topic                string  `json:"topic"`
	Product              Product `json:"product"`
	TargetAudience       *string `json:"target_audience"`
	Tone                 string  `json:"tone"`
	IncludeLandingPage   *bool   `json:"include_landing_page,omitempty"`
	IncludeEmailSequence *bool   `json:"include_email_sequence,omitempty"`
}

// Normalize applies defaults and validates the topic.
func (r *GenerateOfferRequest) Normalize() error {
	topic, err := ValidateTopic(r.Topic)
	if err != nil {
		return err
	}
	r.Topic = topic
	if r.Tone == "" {
		r.Tone = DefaultTone
	}
	if r.IncludeLandingPage == nil {
		r.IncludeLandingPage = BoolPtr(true)
	}
	if r.IncludeEmailSequence == nil {
		r.IncludeEmailSequence = BoolPtr(true)
	}
	return nil
}

// GenerateAdsRequest is the JSON body for POST /api/generate/ads.
type GenerateAdsRequest struct {
	Topic          string   `json:"topic"`
	Offer          Offer    `json:"offer"`
	Platforms      []string `json:"platforms"`
	BudgetRange    string   `json:"budget_range"`
	TargetAudience *string  `json:"target_audience"`
}

// Normalize applies defaults and validates the topic.
func (r *GenerateAdsRequest) Normalize() error {
	topic, err := ValidateTopic(r.Topic)
	if err != nil {
		return err
	}
	r.Topic = topic
	if r.Platforms == nil {
		r.Platforms = append([]string(nil), DefaultPlatforms...)
	}
	if r.BudgetRange == "" {
		r.BudgetRange = DefaultBudgetRange
	}
	return nil
}

// SplitCSV splits a comma-separated query value, dropping blanks.
func SplitCSV(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// BoolPtr is a helper for optional boolean fields.
func BoolPtr(b bool) *bool { return &b }

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
