package pipeline

import (
	"fmt"

	"github.com/ayush/idea-to-launch/backend/internal/models"
)

// The fallbacks below are returned when a stage cannot produce valid output.
// They are pure functions of their inputs and satisfy the same validation as
// parsed output.

func FallbackTrends(topic string) models.TrendsAnalysis {
	return models.TrendsAnalysis{
		TrendingTopics: []string{
			fmt.Sprintf("Trend 1 for %s", topic),
			fmt.Sprintf("Trend 2 for %s", topic),
		},
		MarketOpportunities: []string{
			fmt.Sprintf("Opportunity 1 in %s", topic),
			fmt.Sprintf("Opportunity 2 in %s", topic),
		},
		Challenges:           []string{"Competition", "Technical difficulty"},
		CompetitionLevel:     models.LevelMedium,
		TechnicalFeasibility: 6,
		MarketPotential:      models.LevelMedium,
	}
}

func FallbackProducts(topic string) []models.Product {
	return []models.Product{
		{
			Name:             fmt.Sprintf("%s Pro SaaS", topic),
			Type:             models.ProductSaaS,
			Description:      fmt.Sprintf("SaaS solution for %s", topic),
			SuggestedPrice:   "$29/month",
			Difficulty:       models.IntPtr(7),
			RevenuePotential: models.LevelHigh,
			Technologies:     []string{"React", "Node.js", "PostgreSQL"},
			DevelopmentTime:  "3-6 months",
			TargetAudience:   fmt.Sprintf("%s professionals", topic),
		},
		{
			Name:             fmt.Sprintf("%s Masterclass", topic),
			Type:             models.ProductInfo,
			Description:      fmt.Sprintf("Online course teaching %s from the ground up", topic),
			SuggestedPrice:   "$197",
			Difficulty:       models.IntPtr(4),
			RevenuePotential: models.LevelMedium,
			Technologies:     []string{"Video hosting", "Course platform"},
			DevelopmentTime:  "1-2 months",
			TargetAudience:   fmt.Sprintf("Beginners interested in %s", topic),
		},
		{
			Name:             fmt.Sprintf("%s Done-For-You Service", topic),
			Type:             models.ProductService,
			Description:      fmt.Sprintf("Hands-on %s service delivered by experts", topic),
			SuggestedPrice:   "$990/project",
			Difficulty:       models.IntPtr(5),
			RevenuePotential: models.LevelMedium,
			Technologies:     []string{"Automation tools", "CRM"},
			DevelopmentTime:  "1 month",
			TargetAudience:   fmt.Sprintf("Small businesses needing %s", topic),
		},
	}
}

func FallbackOffer(topic string, product models.Product) models.Offer {
	subject := topic
	if product.Name != "" {
		subject = product.Name
	}
	return models.Offer{
		Title:            fmt.Sprintf("Turn your %s into a success", topic),
		ValueProposition: fmt.Sprintf("A complete solution for %s", topic),
		Benefits: []string{
			"Save time from day one",
			"Proven step-by-step approach",
			"Results you can measure",
			"Support when you need it",
			"Start small and scale",
		},
		LandingPageText: fmt.Sprintf("Discover %s, the complete solution for %s...", subject, topic),
		WelcomeEmail: &models.Email{
			Subject: fmt.Sprintf("Welcome to %s", subject),
			Content: fmt.Sprintf("Thanks for joining %s. Here is how to get started with %s...", subject, topic),
		},
		CTAPrimary:  "Get started now",
		SEOKeywords: []string{topic, "solution", "digital"},
	}
}

// FallbackAds returns one ad per canonical platform so platform filtering
// still has something to keep.
func FallbackAds(topic string, offer models.Offer) []models.Ad {
	headline := fmt.Sprintf("Discover %s", topic)
	if offer.Title != "" {
		headline = offer.Title
	}
	description := fmt.Sprintf("A solution for %s", topic)
	if offer.ValueProposition != "" {
		description = offer.ValueProposition
	}

	budgets := []struct {
		platform string
		cta      string
		budget   string
	}{
		{models.PlatformFacebook, "Learn more", "$30/day"},
		{models.PlatformGoogleAds, "Get started", "$40/day"},
		{models.PlatformLinkedIn, "Request a demo", "$50/day"},
		{models.PlatformTwitter, "Learn more", "$20/day"},
		{models.PlatformTikTok, "Watch now", "$25/day"},
	}

	ads := make([]models.Ad, 0, len(budgets))
	for _, b := range budgets {
		ads = append(ads, models.Ad{
			Platform:        b.platform,
			Headline:        headline,
			Description:     description,
			CTA:             b.cta,
			Keywords:        []string{topic},
			TargetAudience:  fmt.Sprintf("People interested in %s", topic),
			SuggestedBudget: b.budget,
		})
	}
	return ads
}
