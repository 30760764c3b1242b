package catalog

import (
	"fmt"

	"github.com/ayush/idea-to-launch/backend/internal/models"
)

// ExternalData builds the illustrative google_trends, reddit and serp_api
// blocks for topic. The figures are fixed placeholders; no external service
// is queried.
func ExternalData(topic string, sources models.SourceToggles) map[string]any {
	data := map[string]any{}
	if sources.GoogleTrends {
		data["google_trends"] = googleTrends(topic)
	}
	if sources.Reddit {
		data["reddit"] = reddit(topic)
	}
	if sources.SERP {
		data["serp_api"] = serp(topic)
	}
	return data
}

func googleTrends(topic string) map[string]any {
	return map[string]any{
		"interest_over_time": []map[string]any{
			{"date": "2024-01-01", "value": 75},
			{"date": "2024-01-02", "value": 82},
			{"date": "2024-01-03", "value": 68},
		},
		"related_queries": []string{
			fmt.Sprintf("%s tutorial", topic),
			fmt.Sprintf("%s course", topic),
			fmt.Sprintf("%s software", topic),
		},
		"related_topics": []string{
			fmt.Sprintf("advanced %s", topic),
			fmt.Sprintf("%s tools", topic),
			fmt.Sprintf("%s training", topic),
		},
		"geo_interest": map[string]int{"US": 85, "UK": 72, "CA": 68},
	}
}

func reddit(topic string) map[string]any {
	main, pro := "r/"+topic, "r/"+topic+"pro"
	return map[string]any{
		"subreddits": []map[string]any{
			{"name": main, "subscribers": 15000, "posts_per_day": 25, "engagement_rate": 0.15},
			{"name": pro, "subscribers": 8500, "posts_per_day": 12, "engagement_rate": 0.22},
		},
		"trending_posts": []map[string]any{
			{"title": fmt.Sprintf("Best %s tools for 2024", topic), "score": 245, "comments": 89, "subreddit": main},
			{"title": fmt.Sprintf("How to master %s", topic), "score": 189, "comments": 67, "subreddit": pro},
		},
		"sentiment_analysis": map[string]float64{"positive": 0.65, "neutral": 0.25, "negative": 0.10},
	}
}

func serp(topic string) map[string]any {
	return map[string]any{
		"search_volume":      12500,
		"keyword_difficulty": 45,
		"cpc":                2.35,
		"competitors": []map[string]any{
			{"domain": fmt.Sprintf("%s-expert.com", topic), "traffic": 45000, "rank": 1},
			{"domain": fmt.Sprintf("learn-%s.com", topic), "traffic": 32000, "rank": 2},
		},
		"featured_snippets": []string{
			fmt.Sprintf("What is %s?", topic),
			fmt.Sprintf("How to use %s", topic),
			fmt.Sprintf("%s best practices", topic),
		},
	}
}
