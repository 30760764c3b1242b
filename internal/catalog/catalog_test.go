package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush/idea-to-launch/backend/internal/models"
)

func TestTrendingTopics_Limit(t *testing.T) {
	got := TrendingTopics(3)
	require.Len(t, got, 3)
	assert.Equal(t, "AI Content Creation", got[0].Topic)
	assert.Equal(t, "Remote Work Tools", got[1].Topic)
	assert.Equal(t, "Sustainable Tech", got[2].Topic)

	assert.Len(t, TrendingTopics(50), 5)
	assert.Empty(t, TrendingTopics(0))
}

func TestTrendingTopics_ReturnsCopy(t *testing.T) {
	got := TrendingTopics(1)
	got[0].Topic = "changed"
	assert.Equal(t, "AI Content Creation", TrendingTopics(1)[0].Topic)
}

func TestTrendingProducts(t *testing.T) {
	assert.Len(t, TrendingProducts("", 10), 5)

	saas := TrendingProducts(models.ProductSaaS, 10)
	require.Len(t, saas, 2)
	for _, p := range saas {
		assert.Equal(t, models.ProductSaaS, p.Type)
	}

	assert.Len(t, TrendingProducts(models.ProductInfo, 1), 1)
	assert.Empty(t, TrendingProducts("hardware", 10))
}

func TestCategoriesCoverEveryProductType(t *testing.T) {
	cats := Categories()
	for _, typ := range models.ProductTypes {
		assert.Contains(t, cats, typ)
	}
}

func TestAdPlatformsMatchRequestKeys(t *testing.T) {
	platforms := AdPlatforms()
	for _, key := range models.DefaultPlatforms {
		assert.Contains(t, platforms, key)
	}
	for _, keys := range PlatformRecommendations() {
		for _, k := range keys {
			assert.Contains(t, platforms, k)
		}
	}
}

func TestExternalData_Toggles(t *testing.T) {
	all := ExternalData("yoga", models.SourceToggles{GoogleTrends: true, Reddit: true, SERP: true})
	assert.Len(t, all, 3)

	only := ExternalData("yoga", models.SourceToggles{Reddit: true})
	require.Len(t, only, 1)
	r := only["reddit"].(map[string]any)
	subs := r["subreddits"].([]map[string]any)
	assert.Equal(t, "r/yoga", subs[0]["name"])

	assert.Empty(t, ExternalData("yoga", models.SourceToggles{}))
}

func TestExternalData_MentionsTopic(t *testing.T) {
	serp := ExternalData("chess", models.SourceToggles{SERP: true})["serp_api"].(map[string]any)
	assert.Contains(t, serp["featured_snippets"], "What is chess?")
}
