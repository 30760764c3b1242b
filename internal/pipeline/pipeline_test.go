package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush/idea-to-launch/backend/internal/llm"
	"github.com/ayush/idea-to-launch/backend/internal/logger"
	"github.com/ayush/idea-to-launch/backend/internal/models"
)

type scriptedCompleter struct {
	text string
	err  error

	mu       sync.Mutex
	requests []llm.Request
}

func (s *scriptedCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	return s.text, s.err
}

type outcome struct{ stage, outcome string }

type recordingRecorder struct {
	mu       sync.Mutex
	outcomes []outcome
}

func (r *recordingRecorder) ObserveStage(stage, out string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome{stage, out})
}

func newTestPipeline(t *testing.T, c llm.Completer) (*Pipeline, *recordingRecorder) {
	t.Helper()
	prompts, err := NewPromptBuilder(nil)
	require.NoError(t, err)
	rec := &recordingRecorder{}
	return New(c, prompts, logger.Discard(), rec), rec
}

const trendsJSON = `{
  "trending_topics": ["AI coaching", "wearables"],
  "market_opportunities": ["B2B wellness"],
  "challenges": ["retention"],
  "competition_level": "High",
  "technical_feasibility": 8,
  "market_potential": "high",
  "notes": "extra provider key"
}`

func TestAnalyzeTrends_Generated(t *testing.T) {
	c := &scriptedCompleter{text: trendsJSON}
	p, rec := newTestPipeline(t, c)

	ta := p.AnalyzeTrends(context.Background(), "fitness")

	assert.Equal(t, []string{"AI coaching", "wearables"}, ta.TrendingTopics)
	assert.Equal(t, models.LevelHigh, ta.CompetitionLevel)
	assert.Equal(t, "extra provider key", ta.Extra["notes"])
	assert.Equal(t, []outcome{{"trends", OutcomeGenerated}}, rec.outcomes)

	require.Len(t, c.requests, 1)
	req := c.requests[0]
	assert.Equal(t, CalibrationFor(StageTrends).Role, req.Role)
	assert.InDelta(t, 0.7, req.Temperature, 0.0001)
	assert.Equal(t, 1000, req.MaxTokens)
	assert.Contains(t, req.Prompt, `"fitness"`)
}

func TestStages_GenerationFailureReturnsFallback(t *testing.T) {
	c := &scriptedCompleter{err: llm.ErrGeneration}
	p, rec := newTestPipeline(t, c)
	ctx := context.Background()

	ta := p.AnalyzeTrends(ctx, "fitness")
	assert.Equal(t, FallbackTrends("fitness"), ta)

	products := p.DiscoverProducts(ctx, "fitness", []string{"wearables"})
	assert.Equal(t, FallbackProducts("fitness"), products)

	product := products[0]
	offer := p.GenerateOffer(ctx, "fitness", product)
	assert.Equal(t, FallbackOffer("fitness", product), offer)

	ads := p.GenerateAds(ctx, "fitness", offer)
	assert.Equal(t, FallbackAds("fitness", offer), ads)

	assert.Equal(t, []outcome{
		{"trends", OutcomeFallback},
		{"products", OutcomeFallback},
		{"offer", OutcomeFallback},
		{"ads", OutcomeFallback},
	}, rec.outcomes)
}

func TestStages_ParseFailureReturnsFallback(t *testing.T) {
	for _, raw := range []string{
		"Sorry, I cannot help with that.",
		`{"products": "none"}`,
		`{"trending_topics": ["a"]}`,
	} {
		c := &scriptedCompleter{text: raw}
		p, _ := newTestPipeline(t, c)

		assert.Equal(t, FallbackTrends("yoga"), p.AnalyzeTrends(context.Background(), "yoga"))
		assert.Equal(t, FallbackProducts("yoga"), p.DiscoverProducts(context.Background(), "yoga", nil))
	}
}

func TestStages_UseTheirCalibration(t *testing.T) {
	c := &scriptedCompleter{err: errors.New("offline")}
	p, _ := newTestPipeline(t, c)
	ctx := context.Background()

	p.AnalyzeTrends(ctx, "t1")
	p.DiscoverProducts(ctx, "t1", nil)
	p.GenerateOffer(ctx, "t1", models.Product{})
	p.GenerateAds(ctx, "t1", models.Offer{})

	require.Len(t, c.requests, 4)
	want := []struct {
		temp   float32
		tokens int
	}{{0.7, 1000}, {0.8, 1500}, {0.7, 2000}, {0.8, 2000}}
	for i, w := range want {
		assert.InDelta(t, w.temp, c.requests[i].Temperature, 0.0001)
		assert.Equal(t, w.tokens, c.requests[i].MaxTokens)
		assert.NotEmpty(t, c.requests[i].Role)
	}
}

func TestDiscoverProducts_Generated(t *testing.T) {
	c := &scriptedCompleter{text: "```json\n" + `{"products":[
		{"name":"FitSaaS","type":"saas","description":"d","difficulty":8,"revenue_potential":"high"},
		{"name":"FitCourse","type":"info","description":"d"},
		{"name":"FitCoach","type":"service","description":"d","difficulty":3}
	]}` + "\n```"}
	p, _ := newTestPipeline(t, c)

	products := p.DiscoverProducts(context.Background(), "fitness", []string{"AI", "wearables"})

	require.Len(t, products, 3)
	assert.Equal(t, "FitSaaS", products[0].Name)
	assert.Nil(t, products[1].Difficulty)
	assert.Contains(t, c.requests[0].Prompt, "AI, wearables")
}

func TestGenerateAds_PromptCarriesOffer(t *testing.T) {
	c := &scriptedCompleter{err: llm.ErrGeneration}
	p, _ := newTestPipeline(t, c)

	p.GenerateAds(context.Background(), "fitness", models.Offer{Title: "Fit in 30", ValueProposition: "Get fit fast"})

	prompt := c.requests[0].Prompt
	assert.Contains(t, prompt, "Title: Fit in 30 - Promise: Get fit fast")
	for _, name := range []string{"Facebook", "Google Ads", "LinkedIn", "Twitter", "TikTok"} {
		assert.True(t, strings.Contains(prompt, `"`+name+`"`), name)
	}
}

func TestTrendsInvariantHoldsForEveryTopic(t *testing.T) {
	for _, raw := range []string{trendsJSON, "not json", `{"competition_level":"extreme"}`} {
		p, _ := newTestPipeline(t, &scriptedCompleter{text: raw})
		for _, topic := range []string{"ai", "gardening tools", "crypto tax"} {
			ta := p.AnalyzeTrends(context.Background(), topic)
			assert.GreaterOrEqual(t, ta.TechnicalFeasibility, 1)
			assert.LessOrEqual(t, ta.TechnicalFeasibility, 10)
			assert.Contains(t, []string{"low", "medium", "high"}, ta.CompetitionLevel)
			assert.Contains(t, []string{"low", "medium", "high"}, ta.MarketPotential)
		}
	}
}

type sequenceCompleter struct {
	replies []string
	calls   int
}

func (s *sequenceCompleter) Complete(context.Context, llm.Request) (string, error) {
	text := s.replies[s.calls%len(s.replies)]
	s.calls++
	return text, nil
}

func TestCachedProvider_UnparseableReplyIsAskedAgain(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	provider := &sequenceCompleter{replies: []string{"Sorry, I cannot help with that.", trendsJSON}}
	cached := llm.NewCachedCompleter(provider, rdb, time.Hour, "gpt-test", logger.Discard())
	p, rec := newTestPipeline(t, cached)
	ctx := context.Background()

	assert.Equal(t, FallbackTrends("fitness"), p.AnalyzeTrends(ctx, "fitness"))
	assert.Empty(t, mr.Keys())

	second := p.AnalyzeTrends(ctx, "fitness")
	assert.Equal(t, 8, second.TechnicalFeasibility)
	assert.Equal(t, 2, provider.calls)

	third := p.AnalyzeTrends(ctx, "fitness")
	assert.Equal(t, second, third)
	assert.Equal(t, 2, provider.calls)

	assert.Equal(t, []outcome{
		{"trends", OutcomeFallback},
		{"trends", OutcomeGenerated},
		{"trends", OutcomeGenerated},
	}, rec.outcomes)
}

func TestPromptFailureReturnsFallback(t *testing.T) {
	prompts, err := NewPromptBuilder(map[Stage]string{StageProducts: "Lead trend: {{index .Trends 0}}"})
	require.NoError(t, err)
	c := &scriptedCompleter{text: trendsJSON}
	rec := &recordingRecorder{}
	p := New(c, prompts, logger.Discard(), rec)

	var products []models.Product
	assert.NotPanics(t, func() {
		products = p.DiscoverProducts(context.Background(), "fitness", nil)
	})

	assert.Equal(t, FallbackProducts("fitness"), products)
	assert.Empty(t, c.requests)
	assert.Equal(t, []outcome{{"products", OutcomeFallback}}, rec.outcomes)
}
