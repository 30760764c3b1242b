package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush/idea-to-launch/backend/internal/llm"
	"github.com/ayush/idea-to-launch/backend/internal/logger"
	"github.com/ayush/idea-to-launch/backend/internal/models"
	"github.com/ayush/idea-to-launch/backend/internal/pipeline"
)

type stubCompleter struct {
	byRole map[string]string
	err    error
}

func (s stubCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if text, ok := s.byRole[req.Role]; ok {
		return text, nil
	}
	return "", llm.ErrGeneration
}

var fixedNow = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func newServer(t *testing.T, c llm.Completer) *httptest.Server {
	t.Helper()
	prompts, err := pipeline.NewPromptBuilder(nil)
	require.NoError(t, err)
	p := pipeline.New(c, prompts, logger.Discard(), nil)

	h := NewHandler(p, ServiceInfo{
		OpenAIConfigured: true,
		Environment:      "test",
		Model:            "gpt-3.5-turbo",
	}, logger.Discard())
	h.now = func() time.Time { return fixedNow }

	srv := httptest.NewServer(NewRouter(h, RouterOptions{
		AllowedOrigins: []string{"http://localhost:3000"},
		Log:            logger.Discard(),
	}))
	t.Cleanup(srv.Close)
	return srv
}

func failing(t *testing.T) *httptest.Server {
	return newServer(t, stubCompleter{err: llm.ErrGeneration})
}

func getJSON(t *testing.T, url string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func postJSON(t *testing.T, url, payload string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRootAndHealth(t *testing.T) {
	srv := failing(t)

	code, body := getJSON(t, srv.URL+"/")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "1.0.0", body["version"])

	code, body = getJSON(t, srv.URL+"/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["openai_configured"])
	assert.Equal(t, false, body["database_url"])
	assert.Equal(t, "test", body["environment"])
}

func TestTopicSearch_GenerationFailureStillOK(t *testing.T) {
	srv := failing(t)

	code, body := getJSON(t, srv.URL+"/api/topics/search?topic=urban+gardening&include_reddit=false")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "urban gardening", body["topic"])
	assert.Equal(t, "success", body["status"])

	ta := body["trends_analysis"].(map[string]any)
	assert.Equal(t, "medium", ta["competition_level"])
	assert.EqualValues(t, 6, ta["technical_feasibility"])
	assert.Equal(t, "24h", ta["data_freshness"])
	assert.Equal(t, "2026-05-04T10:30:00Z", ta["search_timestamp"])
	assert.NotContains(t, ta, "request_parameters")

	ext := body["external_data"].(map[string]any)
	assert.Contains(t, ext, "google_trends")
	assert.Contains(t, ext, "serp_api")
	assert.NotContains(t, ext, "reddit")
}

func TestTopicSearchPost_PerSourceFlags(t *testing.T) {
	srv := failing(t)

	code, body := postJSON(t, srv.URL+"/api/topics/search",
		`{"topic":"chess","include_trends":false,"include_serp":true}`)
	require.Equal(t, http.StatusOK, code)

	ext := body["external_data"].(map[string]any)
	assert.Equal(t, []string{"serp_api"}, keys(ext))

	params := body["trends_analysis"].(map[string]any)["request_parameters"].(map[string]any)
	assert.Equal(t, false, params["include_trends"])
	assert.Equal(t, true, params["include_competition"])
}

func TestTopicSearch_Validation(t *testing.T) {
	srv := failing(t)

	for _, url := range []string{
		"/api/topics/search",
		"/api/topics/search?topic=a",
		"/api/topics/search?topic=" + strings.Repeat("x", 101),
		"/api/topics/search?topic=chess&include_serp=maybe",
	} {
		code, body := getJSON(t, srv.URL+url)
		assert.Equal(t, http.StatusUnprocessableEntity, code, url)
		assert.NotEmpty(t, body["detail"], url)
	}

	code, _ := postJSON(t, srv.URL+"/api/topics/search", `{"topic":`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestTrendingTopics_Limit(t *testing.T) {
	srv := failing(t)

	code, body := getJSON(t, srv.URL+"/api/topics/trending?limit=3")
	require.Equal(t, http.StatusOK, code)
	topics := body["trending_topics"].([]any)
	require.Len(t, topics, 3)
	assert.Equal(t, "AI Content Creation", topics[0].(map[string]any)["topic"])
	assert.Equal(t, "Sustainable Tech", topics[2].(map[string]any)["topic"])

	code, _ = getJSON(t, srv.URL+"/api/topics/trending?limit=0")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	code, _ = getJSON(t, srv.URL+"/api/topics/trending?limit=51")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestProductSearch_FallbackFilteredAndEnriched(t *testing.T) {
	srv := failing(t)

	code, body := getJSON(t, srv.URL+"/api/products/search?topic=fitness&trends=AI,%20wearables&product_types=saas,info")
	require.Equal(t, http.StatusOK, code)

	products := body["products"].([]any)
	require.Len(t, products, 2)
	for _, p := range products {
		pm := p.(map[string]any)
		assert.Contains(t, []any{"saas", "info"}, pm["type"])
		assert.Contains(t, pm, "market_research")
		assert.Contains(t, pm, "success_metrics")
		assert.Contains(t, pm, "recommendations")
	}

	params := body["search_parameters"].(map[string]any)
	assert.Equal(t, []any{"AI", "wearables"}, params["trends"])
	assert.Equal(t, []any{1.0, 10.0}, params["difficulty_range"])
	assert.Equal(t, "any", params["revenue_potential"])
}

func TestProductSearchPost_Generated(t *testing.T) {
	srv := newServer(t, stubCompleter{byRole: map[string]string{
		pipeline.CalibrationFor(pipeline.StageProducts).Role: `{"products":[
			{"name":"Hard","type":"saas","description":"d","difficulty":9,"revenue_potential":"High","launch_channel":"ProductHunt"},
			{"name":"Easy","type":"info","description":"d","difficulty":2,"revenue_potential":"low"}
		]}`,
	}})

	code, body := postJSON(t, srv.URL+"/api/products/search",
		`{"topic":"fitness","max_difficulty":5}`)
	require.Equal(t, http.StatusOK, code)

	products := body["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "Easy", products[0].(map[string]any)["name"])

	code, body = postJSON(t, srv.URL+"/api/products/search",
		`{"topic":"fitness","revenue_potential":"high"}`)
	require.Equal(t, http.StatusOK, code)
	products = body["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, "ProductHunt", products[0].(map[string]any)["launch_channel"])
	assert.Len(t, products[0].(map[string]any)["recommendations"], 5)
}

func TestProductSearch_Validation(t *testing.T) {
	srv := failing(t)

	code, _ := getJSON(t, srv.URL+"/api/products/search?topic=fitness&min_difficulty=0")
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = postJSON(t, srv.URL+"/api/products/search", `{"topic":"fitness","max_difficulty":11}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestProductReferenceData(t *testing.T) {
	srv := failing(t)

	code, body := getJSON(t, srv.URL+"/api/products/categories")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 3, body["total_categories"])

	code, body = getJSON(t, srv.URL+"/api/products/trending?category=saas&limit=1")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["trending_products"], 1)
	assert.Equal(t, "saas", body["category"])

	_, body = getJSON(t, srv.URL+"/api/products/trending")
	assert.Nil(t, body["category"])
	assert.Len(t, body["trending_products"], 5)
}

func TestGenerateOffer_FallbackEnriched(t *testing.T) {
	srv := failing(t)

	code, body := postJSON(t, srv.URL+"/api/generate/offer",
		`{"topic":"fitness","product":{"name":"FitApp","type":"saas"},"tone":"casual"}`)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "FitApp", body["product"].(map[string]any)["name"])
	offer := body["offer"].(map[string]any)
	assert.Len(t, offer["benefits"], 5)
	assert.Equal(t, "Adapted for a casual tone", offer["tone_adaptation"])

	gp := offer["generation_parameters"].(map[string]any)
	assert.Equal(t, "casual", gp["tone"])
	assert.Equal(t, true, gp["include_landing_page"])
	assert.Nil(t, gp["target_audience"])

	meta := offer["metadata"].(map[string]any)
	assert.Equal(t, "2026-05-04T10:30:00Z", meta["generated_at"])
	assert.Equal(t, "gpt-3.5-turbo", meta["ai_model"])
}

func TestGenerateAds_HighBudgetDoubles(t *testing.T) {
	srv := failing(t)

	code, base := postJSON(t, srv.URL+"/api/generate/ads",
		`{"topic":"fitness","offer":{"title":"X","value_proposition":"Y"}}`)
	require.Equal(t, http.StatusOK, code)
	code, high := postJSON(t, srv.URL+"/api/generate/ads",
		`{"topic":"fitness","offer":{"title":"X","value_proposition":"Y"},"budget_range":"high"}`)
	require.Equal(t, http.StatusOK, code)

	baseAds, highAds := base["ads"].([]any), high["ads"].([]any)
	require.Len(t, baseAds, 5)
	require.Len(t, highAds, 5)

	want := map[string]string{}
	for _, a := range pipeline.FallbackAds("fitness", models.Offer{Title: "X", ValueProposition: "Y"}) {
		want[a.Platform] = a.SuggestedBudget
	}
	doubled := map[string]string{
		"$30/day": "$60/day", "$40/day": "$80/day", "$50/day": "$100/day",
		"$20/day": "$40/day", "$25/day": "$50/day",
	}
	for i := range highAds {
		b := baseAds[i].(map[string]any)
		h := highAds[i].(map[string]any)
		assert.Equal(t, want[b["platform"].(string)], b["suggested_budget"])
		assert.Equal(t, doubled[b["suggested_budget"].(string)], h["suggested_budget"])
		assert.Equal(t, "X", h["headline"])
		assert.Equal(t, "high", h["generation_parameters"].(map[string]any)["budget_range"])
	}
}

func TestGenerateAds_PlatformFilter(t *testing.T) {
	srv := newServer(t, stubCompleter{byRole: map[string]string{
		pipeline.CalibrationFor(pipeline.StageAds).Role: `{"ads":[
			{"platform":"Facebook","headline":"fb","description":"d","cta":"c","suggested_budget":"$50/day"},
			{"platform":"Google Ads","headline":"g","description":"d","cta":"c"},
			{"platform":"LinkedIn","headline":"li","description":"d","cta":"c","suggested_budget":"about $50 daily"}
		]}`,
	}})

	code, body := postJSON(t, srv.URL+"/api/generate/ads",
		`{"topic":"fitness","offer":{"title":"X"},"platforms":["facebook","linkedin"],"budget_range":"low"}`)
	require.Equal(t, http.StatusOK, code)

	ads := body["ads"].([]any)
	require.Len(t, ads, 2)
	fb, li := ads[0].(map[string]any), ads[1].(map[string]any)
	assert.Equal(t, "Facebook", fb["platform"])
	assert.Equal(t, "$25/day", fb["suggested_budget"])
	assert.Equal(t, "LinkedIn", li["platform"])
	assert.Equal(t, "about $50 daily", li["suggested_budget"])
	assert.Equal(t, []any{"facebook", "linkedin"}, li["generation_parameters"].(map[string]any)["platforms"])
}

func TestGenerateReferenceData(t *testing.T) {
	srv := failing(t)

	code, body := getJSON(t, srv.URL+"/api/generate/offer/templates")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 3, body["total_templates"])

	code, body = getJSON(t, srv.URL+"/api/generate/ads/platforms")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 5, body["total_platforms"])
	assert.Contains(t, body["recommendations"], "b2b")
}

func TestUnknownRouteAndMethod(t *testing.T) {
	srv := failing(t)

	code, body := getJSON(t, srv.URL+"/api/nope")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Not Found", body["detail"])

	code, body = getJSON(t, srv.URL+"/api/generate/offer")
	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.Equal(t, "Method Not Allowed", body["detail"])
}

func TestHandle_ErrorPrefix(t *testing.T) {
	h := NewHandler(nil, ServiceInfo{}, logger.Discard())
	fn := h.handle("Error generating ads", func(http.ResponseWriter, *http.Request) error {
		return errors.New("encode response: unsupported value")
	})

	rec := httptest.NewRecorder()
	fn(rec, httptest.NewRequest(http.MethodPost, "/api/generate/ads", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Error generating ads: encode response: unsupported value"}`, rec.Body.String())
}

func TestPanicIsTranslated(t *testing.T) {
	h := NewHandler(panicking{}, ServiceInfo{}, logger.Discard())
	srv := httptest.NewServer(NewRouter(h, RouterOptions{Log: logger.Discard()}))
	defer srv.Close()

	code, body := getJSON(t, srv.URL+"/api/topics/search?topic=chess")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["error"])
	assert.Equal(t, "Something went wrong", body["message"])
}

type panicking struct{ Generator }

func (panicking) AnalyzeTrends(context.Context, string) models.TrendsAnalysis {
	panic("unexpected")
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
