package pipeline

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ayush/idea-to-launch/backend/internal/llm"
	"github.com/ayush/idea-to-launch/backend/internal/models"
)

// Stage outcomes reported to the Recorder.
const (
	OutcomeGenerated = "generated"
	OutcomeFallback  = "fallback"
)

// Recorder observes how each stage finished.
type Recorder interface {
	ObserveStage(stage, outcome string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveStage(string, string, time.Duration) {}

// Pipeline runs the four generation stages. Every stage is independent and
// never returns an error: generation or parse failures are logged and the
// stage's fallback payload is returned instead.
type Pipeline struct {
	client   llm.Completer
	prompts  *PromptBuilder
	log      logrus.FieldLogger
	recorder Recorder
}

// New wires a pipeline. recorder may be nil.
func New(client llm.Completer, prompts *PromptBuilder, log logrus.FieldLogger, recorder Recorder) *Pipeline {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Pipeline{client: client, prompts: prompts, log: log, recorder: recorder}
}

// AnalyzeTrends runs the trends stage for topic.
func (p *Pipeline) AnalyzeTrends(ctx context.Context, topic string) models.TrendsAnalysis {
	return runStage(ctx, p, StageTrends, PromptData{Topic: topic}, ParseTrends,
		func() models.TrendsAnalysis { return FallbackTrends(topic) })
}

// DiscoverProducts runs the products stage for topic and caller-supplied
// trend labels.
func (p *Pipeline) DiscoverProducts(ctx context.Context, topic string, trends []string) []models.Product {
	return runStage(ctx, p, StageProducts, PromptData{Topic: topic, Trends: trends}, ParseProducts,
		func() []models.Product { return FallbackProducts(topic) })
}

// GenerateOffer runs the offer stage for topic and product.
func (p *Pipeline) GenerateOffer(ctx context.Context, topic string, product models.Product) models.Offer {
	return runStage(ctx, p, StageOffer, PromptData{Topic: topic, Product: product}, ParseOffer,
		func() models.Offer { return FallbackOffer(topic, product) })
}

// GenerateAds runs the ads stage for topic and offer.
func (p *Pipeline) GenerateAds(ctx context.Context, topic string, offer models.Offer) []models.Ad {
	return runStage(ctx, p, StageAds, PromptData{Topic: topic, Offer: offer}, ParseAds,
		func() []models.Ad { return FallbackAds(topic, offer) })
}

// runStage is the single place where a stage error becomes a fallback.
func runStage[T any](ctx context.Context, p *Pipeline, stage Stage, data PromptData,
	parse func(string) (T, error), fallback func() T) T {
	start := time.Now()

	result, err := generate(ctx, p, stage, data, parse)
	if err != nil {
		p.log.WithFields(logrus.Fields{
			"stage": stage,
			"topic": data.Topic,
		}).WithError(err).Warn("stage failed, returning fallback payload")
		p.recorder.ObserveStage(string(stage), OutcomeFallback, time.Since(start))
		return fallback()
	}

	p.recorder.ObserveStage(string(stage), OutcomeGenerated, time.Since(start))
	return result
}

// generate builds the prompt, calls the provider and parses the reply. The
// parser doubles as the request's Check so only parseable text is reused.
func generate[T any](ctx context.Context, p *Pipeline, stage Stage, data PromptData,
	parse func(string) (T, error)) (T, error) {
	var zero T
	cal := CalibrationFor(stage)

	prompt, err := p.prompts.Build(stage, data)
	if err != nil {
		return zero, err
	}

	raw, err := p.client.Complete(ctx, llm.Request{
		Prompt:      prompt,
		Role:        cal.Role,
		Temperature: cal.Temperature,
		MaxTokens:   cal.MaxTokens,
		Check: func(text string) error {
			_, err := parse(text)
			return err
		},
	})
	if err != nil {
		return zero, err
	}
	return parse(raw)
}
