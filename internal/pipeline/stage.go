package pipeline

// Stage names one generation step.
type Stage string

const (
	StageTrends   Stage = "trends"
	StageProducts Stage = "products"
	StageOffer    Stage = "offer"
	StageAds      Stage = "ads"
)

// Stages lists every stage in pipeline order.
var Stages = []Stage{StageTrends, StageProducts, StageOffer, StageAds}

// Calibration is the per-stage provider setting.
type Calibration struct {
	Role        string
	Temperature float32
	MaxTokens   int
}

var calibrations = map[Stage]Calibration{
	StageTrends: {
		Role:        "You are an expert in market analysis and digital trends.",
		Temperature: 0.7,
		MaxTokens:   1000,
	},
	StageProducts: {
		Role:        "You are an expert in digital product creation and entrepreneurship.",
		Temperature: 0.8,
		MaxTokens:   1500,
	},
	StageOffer: {
		Role:        "You are an expert in copywriting and digital marketing.",
		Temperature: 0.7,
		MaxTokens:   2000,
	},
	StageAds: {
		Role:        "You are an expert in digital advertising and performance marketing.",
		Temperature: 0.8,
		MaxTokens:   2000,
	},
}

// CalibrationFor returns the provider settings for a stage.
func CalibrationFor(s Stage) Calibration {
	return calibrations[s]
}
