package models

// Ответы провайдера приходят в виде map[provider]result; ключ провайдера задается конфигом.

const (
	PredictionAIGenerated = "ai-generated"
	PredictionHuman       = "human"
	PredictionPlagiarized = "plagiarized"
	PredictionOriginal    = "original"
)

type DetectionKind string

const (
	KindAIDetection         DetectionKind = "ai-detection"
	KindPlagiarismDetection DetectionKind = "plagiarism-detection"
)

func (k DetectionKind) String() string {
	return string(k)
}

func (k DetectionKind) Valid() bool {
	return k == KindAIDetection || k == KindPlagiarismDetection
}

type AIDetectionItem struct {
	Text          string  `json:"text"`
	Prediction    string  `json:"prediction"`
	AIScore       float64 `json:"ai_score"`
	AIScoreDetail float64 `json:"ai_score_detail"`
}

// AIDetectionResult is one provider's verdict. A nil Items slice means the
// provider omitted the field, an empty one means it found no segments.
type AIDetectionResult struct {
	AIScore float64           `json:"ai_score"`
	Items   []AIDetectionItem `json:"items"`
	Cost    float64           `json:"cost"`
}

type AIDetectionResponse map[string]*AIDetectionResult

type PlagiarismCandidate struct {
	URL             string  `json:"url"`
	PlagiaScore     float64 `json:"plagia_score"`
	Prediction      string  `json:"prediction"`
	PlagiarizedText string  `json:"plagiarized_text"`
}

type PlagiarismItem struct {
	Text       string                `json:"text"`
	Candidates []PlagiarismCandidate `json:"candidates"`
}

type PlagiarismResult struct {
	PlagiaScore float64          `json:"plagia_score"`
	Items       []PlagiarismItem `json:"items"`
	Cost        float64          `json:"cost"`
}

type PlagiarismResponse map[string]*PlagiarismResult

// Тела запросов к провайдеру

type AIDetectionRequest struct {
	Providers         string `json:"providers"`
	Text              string `json:"text"`
	FallbackProviders string `json:"fallback_providers"`
}

type PlagiarismRequest struct {
	Providers string `json:"providers"`
	Text      string `json:"text"`
	Title     string `json:"title"`
}
