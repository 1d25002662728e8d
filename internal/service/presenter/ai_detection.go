package presenter

import (
	"github.com/RubachokBoss/textinspect/internal/models"
)

const (
	aiErrorMessage = "We encountered an issue processing the results. Please try again with a different text sample."
	aiEmptyMessage = "The AI detection model couldn't properly segment the text. Try a longer text with complete sentences."
	aiDemoNotice   = "These results are simulated and do not represent actual AI detection analysis. In demo mode, detection scores are randomly generated for demonstration purposes."
)

var aiDescriptions = []struct {
	min   float64
	label string
}{
	{0.99, "Almost certainly AI-generated"},
	{0.9, "Very likely AI-generated"},
	{0.7, "Likely AI-generated"},
	{0.4, "Possibly AI-generated"},
	{0.2, "Possibly human-written"},
	{0.1, "Likely human-written"},
	{0, "Almost certainly human-written"},
}

type SegmentRow struct {
	Text         string  `json:"text"`
	Score        float64 `json:"score"`
	ScorePercent string  `json:"score_percent"`
	ScoreColor   string  `json:"score_color"`
	Assessment   string  `json:"assessment"`
	IsAI         bool    `json:"is_ai"`
}

type Highlight struct {
	Text       string `json:"text"`
	Background string `json:"background"`
	Title      string `json:"title"`
}

type AIDetectionView struct {
	Status           Status       `json:"status"`
	Message          string       `json:"message,omitempty"`
	Demo             bool         `json:"demo"`
	Notice           string       `json:"notice,omitempty"`
	Provider         string       `json:"provider"`
	OverallScore     float64      `json:"overall_score"`
	OverallPercent   string       `json:"overall_percent"`
	Description      string       `json:"description"`
	ScoreColor       string       `json:"score_color"`
	Summary          string       `json:"summary"`
	Interpretation   string       `json:"interpretation"`
	SegmentsAnalyzed int          `json:"segments_analyzed"`
	AISegments       int          `json:"ai_segments"`
	PoweredBy        string       `json:"powered_by"`
	Rows             []SegmentRow `json:"rows"`
	Highlights       []Highlight  `json:"highlights"`
}

// AIBucket ranks score from 0 (almost certainly human) to 6 (almost
// certainly AI).
func AIBucket(score float64) int {
	score = clamp(score, 0, 1)
	for i, d := range aiDescriptions {
		if score >= d.min {
			return len(aiDescriptions) - 1 - i
		}
	}
	return 0
}

func AIDescription(score float64) string {
	return aiDescriptions[len(aiDescriptions)-1-AIBucket(score)].label
}

func ScoreColor(score float64) string {
	score = clamp(score, 0, 1)
	switch {
	case score >= 0.9:
		return "text-red-600"
	case score >= 0.7:
		return "text-orange-600"
	case score >= 0.3:
		return "text-yellow-600"
	default:
		return "text-green-600"
	}
}

func HighlightBackground(score float64) string {
	score = clamp(score, 0, 1)
	switch {
	case score >= 0.9:
		return "bg-red-100"
	case score >= 0.7:
		return "bg-orange-100"
	case score >= 0.4:
		return "bg-yellow-50"
	case score >= 0.2:
		return "bg-green-50"
	default:
		return "bg-green-100"
	}
}

func interpretation(score float64) string {
	switch {
	case score >= 0.9:
		return "This text has a very high probability of being AI-generated. It shows typical patterns and characteristics of content created by language models."
	case score >= 0.7:
		return "This text likely contains AI-generated content. It displays several patterns characteristic of AI writing, though some portions may be human-written or edited."
	case score >= 0.4:
		return "This text shows a mix of AI and human characteristics. It may be partially AI-generated, heavily edited by a human, or written by a human mimicking AI style."
	default:
		return "This text has a high probability of being human-written. It shows natural language patterns and lacks many characteristics typical of AI-generated content."
	}
}

// AIDetection builds the view for provider's entry in resp.
func AIDetection(resp models.AIDetectionResponse, provider string, demo bool) AIDetectionView {
	view := AIDetectionView{
		Provider:  provider,
		Demo:      demo,
		PoweredBy: "Winston AI",
	}
	if demo {
		view.Notice = aiDemoNotice
		view.PoweredBy = "Demo"
	}

	result, ok := resp[provider]
	if !ok || result == nil || result.Items == nil {
		view.Status = StatusError
		view.Message = aiErrorMessage
		return view
	}

	if len(result.Items) == 0 {
		view.Status = StatusEmpty
		view.Message = aiEmptyMessage
		return view
	}

	score := clamp(result.AIScore, 0, 1)
	view.Status = StatusOK
	view.OverallScore = score
	view.OverallPercent = FormatPercent(score)
	view.Description = AIDescription(score)
	view.ScoreColor = ScoreColor(score)
	view.Interpretation = interpretation(score)
	if score >= 0.5 {
		view.Summary = "Based on our analysis, this text shows strong characteristics of AI-generated content."
	} else {
		view.Summary = "Based on our analysis, this text shows some characteristics of human-written content."
	}

	view.Rows = make([]SegmentRow, 0, len(result.Items))
	view.Highlights = make([]Highlight, 0, len(result.Items))
	for _, item := range result.Items {
		itemScore := clamp(item.AIScore, 0, 1)
		isAI := item.Prediction == models.PredictionAIGenerated
		if isAI {
			view.AISegments++
		}

		assessment := "Human-Written"
		if isAI {
			assessment = "AI-Generated"
		}

		view.Rows = append(view.Rows, SegmentRow{
			Text:         item.Text,
			Score:        itemScore,
			ScorePercent: FormatPercent(itemScore),
			ScoreColor:   ScoreColor(itemScore),
			Assessment:   assessment,
			IsAI:         isAI,
		})
		view.Highlights = append(view.Highlights, Highlight{
			Text:       item.Text,
			Background: HighlightBackground(itemScore),
			Title:      "AI probability: " + FormatPercent(itemScore),
		})
	}
	view.SegmentsAnalyzed = len(result.Items)

	return view
}
