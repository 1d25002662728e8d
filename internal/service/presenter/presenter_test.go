package presenter

import (
	"math"
	"strings"
	"testing"

	"github.com/RubachokBoss/textinspect/internal/models"
)

func TestAIBucketMonotonic(t *testing.T) {
	scores := []float64{0, 0.09, 0.1, 0.19, 0.2, 0.39, 0.4, 0.69, 0.7, 0.89, 0.9, 0.98, 0.99, 1}

	prev := -1
	for _, s := range scores {
		b := AIBucket(s)
		if b < prev {
			t.Fatalf("bucket for %v = %d, lower than previous %d", s, b, prev)
		}
		prev = b
	}

	if got := AIDescription(0); got != "Almost certainly human-written" {
		t.Errorf("AIDescription(0) = %q", got)
	}
	if got := AIDescription(0.99); got != "Almost certainly AI-generated" {
		t.Errorf("AIDescription(0.99) = %q", got)
	}
	if got := AIDescription(0.7); got != "Likely AI-generated" {
		t.Errorf("AIDescription(0.7) = %q", got)
	}
}

func TestPlagiarismSeverityMonotonic(t *testing.T) {
	scores := []float64{0, 4.99, 5, 9.99, 10, 29.99, 30, 100}

	prev := -1
	for _, s := range scores {
		sev := PlagiarismSeverity(s)
		if sev.Rank < prev {
			t.Fatalf("severity for %v = %s, lower than previous", s, sev.Level)
		}
		prev = sev.Rank
	}

	tests := []struct {
		score float64
		want  string
	}{
		{9.99, "Low"},
		{10, "Medium"},
		{29.99, "Medium"},
		{30, "High"},
		{250, "High"},
		{-4, "Low"},
	}
	for _, tt := range tests {
		if got := PlagiarismSeverity(tt.score).Level; got != tt.want {
			t.Errorf("PlagiarismSeverity(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestHighlightBackground(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.95, "bg-red-100"},
		{0.7, "bg-orange-100"},
		{0.4, "bg-yellow-50"},
		{0.2, "bg-green-50"},
		{0.19, "bg-green-100"},
		{math.NaN(), "bg-green-100"},
	}
	for _, tt := range tests {
		if got := HighlightBackground(tt.score); got != tt.want {
			t.Errorf("HighlightBackground(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestAIDetectionView(t *testing.T) {
	resp := models.AIDetectionResponse{
		"winstonai": {
			AIScore: 0.62,
			Items: []models.AIDetectionItem{
				{Text: "AI is transforming work.", Prediction: models.PredictionAIGenerated, AIScore: 0.91},
				{Text: "It raises ethical questions.", Prediction: models.PredictionHuman, AIScore: 0.33},
			},
		},
	}

	view := AIDetection(resp, "winstonai", false)
	if view.Status != StatusOK {
		t.Fatalf("status = %s", view.Status)
	}
	if view.SegmentsAnalyzed != 2 || view.AISegments != 1 {
		t.Errorf("counts = %d/%d", view.SegmentsAnalyzed, view.AISegments)
	}
	if view.OverallPercent != "62.0%" {
		t.Errorf("percent = %s", view.OverallPercent)
	}
	if !strings.Contains(view.Summary, "strong") {
		t.Errorf("summary = %s", view.Summary)
	}
	if view.PoweredBy != "Winston AI" || view.Notice != "" {
		t.Errorf("powered by = %s, notice = %q", view.PoweredBy, view.Notice)
	}
	if view.Rows[0].Assessment != "AI-Generated" || view.Rows[1].Assessment != "Human-Written" {
		t.Errorf("rows = %+v", view.Rows)
	}
	if view.Highlights[0].Background != "bg-red-100" || view.Highlights[1].Background != "bg-green-50" {
		t.Errorf("highlights = %+v", view.Highlights)
	}

	demo := AIDetection(resp, "winstonai", true)
	if demo.PoweredBy != "Demo" || demo.Notice == "" {
		t.Errorf("demo view = %+v", demo)
	}
}

func TestAIDetectionMalformed(t *testing.T) {
	tests := []struct {
		name string
		resp models.AIDetectionResponse
		want Status
	}{
		{"nil response", nil, StatusError},
		{"missing provider", models.AIDetectionResponse{"other": {Items: []models.AIDetectionItem{}}}, StatusError},
		{"nil result", models.AIDetectionResponse{"winstonai": nil}, StatusError},
		{"missing items", models.AIDetectionResponse{"winstonai": {AIScore: 0.5}}, StatusError},
		{"empty items", models.AIDetectionResponse{"winstonai": {Items: []models.AIDetectionItem{}}}, StatusEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := AIDetection(tt.resp, "winstonai", false)
			if view.Status != tt.want {
				t.Errorf("status = %s, want %s", view.Status, tt.want)
			}
			if view.Message == "" {
				t.Error("expected a visible message")
			}
		})
	}
}

func TestAIDetectionClampsScores(t *testing.T) {
	resp := models.AIDetectionResponse{
		"winstonai": {
			AIScore: 7,
			Items:   []models.AIDetectionItem{{Text: "x", AIScore: -3}},
		},
	}

	view := AIDetection(resp, "winstonai", false)
	if view.OverallScore != 1 || view.OverallPercent != "100.0%" {
		t.Errorf("overall = %v %s", view.OverallScore, view.OverallPercent)
	}
	if view.Rows[0].Score != 0 {
		t.Errorf("row score = %v", view.Rows[0].Score)
	}
	if resp["winstonai"].AIScore != 7 {
		t.Error("raw response was modified")
	}
}

func plagiarismFixture() models.PlagiarismResponse {
	long := strings.Repeat("a", 150)
	return models.PlagiarismResponse{
		"originalityai": {
			PlagiaScore: 18,
			Items: []models.PlagiarismItem{
				{Text: long, Candidates: []models.PlagiarismCandidate{
					{URL: "https://www.example.com/one", PlagiaScore: 0.8, Prediction: models.PredictionPlagiarized},
				}},
				{Text: "second", Candidates: []models.PlagiarismCandidate{
					{URL: "not a url\x7f", PlagiaScore: 0.2, Prediction: models.PredictionOriginal},
					{URL: "https://b.org/x", PlagiaScore: 0.5, Prediction: models.PredictionPlagiarized},
				}},
				{Text: "third", Candidates: []models.PlagiarismCandidate{{URL: ""}}},
				{Text: "fourth", Candidates: []models.PlagiarismCandidate{{URL: "https://c.net"}}},
				{Text: "clean", Candidates: []models.PlagiarismCandidate{}},
			},
		},
	}
}

func TestPlagiarismView(t *testing.T) {
	view := Plagiarism(plagiarismFixture(), "originalityai", "Essay", false)

	if view.Status != StatusOK {
		t.Fatalf("status = %s", view.Status)
	}
	if view.Severity.Level != "Medium" {
		t.Errorf("severity = %s", view.Severity.Level)
	}
	if view.TotalSegments != 5 || view.PlagiarizedSegments != 2 || view.SourcesFound != 5 {
		t.Errorf("counts = %d/%d/%d", view.TotalSegments, view.PlagiarizedSegments, view.SourcesFound)
	}
	if !strings.Contains(view.Summary, "found 2 segments") {
		t.Errorf("summary = %s", view.Summary)
	}
	if len(view.KeyFindings) != 3 || view.MoreFindings != 1 {
		t.Fatalf("findings = %d, more = %d", len(view.KeyFindings), view.MoreFindings)
	}

	first := view.KeyFindings[0]
	if first.SourceDomain != "example.com" {
		t.Errorf("domain = %s", first.SourceDomain)
	}
	if len(first.Text) != 103 || !strings.HasSuffix(first.Text, "...") {
		t.Errorf("truncated text length = %d", len(first.Text))
	}
	if view.KeyFindings[1].SourceDomain != "not a url\x7f" {
		t.Errorf("unparsable domain = %s", view.KeyFindings[1].SourceDomain)
	}
	if view.KeyFindings[2].SourceDomain != "Unknown source" {
		t.Errorf("empty domain = %s", view.KeyFindings[2].SourceDomain)
	}

	if view.Segments[1].Candidates[1].MatchPercent != "50.0%" {
		t.Errorf("match percent = %s", view.Segments[1].Candidates[1].MatchPercent)
	}
	if view.Segments[4].Plagiarized || view.Segments[4].Index != 5 {
		t.Errorf("clean segment = %+v", view.Segments[4])
	}
}

func TestPlagiarismSummaryTiers(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "No significant plagiarism"},
		{4.99, "No significant plagiarism"},
		{5, "Some potential plagiarism"},
		{30, "Significant plagiarism"},
	}
	for _, tt := range tests {
		resp := models.PlagiarismResponse{"originalityai": {PlagiaScore: tt.score, Items: []models.PlagiarismItem{}}}
		view := Plagiarism(resp, "originalityai", "", false)
		if !strings.HasPrefix(view.Summary, tt.want) {
			t.Errorf("score %v: summary = %s", tt.score, view.Summary)
		}
		if len(view.Recommendations) == 0 {
			t.Errorf("score %v: no recommendations", tt.score)
		}
	}
}

func TestPlagiarismMalformed(t *testing.T) {
	for _, resp := range []models.PlagiarismResponse{
		nil,
		{"originalityai": nil},
		{"originalityai": {PlagiaScore: 12}},
		{"other": {Items: []models.PlagiarismItem{}}},
	} {
		view := Plagiarism(resp, "originalityai", "", false)
		if view.Status != StatusError || view.Message == "" {
			t.Errorf("view = %+v", view)
		}
	}
}

func TestDomain(t *testing.T) {
	tests := map[string]string{
		"https://www.wikipedia.org/wiki/AI": "wikipedia.org",
		"http://news.site.com":              "news.site.com",
		"":                                  "Unknown source",
		"plain-words":                       "plain-words",
	}
	for in, want := range tests {
		if got := Domain(in); got != want {
			t.Errorf("Domain(%q) = %q, want %q", in, got, want)
		}
	}
}
