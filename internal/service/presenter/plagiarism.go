package presenter

import (
	"fmt"

	"github.com/RubachokBoss/textinspect/internal/models"
)

const (
	plagiarismErrorMessage = "No valid results found. Please try again."
	plagiarismDemoNotice   = "These results are simulated and do not represent actual plagiarism detection. In demo mode, sources and matches are randomly generated for demonstration purposes."

	keyFindingsLimit = 3
	findingTextLimit = 100
)

type Severity struct {
	Level      string `json:"level"`
	Color      string `json:"color"`
	Background string `json:"background"`
	Rank       int    `json:"rank"`
}

type Finding struct {
	Text         string `json:"text"`
	SourceURL    string `json:"source_url"`
	SourceDomain string `json:"source_domain"`
}

type CandidateView struct {
	URL             string  `json:"url"`
	Domain          string  `json:"domain"`
	Prediction      string  `json:"prediction"`
	MatchScore      float64 `json:"match_score"`
	MatchPercent    string  `json:"match_percent"`
	PlagiarizedText string  `json:"plagiarized_text"`
}

type SegmentDetail struct {
	Index       int             `json:"index"`
	Text        string          `json:"text"`
	Plagiarized bool            `json:"plagiarized"`
	Candidates  []CandidateView `json:"candidates"`
}

type PlagiarismView struct {
	Status              Status          `json:"status"`
	Message             string          `json:"message,omitempty"`
	Demo                bool            `json:"demo"`
	Notice              string          `json:"notice,omitempty"`
	Provider            string          `json:"provider"`
	Title               string          `json:"title,omitempty"`
	Score               float64         `json:"score"`
	ScorePercent        string          `json:"score_percent"`
	Severity            Severity        `json:"severity"`
	Summary             string          `json:"summary"`
	Recommendations     []string        `json:"recommendations"`
	PlagiarizedSegments int             `json:"plagiarized_segments"`
	TotalSegments       int             `json:"total_segments"`
	SourcesFound        int             `json:"sources_found"`
	KeyFindings         []Finding       `json:"key_findings"`
	MoreFindings        int             `json:"more_findings"`
	Segments            []SegmentDetail `json:"segments"`
}

// PlagiarismSeverity buckets a 0..100 score.
func PlagiarismSeverity(score float64) Severity {
	score = clamp(score, 0, 100)
	switch {
	case score >= 30:
		return Severity{Level: "High", Color: "text-red-600", Background: "bg-red-100", Rank: 2}
	case score >= 10:
		return Severity{Level: "Medium", Color: "text-yellow-600", Background: "bg-yellow-100", Rank: 1}
	default:
		return Severity{Level: "Low", Color: "text-green-600", Background: "bg-green-100", Rank: 0}
	}
}

func plagiarismSummary(score float64, plagiarized int) (string, []string) {
	switch {
	case score < 5:
		return "No significant plagiarism detected. The content appears to be mostly original.",
			[]string{
				"Your content appears original and properly written.",
				"Continue to cite sources appropriately when using others' ideas.",
			}
	case score < 30:
		return fmt.Sprintf("Some potential plagiarism detected. We found %d segments with matching content from other sources.", plagiarized),
			[]string{
				"Review the highlighted segments and add proper citations.",
				"Consider paraphrasing content that closely matches other sources.",
				"Ensure quoted material is properly marked with quotation marks.",
			}
	default:
		return "Significant plagiarism detected. The content contains multiple segments that match other sources.",
			[]string{
				"Substantially revise the highlighted content in your own words.",
				"Add proper citations for all referenced material.",
				"Use quotation marks for direct quotes and cite the original source.",
				"Consider consulting your institution's academic integrity guidelines.",
			}
	}
}

// Plagiarism builds the view for provider's entry in resp.
func Plagiarism(resp models.PlagiarismResponse, provider, title string, demo bool) PlagiarismView {
	view := PlagiarismView{
		Provider: provider,
		Title:    title,
		Demo:     demo,
	}
	if demo {
		view.Notice = plagiarismDemoNotice
	}

	result, ok := resp[provider]
	if !ok || result == nil || result.Items == nil {
		view.Status = StatusError
		view.Message = plagiarismErrorMessage
		return view
	}

	score := clamp(result.PlagiaScore, 0, 100)
	view.Status = StatusOK
	view.Score = score
	view.ScorePercent = fmt.Sprintf("%.1f%%", score)
	view.Severity = PlagiarismSeverity(score)
	view.TotalSegments = len(result.Items)
	view.KeyFindings = []Finding{}
	view.Segments = make([]SegmentDetail, 0, len(result.Items))

	var findings []Finding
	for i, item := range result.Items {
		detail := SegmentDetail{
			Index:      i + 1,
			Text:       item.Text,
			Candidates: make([]CandidateView, 0, len(item.Candidates)),
		}

		for _, c := range item.Candidates {
			if c.Prediction == models.PredictionPlagiarized {
				detail.Plagiarized = true
			}

			label := "Original"
			if c.Prediction == models.PredictionPlagiarized {
				label = "Plagiarized"
			}
			match := clamp(c.PlagiaScore, 0, 1)
			detail.Candidates = append(detail.Candidates, CandidateView{
				URL:             c.URL,
				Domain:          Domain(c.URL),
				Prediction:      label,
				MatchScore:      match,
				MatchPercent:    FormatPercent(match),
				PlagiarizedText: c.PlagiarizedText,
			})
		}

		view.SourcesFound += len(item.Candidates)
		if detail.Plagiarized {
			view.PlagiarizedSegments++
		}
		if len(item.Candidates) > 0 {
			findings = append(findings, Finding{
				Text:         Truncate(item.Text, findingTextLimit),
				SourceURL:    item.Candidates[0].URL,
				SourceDomain: Domain(item.Candidates[0].URL),
			})
		}
		view.Segments = append(view.Segments, detail)
	}

	if len(findings) > keyFindingsLimit {
		view.MoreFindings = len(findings) - keyFindingsLimit
		findings = findings[:keyFindingsLimit]
	}
	if findings != nil {
		view.KeyFindings = findings
	}

	view.Summary, view.Recommendations = plagiarismSummary(score, view.PlagiarizedSegments)

	return view
}
