// Package mock synthesizes provider-shaped detection responses for demo mode.
// Scores are random and carry no analytical meaning.
package mock

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/RubachokBoss/textinspect/internal/models"
)

type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator returns a generator seeded with seed, or with the clock when
// seed is zero.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rnd: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// segmentsOrSample falls back to the whole text when nothing splits out, and
// to sample only when the text is empty.
func segmentsOrSample(text, sample string) []string {
	if segments := Segment(text); len(segments) > 0 {
		return segments
	}
	if text == "" {
		return []string{sample}
	}
	return []string{text}
}

func (g *Generator) AIDetection(text, provider string) models.AIDetectionResponse {
	segments := segmentsOrSample(text, sampleAIText)

	g.mu.Lock()
	defer g.mu.Unlock()

	items := make([]models.AIDetectionItem, 0, len(segments))
	var total float64
	for _, segment := range segments {
		score := round2(g.rnd.Float64())
		prediction := models.PredictionHuman
		if score >= 0.5 {
			prediction = models.PredictionAIGenerated
		}

		items = append(items, models.AIDetectionItem{
			Text:          segment,
			Prediction:    prediction,
			AIScore:       score,
			AIScoreDetail: round2(g.rnd.Float64()),
		})
		total += score
	}

	return models.AIDetectionResponse{
		provider: {
			AIScore: round2(total / float64(len(items))),
			Items:   items,
			Cost:    0,
		},
	}
}

func (g *Generator) Plagiarism(text, provider string) models.PlagiarismResponse {
	segments := segmentsOrSample(text, samplePlagiarismText)

	g.mu.Lock()
	defer g.mu.Unlock()

	// от 3 до 5 совпадающих сегментов, но не больше, чем есть
	matched := min(len(segments), 3+g.rnd.IntN(3))
	withSources := make(map[int]bool, matched)
	for _, idx := range g.rnd.Perm(len(segments))[:matched] {
		withSources[idx] = true
	}

	items := make([]models.PlagiarismItem, 0, len(segments))
	for i, segment := range segments {
		candidates := []models.PlagiarismCandidate{}
		if withSources[i] {
			n := 1 + g.rnd.IntN(2)
			for j := 0; j < n; j++ {
				prediction := models.PredictionOriginal
				if g.rnd.Float64() > 0.3 {
					prediction = models.PredictionPlagiarized
				}

				candidates = append(candidates, models.PlagiarismCandidate{
					URL:             fmt.Sprintf("https://example.com/sample-%d-%d", i+1, j+1),
					PlagiaScore:     round2(0.1 + g.rnd.Float64()*0.8),
					Prediction:      prediction,
					PlagiarizedText: segment,
				})
			}
		}

		items = append(items, models.PlagiarismItem{
			Text:       segment,
			Candidates: candidates,
		})
	}

	return models.PlagiarismResponse{
		provider: {
			PlagiaScore: float64(5 + g.rnd.IntN(40)),
			Items:       items,
			Cost:        0,
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
