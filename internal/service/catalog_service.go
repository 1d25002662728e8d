package service

import (
	"github.com/RubachokBoss/textinspect/internal/models"
)

type CatalogService interface {
	GetCatalog() models.Catalog
	GetPlans() []models.Plan
	GetFeatures() []models.Feature
}

type catalogService struct {
	catalog models.Catalog
}

func NewCatalogService() CatalogService {
	return &catalogService{catalog: defaultCatalog()}
}

func (s *catalogService) GetCatalog() models.Catalog {
	return s.catalog
}

func (s *catalogService) GetPlans() []models.Plan {
	return s.catalog.Plans
}

func (s *catalogService) GetFeatures() []models.Feature {
	return s.catalog.Features
}

func defaultCatalog() models.Catalog {
	return models.Catalog{
		Product: "TextInspect",
		Hero: models.Hero{
			Headline:    "Detect Plagiarism and",
			Highlight:   "AI-Generated Content",
			Description: "TextInspect uses advanced algorithms to help you identify plagiarized content and detect AI-generated text with unparalleled accuracy. Perfect for educators, publishers, and content creators.",
		},
		Features: []models.Feature{
			{Title: "Advanced Plagiarism Detection", Description: "Our powerful algorithms scan the web and academic databases to identify matching or similar content with high precision."},
			{Title: "AI-Generated Content Detection", Description: "Cutting-edge technology that can identify text produced by AI systems like ChatGPT, Claude, and others with high accuracy."},
			{Title: "Detailed Source Citations", Description: "Get comprehensive reports with exact matches, source URLs, and similarity percentages to support your findings."},
			{Title: "Real-time Analysis", Description: "Get results within seconds, not minutes. Our optimized processing ensures you get quick feedback on any text."},
			{Title: "Multilingual Support", Description: "Analyze content in multiple languages with the same level of accuracy and reliability."},
			{Title: "Secure & Confidential", Description: "Your content is never stored or shared. We prioritize privacy and security in every aspect of our service."},
		},
		Steps: []models.Step{
			{Number: 1, Title: "Paste Your Text", Description: "Simply copy and paste the text you want to analyze into our secure platform."},
			{Number: 2, Title: "Run Analysis", Description: "Our powerful algorithms will scan for both plagiarism and AI-generated content simultaneously."},
			{Number: 3, Title: "Review Results", Description: "Examine detailed reports showing potential plagiarism sources and AI probability scores with highlighted text."},
			{Number: 4, Title: "Export Report", Description: "Download or share comprehensive reports with stakeholders, complete with evidence and citations."},
		},
		Plans: []models.Plan{
			{
				Name:        "Free",
				Price:       0,
				Description: "Basic features for students and casual users",
				Features: []string{
					"3 AI detection checks per day",
					"2 plagiarism checks per day",
					"Limited result history (7 days)",
					"Basic reporting tools",
					"Email support",
				},
				CTA: "Start for Free",
			},
			{
				Name:        "Pro",
				Price:       19,
				Description: "Everything you need for professional usage",
				Features: []string{
					"Unlimited AI detection checks",
					"20 plagiarism checks per day",
					"Extended result history (90 days)",
					"Advanced reporting tools",
					"API access (100 req/day)",
					"Priority support",
				},
				CTA:       "Get Pro",
				Highlight: true,
			},
			{
				Name:        "Team",
				Price:       49,
				Description: "For teams and organizations with advanced needs",
				Features: []string{
					"Unlimited AI detection checks",
					"Unlimited plagiarism checks",
					"Permanent result history",
					"Team management features",
					"Customizable reports",
					"Full API access",
					"Dedicated support",
				},
				CTA: "Contact Sales",
			},
		},
	}
}
