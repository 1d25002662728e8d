package models

type Hero struct {
	Headline    string `json:"headline"`
	Highlight   string `json:"highlight"`
	Description string `json:"description"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Plan struct {
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	CTA         string   `json:"cta"`
	Highlight   bool     `json:"highlight"`
}

type Catalog struct {
	Product  string    `json:"product"`
	Hero     Hero      `json:"hero"`
	Features []Feature `json:"features"`
	Steps    []Step    `json:"steps"`
	Plans    []Plan    `json:"plans"`
}
