package httpd

import "net/http"

func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.catalogService.GetCatalog())
}

func (h *Handler) GetPricing(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.catalogService.GetPlans())
}

func (h *Handler) GetFeatures(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.catalogService.GetFeatures())
}
