package handlers

import (
	"net/http"

	"league-office-service/internal/domain"
)

type preferencesRequest struct {
	Traits  domain.Traits `json:"traits"`
	Age     int           `json:"age"`
	Overall int           `json:"overall"`
}

// Preferences derives a free agent's preference vector from traits.
func (h *Handler) Preferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	var req preferencesRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, h.market.Preferences(req.Traits, req.Age, req.Overall), h.logger)
}

type scoreOfferRequest struct {
	FreeAgent domain.FreeAgent     `json:"freeAgent"`
	Offer     domain.ContractOffer `json:"offer"`
	Team      domain.TeamContext   `json:"team"`
}

// ScoreOffer rates one offer against the agent's preferences.
func (h *Handler) ScoreOffer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	var req scoreOfferRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, h.market.ScoreOffer(req.FreeAgent, req.Offer, req.Team), h.logger)
}

type evaluateOffersRequest struct {
	FreeAgent domain.FreeAgent              `json:"freeAgent"`
	Offers    []domain.ContractOffer        `json:"offers"`
	Teams     map[string]domain.TeamContext `json:"teams"`
}

// EvaluateOffers scores every offer and reports whether the agent signs.
func (h *Handler) EvaluateOffers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	var req evaluateOffersRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, h.market.Evaluate(req.FreeAgent, req.Offers, req.Teams), h.logger)
}

type cpuOffersRequest struct {
	FreeAgent domain.FreeAgent     `json:"freeAgent"`
	Teams     []domain.TeamContext `json:"teams"`
	Count     int                  `json:"count"`
}

// CPUOffers generates competing offers from the most interested teams.
func (h *Handler) CPUOffers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	var req cpuOffersRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, h.market.CPUOffers(req.FreeAgent, req.Teams, req.Count), h.logger)
}

type validateOfferRequest struct {
	Offer     domain.ContractOffer `json:"offer"`
	FreeAgent domain.FreeAgent     `json:"freeAgent"`
	Team      domain.TeamContext   `json:"team"`
}

// ValidateOffer checks an offer against signing rules.
func (h *Handler) ValidateOffer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	var req validateOfferRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, h.market.ValidateOffer(req.Offer, req.FreeAgent, req.Team), h.logger)
}
