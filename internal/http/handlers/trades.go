package handlers

import (
	"net/http"

	"league-office-service/internal/domain"
)

type validateTradeRequest struct {
	Proposal     domain.TradeProposal                 `json:"proposal"`
	Teams        map[string]domain.TeamContext        `json:"teams"`
	Restrictions map[string]domain.PlayerRestrictions `json:"restrictions"`
}

// ValidateTrade checks a proposal against cap and roster rules.
func (h *Handler) ValidateTrade(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	var req validateTradeRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, h.trades.Validate(req.Proposal, req.Teams, req.Restrictions), h.logger)
}

type evaluateTradeRequest struct {
	TeamID      string               `json:"teamId"`
	Proposal    domain.TradeProposal `json:"proposal"`
	Context     domain.TeamContext   `json:"context"`
	CurrentYear int                  `json:"currentYear"`
}

// EvaluateTrade scores a proposal from one team's perspective.
func (h *Handler) EvaluateTrade(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	var req evaluateTradeRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	if req.TeamID == "" {
		writeError(w, r, http.StatusBadRequest, "teamId is required", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.trades.Evaluate(req.TeamID, req.Proposal, req.Context, req.CurrentYear), h.logger)
}

// RespondToTrade returns the CPU's answer to an incoming proposal.
func (h *Handler) RespondToTrade(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	var req evaluateTradeRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	if req.TeamID == "" {
		writeError(w, r, http.StatusBadRequest, "teamId is required", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.trades.Respond(req.TeamID, req.Proposal, req.Context, req.CurrentYear), h.logger)
}
