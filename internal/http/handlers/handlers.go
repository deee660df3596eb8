// Package handlers wires HTTP routes to the app services. All domain inputs
// (team lists, contexts, proposals) arrive as request-body snapshots; the
// handlers do no persistence of their own beyond the schedule store.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"league-office-service/internal/app/market"
	"league-office-service/internal/app/seasons"
	"league-office-service/internal/app/trades"
	"league-office-service/internal/domain"
	"league-office-service/internal/logging"
)

// Handler wires HTTP routes to the domain services.
type Handler struct {
	seasons *seasons.Service
	market  *market.Service
	trades  *trades.Service
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(seasonSvc *seasons.Service, marketSvc *market.Service, tradeSvc *trades.Service, logger *slog.Logger) *Handler {
	return &Handler{
		seasons: seasonSvc,
		market:  marketSvc,
		trades:  tradeSvc,
		logger:  logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

type generateSeasonRequest struct {
	SeasonID string        `json:"seasonId"`
	Year     int           `json:"year"`
	Teams    []domain.Team `json:"teams"`
}

type generateSeasonResponse struct {
	SeasonID string                 `json:"seasonId"`
	Games    []domain.ScheduledGame `json:"games"`
}

// GenerateSeason builds, validates, and persists a full season schedule.
func (h *Handler) GenerateSeason(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	var req generateSeasonRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	if req.SeasonID == "" || req.Year == 0 {
		writeError(w, r, http.StatusBadRequest, "seasonId and year are required", h.logger)
		return
	}

	games, err := h.seasons.GenerateSeason(r.Context(), req.SeasonID, req.Year, req.Teams)
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "season generation failed", err,
			logging.FieldSeason, req.SeasonID)
		writeError(w, r, http.StatusUnprocessableEntity, err.Error(), h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, generateSeasonResponse{SeasonID: req.SeasonID, Games: games}, h.logger)
}

type validateScheduleRequest struct {
	SeasonID string        `json:"seasonId"`
	Teams    []domain.Team `json:"teams"`
}

// ValidateSchedule re-derives counts from the persisted schedule. When the
// request omits teams, the snapshot stored at generation time is used.
func (h *Handler) ValidateSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	var req validateScheduleRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	result, err := h.seasons.ValidateSeason(r.Context(), req.SeasonID, req.Teams)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result, h.logger)
}

// Schedule returns a season's persisted schedule, optionally filtered to one
// team via /schedule/{teamID}.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	seasonID := r.URL.Query().Get("season")
	if seasonID == "" {
		writeError(w, r, http.StatusBadRequest, "season query parameter is required", h.logger)
		return
	}

	teamID := strings.TrimPrefix(r.URL.Path, "/schedule")
	teamID = strings.TrimPrefix(teamID, "/")

	var (
		games []domain.ScheduledGame
		err   error
	)
	if teamID == "" {
		games, err = h.seasons.Schedule(r.Context(), seasonID)
	} else {
		games, err = h.seasons.TeamSchedule(r.Context(), seasonID, teamID)
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error(), h.logger)
		return
	}

	if raw := r.URL.Query().Get("preseason"); raw != "" {
		wantPreseason, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "preseason must be a boolean", h.logger)
			return
		}
		filtered := make([]domain.ScheduledGame, 0, len(games))
		for _, g := range games {
			if g.IsPreseason == wantPreseason {
				filtered = append(filtered, g)
			}
		}
		games = filtered
	}

	writeJSON(w, http.StatusOK, map[string]any{"seasonId": seasonID, "games": games}, h.logger)
}
