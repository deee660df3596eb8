package http

import (
	nethttp "net/http"

	"league-office-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)

	mux.HandleFunc("/seasons/generate", handler.GenerateSeason)
	mux.HandleFunc("/schedule/validate", handler.ValidateSchedule)
	mux.HandleFunc("/schedule", handler.Schedule)
	mux.HandleFunc("/schedule/", handler.Schedule)

	mux.HandleFunc("/trades/validate", handler.ValidateTrade)
	mux.HandleFunc("/trades/evaluate", handler.EvaluateTrade)
	mux.HandleFunc("/trades/respond", handler.RespondToTrade)

	mux.HandleFunc("/freeagency/preferences", handler.Preferences)
	mux.HandleFunc("/freeagency/offers/score", handler.ScoreOffer)
	mux.HandleFunc("/freeagency/offers/evaluate", handler.EvaluateOffers)
	mux.HandleFunc("/freeagency/offers/cpu", handler.CPUOffers)
	mux.HandleFunc("/freeagency/offers/validate", handler.ValidateOffer)

	mux.HandleFunc("/salary/market-value", handler.MarketValue)
	mux.HandleFunc("/salary/luxury-tax", handler.LuxuryTax)
	return mux
}
