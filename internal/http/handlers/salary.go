package handlers

import (
	"net/http"
	"strconv"

	"league-office-service/internal/contracts"
)

// MarketValue computes a player's fair salary from query parameters.
func (h *Handler) MarketValue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	overall, err1 := strconv.Atoi(r.URL.Query().Get("overall"))
	age, err2 := strconv.Atoi(r.URL.Query().Get("age"))
	years, err3 := strconv.Atoi(r.URL.Query().Get("years"))
	potential, err4 := strconv.Atoi(r.URL.Query().Get("potential"))
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		writeError(w, r, http.StatusBadRequest, "overall, age, years, and potential are required integers", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{
		"marketValue": contracts.MarketValue(overall, age, years, potential),
		"minSalary":   contracts.MinSalary(years),
		"maxSalary":   contracts.MaxSalary(years),
	}, h.logger)
}

// LuxuryTax computes the tax bill for a payroll.
func (h *Handler) LuxuryTax(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	payroll, err := strconv.ParseInt(r.URL.Query().Get("payroll"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "payroll is a required integer", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{
		"payroll": payroll,
		"taxBill": contracts.LuxuryTax(payroll),
	}, h.logger)
}
