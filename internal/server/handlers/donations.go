package handlers

import "net/http"

// DonationsResponse is the body of /api/donations. Values come straight from
// configuration; the shell's donation widget polls this endpoint.
type DonationsResponse struct {
	Enabled  bool    `json:"enabled"`
	Goal     float64 `json:"goal"`
	Raised   float64 `json:"raised"`
	Currency string  `json:"currency"`
}

// DonationsHandler serves the donation progress shown on rendered pages.
func (h *Handlers) DonationsHandler(w http.ResponseWriter, r *http.Request) {
	currency := h.Donations.Currency
	if currency == "" {
		currency = "EUR"
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeJSON(w, http.StatusOK, DonationsResponse{
		Enabled:  h.Donations.Enabled,
		Goal:     h.Donations.Goal,
		Raised:   h.Donations.Raised,
		Currency: currency,
	})
}
