// Package api exposes the computed net-worth series over HTTP.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lifedash/networth"
)

// Handler holds dependencies for HTTP handlers. The portfolio itself stays
// file-backed in Dir, so edits made through the CLI show up on the next
// request.
type Handler struct {
	Dir    string
	Prices networth.PriceTable
	Rates  networth.Rates
	Config networth.ProjectionConfig

	// Now overrides the current date, for tests. Nil means today.
	Now func() networth.Date

	mu sync.Mutex
}

// NewHandler creates a new Handler serving the portfolio stored in dir.
func NewHandler(dir string, prices networth.PriceTable, rates networth.Rates, cfg networth.ProjectionConfig) *Handler {
	return &Handler{Dir: dir, Prices: prices, Rates: rates, Config: cfg}
}

func (h *Handler) today() networth.Date {
	if h.Now != nil {
		return h.Now()
	}
	return networth.Today()
}

// GetSeries handles GET /series. The optional ?currency= parameter converts
// every amount at the edge: the engine always sums native amounts.
func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, err := networth.LoadPortfolio(h.Dir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s := networth.ComputeSeries(p, h.Prices, h.Config, h.today())
	if currency := r.URL.Query().Get("currency"); currency != "" {
		s = s.Convert(h.Rates, strings.ToUpper(currency))
	}
	respondJSON(w, http.StatusOK, s)
}

// GetSummary handles GET /summary
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, err := networth.LoadPortfolio(h.Dir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	today := h.today()
	s := networth.ComputeSeries(p, h.Prices, h.Config, today)
	respondJSON(w, http.StatusOK, map[string]any{
		"date":              today,
		"todayNetWorth":     s.TodayNetWorth.AsFloat(),
		"projectedNetWorth": s.ProjectedNetWorth.AsFloat(),
	})
}

// GetAssets handles GET /assets
func (h *Handler) GetAssets(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, err := networth.LoadPortfolio(h.Dir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	assets := []networth.Asset{}
	for asset := range p.Assets() {
		assets = append(assets, asset)
	}
	respondJSON(w, http.StatusOK, assets)
}

// GetAllInvestments handles GET /investments
func (h *Handler) GetAllInvestments(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, err := networth.LoadPortfolio(h.Dir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	investments := []networth.Investment{}
	for _, v := range p.Investments() {
		investments = append(investments, v)
	}
	respondJSON(w, http.StatusOK, investments)
}

// AddInvestment handles POST /investments. The body is one investment in
// the same JSON shape as a portfolio file line. A missing id is minted.
func (h *Handler) AddInvestment(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	body, err := networth.DecodeInvestment(r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if body.ID == "" {
		body.ID = uuid.NewString()
	}

	p, err := networth.LoadPortfolio(h.Dir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := p.Validate(body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p.Append(body)
	if err := networth.SavePortfolio(h.Dir, p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, body)
}

// RemoveInvestment handles DELETE /investments/{id}
func (h *Handler) RemoveInvestment(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := mux.Vars(r)["id"]
	p, err := networth.LoadPortfolio(h.Dir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !p.Remove(id) {
		http.Error(w, fmt.Sprintf("no investment %q", id), http.StatusNotFound)
		return
	}
	if err := networth.SavePortfolio(h.Dir, p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"removed": id})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
