package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"scooter-rental/internal/domain"
	"scooter-rental/internal/service"
)

// Handler exposes the rental company and its fleet over HTTP.
type Handler struct {
	company    service.RentalCompany
	scooterSvc service.ScooterService
	calculator service.RentalCalculatorService
}

func NewHandler(company service.RentalCompany, scooterSvc service.ScooterService, calculator service.RentalCalculatorService) *Handler {
	return &Handler{
		company:    company,
		scooterSvc: scooterSvc,
		calculator: calculator,
	}
}

type scooterResponse struct {
	ID             string               `json:"id"`
	PricePerMinute decimal.Decimal      `json:"price_per_minute"`
	Status         domain.ScooterStatus `json:"status"`
}

func toScooterResponse(sc *domain.Scooter) scooterResponse {
	return scooterResponse{ID: sc.ID, PricePerMinute: sc.PricePerMinute, Status: sc.Status()}
}

type addScooterRequest struct {
	ID             string          `json:"id"`
	PricePerMinute decimal.Decimal `json:"price_per_minute"`
}

type rentalResponse struct {
	ScooterID      string              `json:"scooter_id"`
	RentStart      time.Time           `json:"rent_start"`
	RentEnd        *time.Time          `json:"rent_end,omitempty"`
	PricePerMinute decimal.Decimal     `json:"price_per_minute"`
	Status         domain.RentalStatus `json:"status"`
}

type costResponse struct {
	ScooterID string          `json:"scooter_id"`
	Cost      decimal.Decimal `json:"cost"`
}

type incomeResponse struct {
	Company     string          `json:"company"`
	Year        *int            `json:"year,omitempty"`
	IncludeOpen bool            `json:"include_open"`
	Income      decimal.Decimal `json:"income"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "company": h.company.Name()})
}

func (h *Handler) ListScooters(w http.ResponseWriter, r *http.Request) {
	scooters, err := h.scooterSvc.ListScooters(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp := make([]scooterResponse, 0, len(scooters))
	for i := range scooters {
		resp = append(resp, toScooterResponse(&scooters[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetScooter(w http.ResponseWriter, r *http.Request) {
	sc, err := h.scooterSvc.GetScooter(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toScooterResponse(sc))
}

func (h *Handler) AddScooter(w http.ResponseWriter, r *http.Request) {
	var req addScooterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errInvalidBody)
		return
	}
	if err := h.scooterSvc.AddScooter(r.Context(), req.ID, req.PricePerMinute); err != nil {
		writeError(w, r, err)
		return
	}
	sc, err := h.scooterSvc.GetScooter(r.Context(), req.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toScooterResponse(sc))
}

func (h *Handler) RemoveScooter(w http.ResponseWriter, r *http.Request) {
	if err := h.scooterSvc.RemoveScooter(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) StartRent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.company.StartRent(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"scooter_id": id, "status": string(domain.ScooterStatusRented)})
}

func (h *Handler) EndRent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	cost, err := h.company.EndRent(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, costResponse{ScooterID: id, Cost: cost})
}

// CalculateIncome reads year and include_open from the query string. Without a
// year every rental counts. include_open closes open rentals for good.
func (h *Handler) CalculateIncome(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var year *int
	if raw := q.Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, errInvalidYear)
			return
		}
		year = &y
	}

	includeOpen := false
	if raw := q.Get("include_open"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, errInvalidQuery)
			return
		}
		includeOpen = b
	}

	income, err := h.company.CalculateIncome(r.Context(), year, includeOpen)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, incomeResponse{
		Company:     h.company.Name(),
		Year:        year,
		IncludeOpen: includeOpen,
		Income:      income,
	})
}

func (h *Handler) ListOpenRentals(w http.ResponseWriter, r *http.Request) {
	open := h.calculator.ListOpenRentals()
	resp := make([]rentalResponse, 0, len(open))
	for _, rt := range open {
		resp = append(resp, rentalResponse{
			ScooterID:      rt.ScooterID,
			RentStart:      rt.RentStart,
			RentEnd:        rt.RentEnd,
			PricePerMinute: rt.PricePerMinute,
			Status:         rt.Status(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
