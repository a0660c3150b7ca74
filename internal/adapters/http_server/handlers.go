package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"booking_api/internal/app"
	"booking_api/internal/domain"
)

type Handlers struct{ S *app.BookingService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type createHotelRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type createReservationRequest struct {
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
	Comment *string   `json:"comment"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Healthy!"))
	})

	s.mux.Get("/hotels", h.listHotels)
	s.mux.Post("/hotels", h.createHotel)
	s.mux.Get("/hotels/search", h.searchHotels)
	s.mux.Get("/hotels/{hotelId}", h.getHotel)
	s.mux.Delete("/hotels/{hotelId}", h.deleteHotel)

	s.mux.Get("/hotels/{hotelId}/reservations", h.listReservations)
	s.mux.Post("/hotels/{hotelId}/reservations", h.createReservation)
	s.mux.Get("/hotels/{hotelId}/reservations/{reservationId}", h.getReservation)
	s.mux.Delete("/hotels/{hotelId}/reservations/{reservationId}", h.deleteReservation)

	s.mux.Get("/reservations", h.listUserReservations)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeError maps the domain error taxonomy onto statuses. Repository faults
// stay a generic 500; the core never retries.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "")
	case errors.Is(err, domain.ErrForbidden):
		writeProblem(w, http.StatusForbidden, "Forbidden", "you do not have the required roles")
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "")
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// ---- hotels ----

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hs, err := h.S.ListHotels(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hs)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.S.GetHotel(r.Context(), chi.URLParam(r, "hotelId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeProblem(w, http.StatusBadRequest, "Missing query", "query parameter is required")
		return
	}
	hs, err := h.S.SearchHotels(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hs)
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var req createHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed JSON body")
		return
	}
	hotel, err := h.S.CreateHotel(r.Context(), identityFrom(r), req.Name, req.Location)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hotel)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	if err := h.S.DeleteHotel(r.Context(), identityFrom(r), chi.URLParam(r, "hotelId")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// ---- reservations ----

func (h *Handlers) listReservations(w http.ResponseWriter, r *http.Request) {
	rs, err := h.S.ListReservations(r.Context(), identityFrom(r), chi.URLParam(r, "hotelId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rs)
}

func (h *Handlers) getReservation(w http.ResponseWriter, r *http.Request) {
	rv, err := h.S.GetReservation(r.Context(), identityFrom(r),
		chi.URLParam(r, "hotelId"), chi.URLParam(r, "reservationId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

func (h *Handlers) createReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed JSON body")
		return
	}
	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLen {
		writeProblem(w, http.StatusBadRequest, "Invalid comment", "comment exceeds 1000 characters")
		return
	}
	res, err := h.S.CreateReservation(r.Context(), identityFrom(r),
		chi.URLParam(r, "hotelId"), req.From, req.To, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handlers) deleteReservation(w http.ResponseWriter, r *http.Request) {
	err := h.S.DeleteReservation(r.Context(), identityFrom(r),
		chi.URLParam(r, "hotelId"), chi.URLParam(r, "reservationId"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) listUserReservations(w http.ResponseWriter, r *http.Request) {
	rs, err := h.S.ListUserReservations(r.Context(), identityFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rs)
}
