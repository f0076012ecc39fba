package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"overcooked-delivery/order-svc/internal/domain"
	"overcooked-delivery/order-svc/internal/service"
)

// UserIDHeader carries the authenticated caller id, set by the upstream authenticator.
const UserIDHeader = "X-User-ID"

type Handler struct {
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
}

func NewHandler(catalogSvc service.CatalogServiceInterface, orderSvc service.OrderServiceInterface) *Handler {
	return &Handler{
		Catalog: catalogSvc,
		Orders:  orderSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.setMenu).Methods("PUT")
	r.HandleFunc("/api/meals", h.createMeal).Methods("POST")
	r.HandleFunc("/api/drinks", h.createDrink).Methods("POST")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.RestaurantFilter{
		Cuisine: query.Get("cuisine"),
		Name:    query.Get("name"),
		City:    query.Get("city"),
	}
	restaurants, err := h.Catalog.ListRestaurants(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Catalog.GetRestaurant(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if !decodeBody(w, r, &rest) {
		return
	}
	if err := h.Catalog.CreateRestaurant(r.Context(), &rest); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) createMeal(w http.ResponseWriter, r *http.Request) {
	var meal domain.Meal
	if !decodeBody(w, r, &meal) {
		return
	}
	if err := h.Catalog.CreateMeal(r.Context(), &meal); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, meal)
}

func (h *Handler) createDrink(w http.ResponseWriter, r *http.Request) {
	var drink domain.Drink
	if !decodeBody(w, r, &drink) {
		return
	}
	if err := h.Catalog.CreateDrink(r.Context(), &drink); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, drink)
}

func (h *Handler) setMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeErrorBody(w, http.StatusBadRequest, errorDetail{Field: service.FieldRestaurant, Code: "invalid", Message: "restaurant id must be numeric"})
		return
	}
	var req setMenuRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.Catalog.SetMenu(r.Context(), restaurantID, req.Meals, req.Drinks); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MaxBodyBytes caps the size of a JSON request body.
const MaxBodyBytes = 1 << 20

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrorBody(w, http.StatusRequestEntityTooLarge, errorDetail{
				Code:    "body_too_large",
				Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			})
			return false
		}
		writeErrorBody(w, http.StatusBadRequest, errorDetail{Code: "invalid_json", Message: "Invalid JSON format: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorBody(w http.ResponseWriter, status int, detail errorDetail) {
	writeJSON(w, status, errorResponse{Error: detail})
}

// writeError maps service errors onto HTTP statuses. Anything unrecognised is
// logged and reported as a generic failure.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		writeErrorBody(w, http.StatusBadRequest, errorDetail{
			Field:   validation.Field,
			Code:    validation.Code,
			Message: validation.Message,
		})
	case errors.Is(err, service.ErrOrderNotFound):
		writeErrorBody(w, http.StatusNotFound, errorDetail{Field: service.FieldOrder, Code: "not_found", Message: service.ErrOrderNotFound.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeErrorBody(w, http.StatusNotFound, errorDetail{Code: "not_found", Message: err.Error()})
	case errors.Is(err, service.ErrOrderCreation):
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("order creation failed")
		writeErrorBody(w, http.StatusInternalServerError, errorDetail{Code: "internal", Message: service.ErrOrderCreation.Error()})
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		writeErrorBody(w, http.StatusInternalServerError, errorDetail{Code: "internal", Message: "internal server error"})
	}
}
