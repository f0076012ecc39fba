package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"overcooked-delivery/order-svc/internal/service"
)

func userID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.Header.Get(UserIDHeader))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeUnauthorized(w http.ResponseWriter) {
	writeErrorBody(w, http.StatusUnauthorized, errorDetail{Code: "unauthorized", Message: "missing or invalid " + UserIDHeader})
}

func orderID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeErrorBody(w, http.StatusBadRequest, errorDetail{Field: service.FieldOrder, Code: "invalid", Message: "order id must be numeric"})
		return 0, false
	}
	return id, true
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := userID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req createOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order, err := h.Orders.Create(r.Context(), user, req.toDomain())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := newOrderResponse(order)
	resp.QRCode = h.Orders.QRLink(order.ID)
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := userID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	orders, err := h.Orders.ListByUser(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for i := range orders {
		item := newOrderResponse(&orders[i])
		item.QRCode = h.Orders.QRLink(orders[i].ID)
		resp = append(resp, item)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	user, ok := userID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	order, err := h.Orders.Get(r.Context(), user, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := newOrderResponse(order)
	resp.QRCode = h.Orders.QRLink(order.ID)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	user, ok := userID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	qrCode, err := h.Orders.GetQRCode(r.Context(), user, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(qrCode) == 0 {
		writeErrorBody(w, http.StatusNotFound, errorDetail{Field: service.FieldOrder, Code: "not_found", Message: "QR code not found"})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}
