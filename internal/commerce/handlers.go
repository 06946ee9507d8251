package commerce

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Handlers exposes the pharmacy catalog, cart and checkout over HTTP.
type Handlers struct {
	service *Service
	logger  *logger.Logger
}

func NewHandlers(service *Service, log *logger.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  log,
	}
}

// RegisterRoutes wires the commerce endpoints onto the router.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/pharmacy/medicines", h.Medicines).Methods("GET")
	router.HandleFunc("/pharmacy/cart", h.Cart).Methods("GET")
	router.HandleFunc("/pharmacy/cart/{id}", h.AddToCart).Methods("POST")
	router.HandleFunc("/pharmacy/cart/{id}/decrement", h.Decrement).Methods("POST")
	router.HandleFunc("/pharmacy/cart/{id}", h.Remove).Methods("DELETE")
	router.HandleFunc("/pharmacy/checkout", h.Checkout).Methods("POST")
	router.HandleFunc("/pharmacy/orders", h.Orders).Methods("GET")
}

func (h *Handlers) Medicines(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"medicines": Catalog(),
	})
}

func (h *Handlers) Cart(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"items": h.service.Cart(),
		"total": h.service.Total(),
	})
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid medicine id", nil))
		return
	}

	medicine, ok := MedicineByID(id)
	if !ok {
		h.writeErrorResponse(w, types.NewNotFoundError(types.ErrCodeNotFound, "medicine not found"))
		return
	}

	h.service.AddToCart(medicine)
	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"items": h.service.Cart(),
		"total": h.service.Total(),
	})
}

func (h *Handlers) Decrement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid medicine id", nil))
		return
	}

	h.service.Decrement(id)
	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"items": h.service.Cart(),
		"total": h.service.Total(),
	})
}

func (h *Handlers) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid medicine id", nil))
		return
	}

	h.service.Remove(id)
	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"items": h.service.Cart(),
		"total": h.service.Total(),
	})
}

type checkoutRequest struct {
	Card types.CardDetails `json:"card"`
}

func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid request body", nil))
		return
	}

	order, err := h.service.Checkout(r.Context(), &req.Card)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}
	if order == nil {
		h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
			"status": "empty_cart",
		})
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, order)
}

func (h *Handlers) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.Orders()
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

func (h *Handlers) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.WithError(err).Error("Failed to encode JSON response")
	}
}

func (h *Handlers) writeErrorResponse(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	code := types.ErrCodeInternalError
	message := "internal server error"

	if pe, ok := err.(*types.PortalError); ok {
		statusCode = pe.HTTPStatus()
		code = pe.Code
		message = pe.Message
	}

	h.logger.WithError(err).Error("Request failed")
	h.writeJSONResponse(w, statusCode, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	})
}
