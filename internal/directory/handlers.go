package directory

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Handlers exposes the doctor directory over HTTP.
type Handlers struct {
	service *Client
	logger  *logger.Logger
}

func NewHandlers(service *Client, log *logger.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  log,
	}
}

// RegisterRoutes wires the directory endpoints onto the router.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/doctors", h.List).Methods("GET")
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	listings, err := h.service.Search(r.Context(), q.Get("q"), q.Get("specialty"))
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}
	if listings == nil {
		listings = []*types.DoctorListing{}
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"doctors": listings,
		"count":   len(listings),
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
