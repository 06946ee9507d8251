package facilities

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Handlers exposes the clinic and hospital finder over HTTP.
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

// RegisterRoutes wires the finder endpoint onto the router.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/facilities", h.List).Methods("GET")
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var maxDistance float64
	if raw := q.Get("max_distance"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid max_distance", nil))
			return
		}
		maxDistance = parsed
	}

	list, err := h.service.List(types.FacilityType(q.Get("type")), maxDistance)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}
	if list == nil {
		list = []*types.Facility{}
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"facilities": list,
		"count":      len(list),
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
