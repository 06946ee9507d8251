package notification

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Handlers exposes the notification log over HTTP.
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

// RegisterRoutes wires the notification endpoints onto the router.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/notifications/{username}", h.ListForUser).Methods("GET")
	router.HandleFunc("/notifications/{username}/unread", h.UnreadCount).Methods("GET")
	router.HandleFunc("/notifications/{id}/read", h.MarkRead).Methods("POST")
}

func (h *Handlers) ListForUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	entries, err := h.service.ListForUser(username)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}
	if entries == nil {
		entries = []*types.Notification{}
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"notifications": entries,
		"count":         len(entries),
	})
}

func (h *Handlers) UnreadCount(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	count, err := h.service.UnreadCount(username)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"unread": count,
	})
}

func (h *Handlers) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.MarkRead(id); err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"status": "read",
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
