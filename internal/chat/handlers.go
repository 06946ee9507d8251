package chat

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yuvasree15/healthpuls/pkg/interfaces"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Handlers exposes the chat channel over HTTP. The sender is always the
// session's active identity.
type Handlers struct {
	service  *Service
	sessions interfaces.SessionService
	logger   *logger.Logger
}

func NewHandlers(service *Service, sessions interfaces.SessionService, log *logger.Logger) *Handlers {
	return &Handlers{
		service:  service,
		sessions: sessions,
		logger:   log,
	}
}

// RegisterRoutes wires the chat endpoints onto the router.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/chat/messages", h.Send).Methods("POST")
	router.HandleFunc("/chat/messages", h.All).Methods("GET")
	router.HandleFunc("/chat/history", h.History).Methods("GET")
}

type sendRequest struct {
	RecipientName string `json:"recipient_name"`
	Text          string `json:"text"`
}

func (h *Handlers) Send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid request body", nil))
		return
	}

	msg, err := h.service.Send(h.sessions.Current(), req.RecipientName, req.Text)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, msg)
}

func (h *Handlers) History(w http.ResponseWriter, r *http.Request) {
	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")
	if a == "" || b == "" {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "both participants are required", nil))
		return
	}

	msgs, err := h.service.History(a, b)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"messages": msgs,
		"count":    len(msgs),
	})
}

func (h *Handlers) All(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.service.All()
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"messages": msgs,
		"count":    len(msgs),
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
