package records

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Handlers exposes the health record store over HTTP.
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

// RegisterRoutes wires the record endpoints onto the router.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/records", h.Add).Methods("POST")
	router.HandleFunc("/records/patient/{username}", h.ListForPatient).Methods("GET")
	router.HandleFunc("/records/{id}", h.Get).Methods("GET")
	router.HandleFunc("/records/{id}/status", h.SetStatus).Methods("PUT")
	router.HandleFunc("/records/{id}/export", h.Export).Methods("GET")
}

func (h *Handlers) Add(w http.ResponseWriter, r *http.Request) {
	var rec types.HealthRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid request body", nil))
		return
	}

	created, err := h.service.Add(&rec)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, created)
}

func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Get(mux.Vars(r)["id"])
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, rec)
}

func (h *Handlers) ListForPatient(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.ListForPatient(mux.Vars(r)["username"])
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}
	if recs == nil {
		recs = []*types.HealthRecord{}
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"records": recs,
		"count":   len(recs),
	})
}

type statusRequest struct {
	Status types.RecordStatus `json:"status"`
}

func (h *Handlers) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid request body", nil))
		return
	}

	rec, err := h.service.SetStatus(mux.Vars(r)["id"], req.Status)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, rec)
}

func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	artifact, err := h.service.Export(mux.Vars(r)["id"])
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=record.txt")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(artifact)); err != nil {
		h.logger.WithError(err).Error("Failed to write export artifact")
	}
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
