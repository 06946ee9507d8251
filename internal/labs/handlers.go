package labs

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Handlers exposes the lab test catalog and bookings over HTTP.
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

// RegisterRoutes wires the lab endpoints onto the router.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/labs/tests", h.Catalog).Methods("GET")
	router.HandleFunc("/labs/bookings", h.Book).Methods("POST")
	router.HandleFunc("/labs/bookings/{id}/complete", h.Complete).Methods("POST")
	router.HandleFunc("/labs/bookings/patient/{name}", h.ListForPatient).Methods("GET")
}

func (h *Handlers) Catalog(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"tests": h.service.Catalog(),
	})
}

type bookRequest struct {
	TestID      int               `json:"test_id"`
	PatientName string            `json:"patient_name"`
	Date        string            `json:"date"`
	Location    string            `json:"location"`
	Card        types.CardDetails `json:"card"`
}

func (h *Handlers) Book(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid request body", nil))
		return
	}

	booking, err := h.service.Book(r.Context(), req.TestID, req.PatientName, req.Date, req.Location, &req.Card)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, booking)
}

func (h *Handlers) Complete(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.Complete(mux.Vars(r)["id"])
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, booking)
}

func (h *Handlers) ListForPatient(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListForPatient(mux.Vars(r)["name"])
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}
	if bookings == nil {
		bookings = []*types.LabBooking{}
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"bookings": bookings,
		"count":    len(bookings),
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
