package scheduling

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yuvasree15/healthpuls/pkg/interfaces"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Handlers exposes the appointment lifecycle over HTTP.
type Handlers struct {
	service interfaces.AppointmentService
	logger  *logger.Logger
}

func NewHandlers(service interfaces.AppointmentService, log *logger.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  log,
	}
}

// RegisterRoutes wires the appointment endpoints onto the router.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/appointments", h.Book).Methods("POST")
	router.HandleFunc("/appointments", h.List).Methods("GET")
	router.HandleFunc("/appointments/{id}", h.Get).Methods("GET")
	router.HandleFunc("/appointments/{id}/accept", h.Accept).Methods("POST")
	router.HandleFunc("/appointments/{id}/confirm", h.Confirm).Methods("POST")
	router.HandleFunc("/appointments/{id}/reschedule", h.Reschedule).Methods("POST")
	router.HandleFunc("/appointments/{id}/cancel", h.Cancel).Methods("POST")
	router.HandleFunc("/appointments/{id}/complete", h.Complete).Methods("POST")
}

func (h *Handlers) Book(w http.ResponseWriter, r *http.Request) {
	var req types.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid request body", nil))
		return
	}

	apt, err := h.service.Book(&req)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, apt)
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &types.AppointmentFilters{
		PatientUsername: q.Get("patient"),
		DoctorName:      q.Get("doctor"),
		Status:          types.AppointmentStatus(q.Get("status")),
	}

	appointments, err := h.service.List(filters)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}
	if appointments == nil {
		appointments = []*types.Appointment{}
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	apt, err := h.service.Get(mux.Vars(r)["id"])
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, apt)
}

func (h *Handlers) Accept(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.service.Accept)
}

func (h *Handlers) Confirm(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.service.Confirm)
}

type rescheduleRequest struct {
	NewDate string `json:"new_date"`
}

func (h *Handlers) Reschedule(w http.ResponseWriter, r *http.Request) {
	var req rescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid request body", nil))
		return
	}

	apt, err := h.service.Reschedule(mux.Vars(r)["id"], req.NewDate)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, apt)
}

func (h *Handlers) Cancel(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.service.Cancel)
}

func (h *Handlers) Complete(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, h.service.Complete)
}

func (h *Handlers) applyTransition(w http.ResponseWriter, r *http.Request, fn func(string) (*types.Appointment, error)) {
	apt, err := fn(mux.Vars(r)["id"])
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, apt)
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
