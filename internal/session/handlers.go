package session

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Handlers exposes session and identity management over HTTP.
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

// RegisterRoutes wires the session endpoints onto the router.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/login", h.Login).Methods("POST")
	router.HandleFunc("/auth/logout", h.Logout).Methods("POST")
	router.HandleFunc("/auth/impersonate", h.Impersonate).Methods("POST")
	router.HandleFunc("/auth/revert", h.Revert).Methods("POST")
	router.HandleFunc("/auth/me", h.Me).Methods("GET")
	router.HandleFunc("/auth/profile", h.UpdateProfile).Methods("PUT")
	router.HandleFunc("/auth/theme", h.GetTheme).Methods("GET")
	router.HandleFunc("/auth/theme", h.SetTheme).Methods("PUT")
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var creds types.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid request body", nil))
		return
	}

	session, err := h.service.Login(&creds)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, session)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(); err != nil {
		h.writeErrorResponse(w, err)
		return
	}
	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"status": "logged_out",
	})
}

type impersonateRequest struct {
	FullName string         `json:"full_name"`
	Username string         `json:"username"`
	Role     types.UserRole `json:"role"`
}

func (h *Handlers) Impersonate(w http.ResponseWriter, r *http.Request) {
	var req impersonateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid request body", nil))
		return
	}

	profile, err := h.service.Impersonate(req.FullName, req.Username, req.Role)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, profile)
}

func (h *Handlers) Revert(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Revert()
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}
	if profile == nil {
		h.writeErrorResponse(w, types.NewAuthenticationError(types.ErrCodeUnauthorized, "no active session"))
		return
	}

	h.writeJSONResponse(w, http.StatusOK, profile)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	current := h.service.Current()
	if current == nil {
		h.writeErrorResponse(w, types.NewAuthenticationError(types.ErrCodeUnauthorized, "no active session"))
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"user":     current,
		"original": h.service.Original(),
	})
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var updates types.ProfileUpdates
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid request body", nil))
		return
	}

	profile, err := h.service.UpdateProfile(&updates)
	if err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, profile)
}

func (h *Handlers) GetTheme(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"theme": h.service.Theme(),
	})
}

type themeRequest struct {
	Theme string `json:"theme"`
}

func (h *Handlers) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, types.NewValidationError(types.ErrCodeInvalidInput, "invalid request body", nil))
		return
	}

	if err := h.service.SetTheme(req.Theme); err != nil {
		h.writeErrorResponse(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"theme": req.Theme,
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
