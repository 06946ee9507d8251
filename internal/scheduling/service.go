package scheduling

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yuvasree15/healthpuls/pkg/interfaces"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/monitoring"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Service owns the appointment state machine. Every transition is checked
// against the allowed edges before it is applied; lifecycle events fan out
// notifications to the affected party.
type Service struct {
	repo        interfaces.AppointmentRepository
	notifier    interfaces.Notifier
	logger      *logger.Logger
	metrics     *monitoring.MetricsCollector
	doctorInbox string
}

// New creates the appointment service. doctorInbox is the username that
// receives new-booking notifications when the request names no doctor account.
func New(repo interfaces.AppointmentRepository, notifier interfaces.Notifier, log *logger.Logger, metrics *monitoring.MetricsCollector, doctorInbox string) *Service {
	return &Service{
		repo:        repo,
		notifier:    notifier,
		logger:      log,
		metrics:     metrics,
		doctorInbox: doctorInbox,
	}
}

// Book creates a Pending appointment and notifies the doctor inbox.
func (s *Service) Book(req *types.BookingRequest) (*types.Appointment, error) {
	if err := validateBooking(req); err != nil {
		return nil, err
	}

	doctorUsername := req.DoctorUsername
	if doctorUsername == "" {
		doctorUsername = s.doctorInbox
	}

	now := time.Now()
	apt := &types.Appointment{
		ID:              uuid.New().String(),
		DoctorName:      req.DoctorName,
		DoctorUsername:  doctorUsername,
		PatientName:     req.PatientName,
		PatientUsername: req.PatientUsername,
		PatientPhone:    req.PatientPhone,
		PatientAge:      req.PatientAge,
		City:            req.City,
		Date:            req.Date,
		Time:            req.Time,
		Status:          types.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(apt); err != nil {
		return nil, err
	}

	s.notify(doctorUsername, "New Appointment Request",
		fmt.Sprintf("%s requested an appointment on %s at %s.", apt.PatientName, apt.Date, apt.Time),
		types.SeverityInfo)

	s.metrics.RecordAppointmentTransition("", string(types.StatusPending), "success")
	s.logger.WithFields(map[string]interface{}{
		"appointment_id": apt.ID,
		"doctor":         apt.DoctorName,
		"patient":        apt.PatientUsername,
	}).Info("Appointment booked")

	return apt, nil
}

// Accept moves the appointment to Accepted and notifies the patient.
func (s *Service) Accept(id string) (*types.Appointment, error) {
	apt, err := s.transition(id, types.StatusAccepted)
	if err != nil {
		return nil, err
	}

	s.notify(apt.PatientUsername, "Appointment Confirmed",
		fmt.Sprintf("Your appointment with %s on %s at %s has been confirmed.", apt.DoctorName, apt.Date, apt.Time),
		types.SeveritySuccess)

	return apt, nil
}

// Confirm moves the appointment to Confirmed and notifies the patient.
func (s *Service) Confirm(id string) (*types.Appointment, error) {
	apt, err := s.transition(id, types.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	s.notify(apt.PatientUsername, "Appointment Confirmed",
		fmt.Sprintf("Your appointment with %s on %s at %s has been confirmed.", apt.DoctorName, apt.Date, apt.Time),
		types.SeveritySuccess)

	return apt, nil
}

// Reschedule moves the appointment to a new date and notifies the patient.
func (s *Service) Reschedule(id, newDate string) (*types.Appointment, error) {
	if newDate == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "new date is required", nil)
	}

	apt, err := s.transition(id, types.StatusRescheduled, func(a *types.Appointment) {
		a.Date = newDate
	})
	if err != nil {
		return nil, err
	}

	s.notify(apt.PatientUsername, "Appointment Rescheduled",
		fmt.Sprintf("Your appointment with %s has been moved to %s at %s.", apt.DoctorName, apt.Date, apt.Time),
		types.SeverityInfo)

	return apt, nil
}

// Cancel moves the appointment to Cancelled and notifies the patient.
func (s *Service) Cancel(id string) (*types.Appointment, error) {
	apt, err := s.transition(id, types.StatusCancelled)
	if err != nil {
		return nil, err
	}

	s.notify(apt.PatientUsername, "Appointment Cancelled",
		fmt.Sprintf("Your appointment with %s on %s at %s has been cancelled.", apt.DoctorName, apt.Date, apt.Time),
		types.SeverityWarning)

	return apt, nil
}

// Complete marks the appointment done. No notification is emitted.
func (s *Service) Complete(id string) (*types.Appointment, error) {
	return s.transition(id, types.StatusCompleted)
}

// Get returns the appointment with the given id.
func (s *Service) Get(id string) (*types.Appointment, error) {
	return s.repo.GetByID(id)
}

// List returns appointments matching the filters.
func (s *Service) List(filters *types.AppointmentFilters) ([]*types.Appointment, error) {
	return s.repo.List(filters)
}

// transition applies the status edge after checking it against the state
// machine, running any extra mutators before persisting.
func (s *Service) transition(id string, target types.AppointmentStatus, mutate ...func(*types.Appointment)) (*types.Appointment, error) {
	apt, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !apt.Status.CanTransitionTo(target) {
		s.metrics.RecordAppointmentTransition(string(apt.Status), string(target), "rejected")
		return nil, types.NewConflictError(types.ErrCodeInvalidTransition,
			fmt.Sprintf("cannot move appointment from %s to %s", apt.Status, target))
	}

	from := apt.Status
	apt.Status = target
	apt.UpdatedAt = time.Now()
	for _, m := range mutate {
		m(apt)
	}

	if err := s.repo.Update(apt); err != nil {
		return nil, err
	}

	s.metrics.RecordAppointmentTransition(string(from), string(target), "success")
	s.logger.WithFields(map[string]interface{}{
		"appointment_id": apt.ID,
		"from":           string(from),
		"to":             string(target),
	}).Info("Appointment transitioned")

	return apt, nil
}

// notify fans out a lifecycle notification. Fan-out failures are logged, not
// surfaced: the transition has already been persisted.
func (s *Service) notify(recipient, title, message string, severity types.NotificationSeverity) {
	if _, err := s.notifier.Notify(recipient, title, message, severity); err != nil {
		s.logger.WithError(err).WithField("recipient", recipient).Error("Failed to send appointment notification")
		return
	}
	s.metrics.RecordNotification(string(severity))
}

func validateBooking(req *types.BookingRequest) error {
	if req == nil {
		return types.NewValidationError(types.ErrCodeInvalidInput, "booking request is required", nil)
	}

	missing := map[string]interface{}{}
	if req.DoctorName == "" {
		missing["doctor_name"] = "required"
	}
	if req.PatientName == "" {
		missing["patient_name"] = "required"
	}
	if req.PatientUsername == "" {
		missing["patient_username"] = "required"
	}
	if req.Date == "" {
		missing["date"] = "required"
	}
	if req.Time == "" {
		missing["time"] = "required"
	}
	if len(missing) > 0 {
		return types.NewValidationError(types.ErrCodeInvalidInput, "missing required booking fields", missing)
	}

	return nil
}

var _ interfaces.AppointmentService = (*Service)(nil)
