package records

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/yuvasree15/healthpuls/pkg/interfaces"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/store"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Service implements the health record store. Records append and re-mark;
// nothing is ever deleted. Status carries no transition rules.
type Service struct {
	mu      sync.RWMutex
	records []*types.HealthRecord
	store   store.Store
	logger  *logger.Logger
}

// New creates the record service, loading the persisted collection and
// seeding the demo reports on first run.
func New(st store.Store, log *logger.Logger) (*Service, error) {
	s := &Service{
		store:  st,
		logger: log,
	}

	err := st.Get(store.KeyHealthRecords, &s.records)
	switch err {
	case nil:
	case store.ErrKeyNotFound:
		s.records = seedRecords()
		if err := st.Put(store.KeyHealthRecords, s.records); err != nil {
			return nil, fmt.Errorf("failed to persist seed records: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to load health records: %w", err)
	}

	return s, nil
}

// Add appends a record, defaulting status to New when unset.
func (s *Service) Add(rec *types.HealthRecord) (*types.HealthRecord, error) {
	if rec == nil {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "record is required", nil)
	}
	if rec.Title == "" || rec.PatientUsername == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "record title and patient username are required", nil)
	}

	cp := *rec
	cp.ID = uuid.New().String()
	if cp.Status == "" {
		cp.Status = types.RecordNew
	}
	if cp.Type == "" {
		cp.Type = types.RecordReport
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append(s.records, &cp)
	if err := s.store.Put(store.KeyHealthRecords, updated); err != nil {
		return nil, fmt.Errorf("failed to persist health records: %w", err)
	}
	s.records = updated

	s.logger.WithFields(map[string]interface{}{
		"record_id": cp.ID,
		"patient":   cp.PatientUsername,
		"type":      string(cp.Type),
	}).Info("Health record added")

	return &cp, nil
}

// SetStatus overwrites the status marker unconditionally. Any known status is
// reachable from any other.
func (s *Service) SetStatus(id string, status types.RecordStatus) (*types.HealthRecord, error) {
	if !status.Valid() {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, fmt.Sprintf("unknown record status: %s", status), nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		if rec.ID == id {
			prev := rec.Status
			rec.Status = status
			if err := s.store.Put(store.KeyHealthRecords, s.records); err != nil {
				rec.Status = prev
				return nil, fmt.Errorf("failed to persist health records: %w", err)
			}
			cp := *rec
			return &cp, nil
		}
	}

	return nil, types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("health record not found: %s", id))
}

// Get returns a copy of the record with the given id.
func (s *Service) Get(id string) (*types.HealthRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}

	return nil, types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("health record not found: %s", id))
}

// ListForPatient returns copies of the patient's records in insertion order.
func (s *Service) ListForPatient(username string) ([]*types.HealthRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*types.HealthRecord
	for _, rec := range s.records {
		if rec.PatientUsername == username {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// seedRecords builds the demo reports written on first run.
func seedRecords() []*types.HealthRecord {
	return []*types.HealthRecord{
		{
			ID:              "101",
			Title:           "Complete Blood Count (CBC)",
			Date:            "2024-05-10",
			Type:            types.RecordReport,
			DoctorName:      "Dr. Gokul Nair",
			PatientUsername: "user1",
			Status:          types.RecordReviewed,
			Content: "WBC: 6.8 x10^3/uL (Ref: 4.5-11.0)\n" +
				"RBC: 4.8 x10^6/uL (Ref: 4.2-5.9)\n" +
				"Hemoglobin: 13.8 g/dL (Ref: 13.5-17.5)\n" +
				"Hematocrit: 41.2% (Ref: 41-50)\n" +
				"Platelets: 245 x10^3/uL (Ref: 150-450)\n\n" +
				"Summary: All hematological parameters are within optimal clinical limits. No evidence of anemia or infection.",
		},
		{
			ID:              "102",
			Title:           "MRI Brain & Cervical Spine",
			Date:            "2024-05-12",
			Type:            types.RecordReport,
			DoctorName:      "Dr. Gokul Nair",
			PatientUsername: "user1",
			Status:          types.RecordSigned,
			Content: "Findings: No evidence of acute intracranial pathology or hemorrhage. Mild disc bulge noted at C5-C6 level without significant cord compression or nerve root exit narrowing.\n\n" +
				"Impression: Unremarkable brain study. Minor degenerative changes in cervical spine. Clinical correlation with current symptoms recommended.",
		},
	}
}

var _ interfaces.RecordService = (*Service)(nil)
