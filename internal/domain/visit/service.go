package visit

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/frontdesk/clinic/internal/platform/apperr"
	"github.com/frontdesk/clinic/pkg/pagination"
)

const maxPatientNameLen = 255

// Service implements the patient use cases on top of a PatientRepository.
type Service struct {
	patients PatientRepository
}

// NewService returns a Service backed by patients.
func NewService(patients PatientRepository) *Service {
	return &Service{patients: patients}
}

// ListPatients runs the page and count queries concurrently. Both always run
// to completion; the first error, if any, fails the whole listing.
func (s *Service) ListPatients(ctx context.Context, f FilterCriteria, page pagination.Params) (*pagination.Result[*PatientRow], error) {
	var (
		rows  []*PatientRow
		total int
		g     errgroup.Group
	)
	g.Go(func() error {
		var err error
		rows, err = s.patients.List(ctx, f, page)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.patients.Count(ctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pagination.NewResult(rows, total, page), nil
}

// Stats counts visits and sums paid amounts within r.
func (s *Service) Stats(ctx context.Context, r DateRange) (*Stats, error) {
	return s.patients.Stats(ctx, r)
}

// CreatePatient validates req and stores it. Validation failures are
// *apperr.ValidationError and never reach the store.
func (s *Service) CreatePatient(ctx context.Context, req CreatePatientRequest) (*Patient, error) {
	p, err := validatePatient(req)
	if err != nil {
		return nil, err
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func validatePatient(req CreatePatientRequest) (*Patient, error) {
	p := &Patient{}

	if req.Patient == nil || strings.TrimSpace(*req.Patient) == "" {
		return nil, apperr.Invalid("patient", "is required")
	}
	p.Patient = strings.TrimSpace(*req.Patient)
	if len([]rune(p.Patient)) > maxPatientNameLen {
		return nil, apperr.Invalid("patient", "must be at most 255 characters")
	}

	var err error
	if p.DoctorID, err = requiredUUID("doctorId", req.DoctorID); err != nil {
		return nil, err
	}
	if p.ServiceID, err = requiredUUID("serviceId", req.ServiceID); err != nil {
		return nil, err
	}

	if req.Gender == nil {
		return nil, apperr.Invalid("gender", "is required")
	}
	switch *req.Gender {
	case GenderMale, GenderFemale:
		p.Gender = *req.Gender
	default:
		return nil, apperr.Invalid("gender", "must be male or female")
	}

	ints := []struct {
		field string
		v     *int
		min   int
		dst   *int
	}{
		{"age", req.Age, 0, &p.Age},
		{"token", req.Token, 1, &p.Token},
		{"fee", req.Fee, 0, &p.Fee},
		{"discount", req.Discount, 0, &p.Discount},
		{"paid", req.Paid, 0, &p.Paid},
	}
	for _, f := range ints {
		if f.v == nil {
			return nil, apperr.Invalid(f.field, "is required")
		}
		if *f.v < f.min {
			return nil, apperr.Invalid(f.field, fmt.Sprintf("must be >= %d", f.min))
		}
		if *f.v > MaxIntValue {
			return nil, apperr.Invalid(f.field, fmt.Sprintf("must be <= %d", MaxIntValue))
		}
		*f.dst = *f.v
	}

	if p.Discount > p.Fee {
		return nil, apperr.Invalid("discount", "must not exceed fee")
	}
	if p.Paid != p.Fee-p.Discount {
		return nil, apperr.Invalid("paid", "must equal fee - discount")
	}
	return p, nil
}

func requiredUUID(field string, raw *string) (uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return uuid.Nil, apperr.Invalid(field, "is required")
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return uuid.Nil, apperr.Invalid(field, "must be a valid id")
	}
	return id, nil
}
