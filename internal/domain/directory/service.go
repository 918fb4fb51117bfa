package directory

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/frontdesk/clinic/internal/platform/apperr"
)

// displayName accepts names that contain no digits and neither start nor end
// with whitespace, e.g. "Dr Smith" or "X-Ray".
var displayName = regexp.MustCompile(`^[^\s\d]([^\d]*[^\s\d])?$`)

type Service struct {
	doctors  DoctorRepository
	services ServiceRepository
}

func NewService(doctors DoctorRepository, services ServiceRepository) *Service {
	return &Service{doctors: doctors, services: services}
}

// -- Doctor --

func (s *Service) CreateDoctor(ctx context.Context, req CreateDoctorRequest) (*Doctor, error) {
	if strings.TrimSpace(req.DoctorName) == "" {
		return nil, apperr.Invalid("doctorName", "is required")
	}
	if !displayName.MatchString(req.DoctorName) {
		return nil, apperr.Invalid("doctorName", "must not contain digits or leading/trailing spaces")
	}
	d := &Doctor{DoctorName: req.DoctorName}
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}

// -- Clinic service --

func (s *Service) CreateClinicService(ctx context.Context, req CreateServiceRequest) (*ClinicService, error) {
	if strings.TrimSpace(req.ServiceName) == "" {
		return nil, apperr.Invalid("serviceName", "is required")
	}
	if !displayName.MatchString(req.ServiceName) {
		return nil, apperr.Invalid("serviceName", "must not contain digits or leading/trailing spaces")
	}
	if req.Fee == nil {
		return nil, apperr.Invalid("fee", "is required")
	}
	if *req.Fee < 0 {
		return nil, apperr.Invalid("fee", "must be >= 0")
	}
	if *req.Fee > math.MaxInt32 {
		return nil, apperr.Invalid("fee", fmt.Sprintf("must be <= %d", math.MaxInt32))
	}
	cs := &ClinicService{ServiceName: req.ServiceName, Fee: *req.Fee}
	if err := s.services.Create(ctx, cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *Service) ListClinicServices(ctx context.Context) ([]*ClinicService, error) {
	return s.services.List(ctx)
}
