package directory

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/frontdesk/clinic/internal/platform/apperr"
)

// -- Mock Repositories --

type mockDoctorRepo struct {
	doctors []*Doctor
	err     error
}

func (m *mockDoctorRepo) Create(_ context.Context, d *Doctor) error {
	if m.err != nil {
		return m.err
	}
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	m.doctors = append(m.doctors, d)
	return nil
}

func (m *mockDoctorRepo) List(_ context.Context) ([]*Doctor, error) {
	return m.doctors, m.err
}

type mockServiceRepo struct {
	services []*ClinicService
	err      error
}

func (m *mockServiceRepo) Create(_ context.Context, s *ClinicService) error {
	if m.err != nil {
		return m.err
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	m.services = append(m.services, s)
	return nil
}

func (m *mockServiceRepo) List(_ context.Context) ([]*ClinicService, error) {
	return m.services, m.err
}

func newTestService() *Service {
	return NewService(&mockDoctorRepo{}, &mockServiceRepo{})
}

func intPtr(v int) *int { return &v }

func TestService_CreateDoctor(t *testing.T) {
	svc := newTestService()
	d, err := svc.CreateDoctor(context.Background(), CreateDoctorRequest{DoctorName: "Smith"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Error("expected ID to be assigned")
	}
	if d.DoctorName != "Smith" {
		t.Errorf("expected Smith, got %s", d.DoctorName)
	}
}

func TestService_CreateDoctor_InvalidNames(t *testing.T) {
	svc := newTestService()
	for _, name := range []string{"", "   ", "Dr 2", "007", " Smith", "Smith "} {
		_, err := svc.CreateDoctor(context.Background(), CreateDoctorRequest{DoctorName: name})
		if !apperr.IsValidation(err) {
			t.Errorf("name %q: expected validation error, got %v", name, err)
		}
	}
}

func TestService_CreateDoctor_ValidNames(t *testing.T) {
	svc := newTestService()
	for _, name := range []string{"A", "Dr. Jane Smith", "O'Neil", "Ángel Núñez"} {
		if _, err := svc.CreateDoctor(context.Background(), CreateDoctorRequest{DoctorName: name}); err != nil {
			t.Errorf("name %q: unexpected error %v", name, err)
		}
	}
}

func TestService_CreateDoctor_RepoError(t *testing.T) {
	svc := NewService(&mockDoctorRepo{err: errors.New("db down")}, &mockServiceRepo{})
	_, err := svc.CreateDoctor(context.Background(), CreateDoctorRequest{DoctorName: "Smith"})
	if err == nil || apperr.IsValidation(err) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestService_ListDoctors(t *testing.T) {
	svc := newTestService()
	svc.CreateDoctor(context.Background(), CreateDoctorRequest{DoctorName: "Smith"})
	svc.CreateDoctor(context.Background(), CreateDoctorRequest{DoctorName: "Jones"})

	doctors, err := svc.ListDoctors(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doctors) != 2 {
		t.Errorf("expected 2 doctors, got %d", len(doctors))
	}
}

func TestService_CreateClinicService(t *testing.T) {
	svc := newTestService()
	cs, err := svc.CreateClinicService(context.Background(), CreateServiceRequest{ServiceName: "Consult", Fee: intPtr(500)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs.Fee != 500 || cs.ServiceName != "Consult" {
		t.Errorf("unexpected service %+v", cs)
	}
}

func TestService_CreateClinicService_ZeroFee(t *testing.T) {
	svc := newTestService()
	cs, err := svc.CreateClinicService(context.Background(), CreateServiceRequest{ServiceName: "Follow up", Fee: intPtr(0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs.Fee != 0 {
		t.Errorf("expected fee 0, got %d", cs.Fee)
	}
}

func TestService_CreateClinicService_Validation(t *testing.T) {
	svc := newTestService()
	tests := []struct {
		name  string
		req   CreateServiceRequest
		field string
	}{
		{"missing name", CreateServiceRequest{Fee: intPtr(1)}, "serviceName"},
		{"digits in name", CreateServiceRequest{ServiceName: "X2", Fee: intPtr(1)}, "serviceName"},
		{"missing fee", CreateServiceRequest{ServiceName: "Consult"}, "fee"},
		{"negative fee", CreateServiceRequest{ServiceName: "Consult", Fee: intPtr(-1)}, "fee"},
		{"fee beyond integer column", CreateServiceRequest{ServiceName: "Consult", Fee: intPtr(math.MaxInt32 + 1)}, "fee"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateClinicService(context.Background(), tt.req)
			var ve *apperr.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, ve.Field)
			}
		})
	}
}
