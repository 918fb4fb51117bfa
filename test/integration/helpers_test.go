package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/frontdesk/clinic/internal/domain/directory"
	"github.com/frontdesk/clinic/internal/domain/visit"
	"github.com/frontdesk/clinic/pkg/pagination"
)

type envelopeBody struct {
	Success bool            `json:"success"`
	Message *string         `json:"message"`
	Error   *string         `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func call(t *testing.T, e *echo.Echo, method, path string, body interface{}) (int, envelopeBody) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelopeBody
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v (%s)", method, path, err, rec.Body.String())
	}
	return rec.Code, env
}

func mustDecode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode data: %v (%s)", err, raw)
	}
}

func createDoctor(t *testing.T, e *echo.Echo, name string) directory.Doctor {
	t.Helper()
	code, env := call(t, e, http.MethodPost, "/api/doctor", map[string]interface{}{"doctorName": name})
	if code != http.StatusCreated {
		t.Fatalf("create doctor: %d %v", code, *env.Message)
	}
	var d directory.Doctor
	mustDecode(t, env.Data, &d)
	return d
}

func createService(t *testing.T, e *echo.Echo, name string, fee int) directory.ClinicService {
	t.Helper()
	code, env := call(t, e, http.MethodPost, "/api/service", map[string]interface{}{"serviceName": name, "fee": fee})
	if code != http.StatusCreated {
		t.Fatalf("create service: %d %v", code, *env.Message)
	}
	var s directory.ClinicService
	mustDecode(t, env.Data, &s)
	return s
}

type patientInput struct {
	Patient   string `json:"patient"`
	DoctorID  string `json:"doctorId"`
	ServiceID string `json:"serviceId"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
	Token     int    `json:"token"`
	Fee       int    `json:"fee"`
	Discount  int    `json:"discount"`
	Paid      int    `json:"paid"`
}

func createPatient(t *testing.T, e *echo.Echo, in patientInput) visit.Patient {
	t.Helper()
	code, env := call(t, e, http.MethodPost, "/api/patient", in)
	if code != http.StatusCreated {
		t.Fatalf("create patient: %d %v", code, *env.Message)
	}
	var p visit.Patient
	mustDecode(t, env.Data, &p)
	return p
}

func listPatients(t *testing.T, e *echo.Echo, path string) pagination.Result[visit.PatientRow] {
	t.Helper()
	code, env := call(t, e, http.MethodGet, path, nil)
	if code != http.StatusOK || !env.Success {
		t.Fatalf("GET %s: %d %s", path, code, env.Data)
	}
	var page pagination.Result[visit.PatientRow]
	mustDecode(t, env.Data, &page)
	return page
}
