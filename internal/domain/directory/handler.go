package directory

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frontdesk/clinic/internal/platform/envelope"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/doctor", h.ListDoctors)
	api.POST("/doctor", h.CreateDoctor)
	api.GET("/service", h.ListClinicServices)
	api.POST("/service", h.CreateClinicService)
}

func (h *Handler) CreateDoctor(c echo.Context) error {
	var req CreateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, err := h.svc.CreateDoctor(c.Request().Context(), req)
	if err != nil {
		return envelope.FromError(err)
	}
	return envelope.Created(c, "Doctor Added Successfully", d)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	doctors, err := h.svc.ListDoctors(c.Request().Context())
	if err != nil {
		return envelope.FromError(err)
	}
	if doctors == nil {
		doctors = []*Doctor{}
	}
	return envelope.OK(c, "Doctors fetched Successfully", doctors)
}

func (h *Handler) CreateClinicService(c echo.Context) error {
	var req CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cs, err := h.svc.CreateClinicService(c.Request().Context(), req)
	if err != nil {
		return envelope.FromError(err)
	}
	return envelope.Created(c, "Service Added Successfully", cs)
}

func (h *Handler) ListClinicServices(c echo.Context) error {
	services, err := h.svc.ListClinicServices(c.Request().Context())
	if err != nil {
		return envelope.FromError(err)
	}
	if services == nil {
		services = []*ClinicService{}
	}
	return envelope.OK(c, "Services fetched Successfully", services)
}
