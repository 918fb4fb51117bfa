package visit

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/frontdesk/clinic/internal/platform/envelope"
	"github.com/frontdesk/clinic/pkg/pagination"
)

// Clock decides what "today" means for date defaults.
type Clock struct {
	Location   *time.Location
	OpenBounds bool
	Now        func() time.Time
}

func (c Clock) options() ParseOptions {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return ParseOptions{Now: now(), Location: c.Location, OpenBounds: c.OpenBounds}
}

type Handler struct {
	svc   *Service
	clock Clock
}

func NewHandler(svc *Service, clock Clock) *Handler {
	return &Handler{svc: svc, clock: clock}
}

// RegisterRoutes mounts the patient endpoints under both /patient and the
// older plural /patients.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	for _, prefix := range []string{"/patient", "/patients"} {
		g := api.Group(prefix)
		g.GET("", h.ListPatients)
		g.GET("/stats", h.Stats)
		g.POST("", h.CreatePatient)
	}
}

func (h *Handler) ListPatients(c echo.Context) error {
	ctx := c.Request().Context()
	f := ParseFilters(ctx, c.QueryParams(), h.clock.options())
	result, err := h.svc.ListPatients(ctx, f, pagination.FromContext(c))
	if err != nil {
		return envelope.FromError(err)
	}
	return envelope.OK(c, "Patients retrieved successfully", result)
}

func (h *Handler) Stats(c echo.Context) error {
	ctx := c.Request().Context()
	r := StatsRange(ctx, c.QueryParams(), h.clock.options())
	stats, err := h.svc.Stats(ctx, r)
	if err != nil {
		return envelope.FromError(err)
	}
	return envelope.OK(c, "Stats retrieved successfully", stats)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var req CreatePatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.CreatePatient(c.Request().Context(), req)
	if err != nil {
		return envelope.FromError(err)
	}
	return envelope.Created(c, "Patient Added Successfully", p)
}
