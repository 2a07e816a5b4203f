package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/pkg/errors"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/dashboard"
)

const defaultLocale = "en"

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	SessionID string         `json:"session_id" example:"6f1c1b8e-3d1c-4b7a-9d0e-8f2a7c4b5e61"`
	View      dashboard.View `json:"view"`
}

// AddCityRequest names the city to add. Country narrows an ambiguous name.
type AddCityRequest struct {
	Name    string `json:"name" validate:"max=100" example:"Paris"`
	Country string `json:"country" validate:"max=64" example:"FR"`
}

// SelectRequest names the registered city to select.
type SelectRequest struct {
	CityID string `json:"city_id" validate:"required,max=200" example:"paris-france"`
}

// ErrorResponse represents an error response. Notices raised by the failed
// command are attached so the client can show them.
type ErrorResponse struct {
	Error   string             `json:"error" example:"City not found"`
	Notices []dashboard.Notice `json:"notices,omitempty"`
}

// fetchContext carries the request's cancellation and, when the page was
// served over https, makes upstream fetches use https too.
func fetchContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if c.Protocol() == "https" {
		ctx = repositories.WithScheme(ctx, "https")
	}
	return ctx
}

func locale(c *fiber.Ctx) string {
	if l := strings.TrimSpace(c.Query("locale")); l != "" {
		return l
	}
	return defaultLocale
}

func (r *routes) session(c *fiber.Ctx) (*dashboard.Session, error) {
	return r.sessions.Get(c.Params("sid"))
}

func (r *routes) bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return &models.ValidationError{Field: "body", Message: "Request body must be valid JSON"}
	}
	if err := r.validate.Struct(dst); err != nil {
		return &models.ValidationError{Field: "body", Message: validationMessage(err)}
	}
	return nil
}

// handleCreateSession godoc
// @Summary Create a dashboard session
// @Description Starts an empty dashboard in metric units. The returned id addresses every other call.
// @Tags Sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /api/v1/sessions [post]
func (r *routes) handleCreateSession(c *fiber.Ctx) error {
	sess := r.sessions.Create()
	return c.Status(fiber.StatusCreated).JSON(SessionResponse{
		SessionID: sess.ID,
		View:      sess.Dashboard.View(locale(c)),
	})
}

// handleGetSession godoc
// @Summary Get the dashboard view
// @Description Returns cities grouped by country, the selection, its forecast and pending notices. Notices are returned once.
// @Tags Sessions
// @Produce json
// @Param sid path string true "Session id"
// @Param locale query string false "Locale for country labels" default(en)
// @Success 200 {object} dashboard.View
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sid} [get]
func (r *routes) handleGetSession(c *fiber.Ctx) error {
	sess, err := r.session(c)
	if err != nil {
		return r.fail(c, nil, err)
	}
	return c.JSON(sess.Dashboard.View(locale(c)))
}

// handleDeleteSession godoc
// @Summary Delete a dashboard session
// @Tags Sessions
// @Param sid path string true "Session id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sid} [delete]
func (r *routes) handleDeleteSession(c *fiber.Ctx) error {
	if !r.sessions.Delete(c.Params("sid")) {
		return r.fail(c, nil, models.ErrSessionNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// handleAddCity godoc
// @Summary Add a city
// @Description Fetches current conditions, adds the city unless it is already on the dashboard, and selects it.
// @Description A duplicate returns 200 with an info notice.
// @Tags Cities
// @Accept json
// @Produce json
// @Param sid path string true "Session id"
// @Param request body AddCityRequest true "City to add"
// @Success 200 {object} dashboard.View
// @Failure 400 {object} ErrorResponse "Empty or invalid name"
// @Failure 404 {object} ErrorResponse "City not found"
// @Failure 409 {object} ErrorResponse "Unit change in progress"
// @Failure 502 {object} ErrorResponse "Weather service failure"
// @Router /api/v1/sessions/{sid}/cities [post]
func (r *routes) handleAddCity(c *fiber.Ctx) error {
	sess, err := r.session(c)
	if err != nil {
		return r.fail(c, nil, err)
	}

	var req AddCityRequest
	if err := r.bind(c, &req); err != nil {
		return r.fail(c, sess, err)
	}

	if _, _, err := sess.Dashboard.AddCity(fetchContext(c), req.Name, req.Country); err != nil {
		return r.fail(c, sess, err)
	}
	return c.JSON(sess.Dashboard.View(locale(c)))
}

// handleRemoveCity godoc
// @Summary Remove a city
// @Description Removing the selected city clears the selection and its forecast. Unknown ids are ignored.
// @Tags Cities
// @Produce json
// @Param sid path string true "Session id"
// @Param cityID path string true "City id" example(paris-france)
// @Success 200 {object} dashboard.View
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Unit change in progress"
// @Router /api/v1/sessions/{sid}/cities/{cityID} [delete]
func (r *routes) handleRemoveCity(c *fiber.Ctx) error {
	sess, err := r.session(c)
	if err != nil {
		return r.fail(c, nil, err)
	}

	removed, err := sess.Dashboard.RemoveCity(c.Params("cityID"))
	if err != nil {
		return r.fail(c, sess, err)
	}
	if removed {
		r.l.Info("city removed", map[string]any{"session_id": sess.ID, "city_id": c.Params("cityID")})
	}
	return c.JSON(sess.Dashboard.View(locale(c)))
}

// handleSelect godoc
// @Summary Select a city
// @Description Makes the city current and loads its forecast. A forecast failure leaves the forecast unavailable without failing the call.
// @Tags Cities
// @Accept json
// @Produce json
// @Param sid path string true "Session id"
// @Param request body SelectRequest true "City to select"
// @Success 200 {object} dashboard.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Unit change in progress"
// @Router /api/v1/sessions/{sid}/selection [put]
func (r *routes) handleSelect(c *fiber.Ctx) error {
	sess, err := r.session(c)
	if err != nil {
		return r.fail(c, nil, err)
	}

	var req SelectRequest
	if err := r.bind(c, &req); err != nil {
		return r.fail(c, sess, err)
	}

	if err := sess.Dashboard.Select(fetchContext(c), req.CityID); err != nil {
		return r.fail(c, sess, err)
	}
	return c.JSON(sess.Dashboard.View(locale(c)))
}

// handleToggleUnit godoc
// @Summary Toggle the temperature unit
// @Description Re-fetches every city in the other unit. Nothing changes unless every fetch succeeds.
// @Tags Units
// @Produce json
// @Param sid path string true "Session id"
// @Success 200 {object} dashboard.View
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Another command is in progress"
// @Failure 502 {object} ErrorResponse "At least one city failed; the unit is unchanged"
// @Router /api/v1/sessions/{sid}/unit/toggle [post]
func (r *routes) handleToggleUnit(c *fiber.Ctx) error {
	sess, err := r.session(c)
	if err != nil {
		return r.fail(c, nil, err)
	}

	if err := sess.Dashboard.ToggleUnit(fetchContext(c)); err != nil {
		return r.fail(c, sess, err)
	}
	return c.JSON(sess.Dashboard.View(locale(c)))
}

// handleHistorical godoc
// @Summary Get historical weather
// @Description Weather for one past day between 2008-01-01 and today, in the dashboard's current unit.
// @Tags Historical
// @Produce json
// @Param sid path string true "Session id"
// @Param date query string true "Day to look up (YYYY-MM-DD)" example(2015-01-21)
// @Param city query string false "City name; defaults to the selected city" example(London)
// @Success 200 {object} dashboard.HistoricalState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/sessions/{sid}/historical [get]
func (r *routes) handleHistorical(c *fiber.Ctx) error {
	sess, err := r.session(c)
	if err != nil {
		return r.fail(c, nil, err)
	}

	date, err := dashboard.ParseHistoricalDate(c.Query("date"), sess.Historical.Now())
	if err != nil {
		return r.fail(c, nil, err)
	}

	city := strings.TrimSpace(utils.CopyString(c.Query("city")))
	if city == "" {
		if selected, ok := sess.Dashboard.Selected(); ok {
			city = selected.Location.Name
		}
	}

	if _, err := sess.Historical.Fetch(fetchContext(c), city, sess.Dashboard.Unit(), date); err != nil {
		return r.fail(c, nil, err)
	}
	return c.JSON(sess.Historical.State())
}

// fail renders err with the status its kind maps to. Notices pending on the
// session are drained into the body.
func (r *routes) fail(c *fiber.Ctx, sess *dashboard.Session, err error) error {
	status, msg := statusFor(err)

	fields := map[string]any{"path": c.Path(), "status": status, "err": err}
	if sess != nil {
		fields["session_id"] = sess.ID
	}
	if status >= fiber.StatusInternalServerError {
		r.l.Error(err, fields)
	} else {
		r.l.Debug("request rejected", fields)
	}

	resp := ErrorResponse{Error: msg}
	if sess != nil {
		resp.Notices = sess.Dashboard.DrainNotices()
	}
	return c.Status(status).JSON(resp)
}

func statusFor(err error) (int, string) {
	var (
		validation *models.ValidationError
		notFound   *models.NotFoundError
		service    *models.ServiceError
		transport  *models.TransportError
		partial    *models.PartialUpdateError
	)

	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		return fiber.StatusNotFound, "Session not found"
	case errors.Is(err, models.ErrBusy):
		return fiber.StatusConflict, "Another change is in progress"
	case errors.As(err, &validation):
		return fiber.StatusBadRequest, validation.Message
	case errors.As(err, &notFound):
		return fiber.StatusNotFound, notFound.Message
	case errors.As(err, &partial):
		return fiber.StatusBadGateway, "Failed to update with new temperature unit"
	case errors.As(err, &service):
		return fiber.StatusBadGateway, service.Message
	case errors.As(err, &transport):
		return fiber.StatusBadGateway, "Failed to fetch weather data"
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}
