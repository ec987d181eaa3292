package handler

import (
	"log/slog"
	"net/http"

	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/delivery/http/response"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// JobHandler holds dependencies for the job-application endpoints. All of
// them sit behind the session middleware.
type JobHandler struct {
	uc     usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler, injected by Fx.
func NewJobHandler(uc usecase.JobUsecase, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles POST /jobs.
func (h *JobHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	var input usecase.CreateJobInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid job application input")
	}

	view, err := h.uc.Create(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Job application created successfully")
}

// List handles GET /jobs.
func (h *JobHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	views, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Job applications retrieved successfully")
}

// Get handles GET /jobs/:id.
func (h *JobHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Get(c.Request().Context(), userID, jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Job application retrieved successfully")
}

// Update handles PUT /jobs/:id.
func (h *JobHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateJobInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid job application input")
	}

	view, err := h.uc.Update(c.Request().Context(), userID, jobID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Job application updated successfully")
}

// Delete handles DELETE /jobs/:id.
func (h *JobHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), userID, jobID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Job application deleted successfully")
}

// parseJobID reads the :id path parameter. An unparsable id cannot match any
// record, so it reports the same not-found as a miss.
func parseJobID(c echo.Context) (uuid.UUID, error) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrJobNotFound
	}

	return jobID, nil
}
