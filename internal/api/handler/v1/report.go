package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harismriti/sadhna-api/internal/api/handler/v1/response"
	"github.com/harismriti/sadhna-api/internal/domain"
	"github.com/harismriti/sadhna-api/internal/report"
	"github.com/harismriti/sadhna-api/internal/service"
)

type ReportService interface {
	WeeklyWinner(ctx context.Context, mentorID uint, ref time.Time) (service.WeeklyWinnerReport, error)
	MonthlyWinner(ctx context.Context, mentorID uint, year int, month time.Month) (service.MonthlyWinnerReport, error)
	WeeklyAttendance(ctx context.Context, mentorID uint, ref time.Time) (service.WeeklyAttendanceReport, error)
	MonthlyAttendance(ctx context.Context, mentorID uint, year int, month time.Month) (service.MonthlyAttendanceReport, error)
	MissingSubmissions(ctx context.Context, mentorID uint, date time.Time) (report.MissingReport, error)
}

// ReportHandler resolves "now" and all period query parameters before
// calling the report service, which never reads the clock itself.
type ReportHandler struct {
	svc  ReportService
	uSvc UserService
}

func NewReportHandler(svc ReportService, uSvc UserService) *ReportHandler {
	return &ReportHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleWeeklyWinner godoc
// @Summary      Weekly rankings and winner for the mentor's devotees
// @Tags         reports
// @Produce      json
// @Param        weekStart query string false "any day of the wanted week (yyyy-mm-dd), defaults to today"
// @Success      200  {object}  service.WeeklyWinnerReport
// @Failure      403  {object}  response.Err
// @Router       /sadhna/weekly-winner [get]
// @Security BearerAuth
func (h *ReportHandler) HandleWeeklyWinner(ctx *gin.Context) {
	mentor, ok := requireRole(ctx, h.uSvc, domain.RoleMentor)
	if !ok {
		return
	}

	ref, err := parseDateQuery(ctx, "weekStart")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if ref.IsZero() {
		ref = time.Now()
	}

	result, err := h.svc.WeeklyWinner(ctx.Request.Context(), mentor.ID, ref)
	if err != nil {
		err = fmt.Errorf("v1.HandleWeeklyWinner -> h.svc.WeeklyWinner -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleMonthlyWinner godoc
// @Summary      Monthly rankings and winner for the mentor's devotees
// @Tags         reports
// @Produce      json
// @Param        year  query     int false "year, defaults to the current year"
// @Param        month query     int false "month 1-12, defaults to the current month"
// @Success      200  {object}  service.MonthlyWinnerReport
// @Failure      403  {object}  response.Err
// @Router       /sadhna/monthly-winner [get]
// @Security BearerAuth
func (h *ReportHandler) HandleMonthlyWinner(ctx *gin.Context) {
	mentor, ok := requireRole(ctx, h.uSvc, domain.RoleMentor)
	if !ok {
		return
	}

	year, month, err := parseYearMonthQuery(ctx, time.Now())
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.MonthlyWinner(ctx.Request.Context(), mentor.ID, year, month)
	if err != nil {
		err = fmt.Errorf("v1.HandleMonthlyWinner -> h.svc.MonthlyWinner -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleWeeklyAttendance godoc
// @Summary      Mon-Sun submission matrix for the mentor's active devotees
// @Tags         reports
// @Produce      json
// @Param        weekStart query string false "any day of the wanted week (yyyy-mm-dd), defaults to today"
// @Success      200  {object}  service.WeeklyAttendanceReport
// @Failure      403  {object}  response.Err
// @Router       /sadhna/weekly-attendance [get]
// @Security BearerAuth
func (h *ReportHandler) HandleWeeklyAttendance(ctx *gin.Context) {
	mentor, ok := requireRole(ctx, h.uSvc, domain.RoleMentor)
	if !ok {
		return
	}

	ref, err := parseDateQuery(ctx, "weekStart")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if ref.IsZero() {
		ref = time.Now()
	}

	result, err := h.svc.WeeklyAttendance(ctx.Request.Context(), mentor.ID, ref)
	if err != nil {
		err = fmt.Errorf("v1.HandleWeeklyAttendance -> h.svc.WeeklyAttendance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleMonthlyAttendance godoc
// @Summary      Per-day submission matrix for one calendar month
// @Tags         reports
// @Produce      json
// @Param        year  query     int false "year, defaults to the current year"
// @Param        month query     int false "month 1-12, defaults to the current month"
// @Success      200  {object}  service.MonthlyAttendanceReport
// @Failure      403  {object}  response.Err
// @Router       /sadhna/monthly-attendance [get]
// @Security BearerAuth
func (h *ReportHandler) HandleMonthlyAttendance(ctx *gin.Context) {
	mentor, ok := requireRole(ctx, h.uSvc, domain.RoleMentor)
	if !ok {
		return
	}

	year, month, err := parseYearMonthQuery(ctx, time.Now())
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.MonthlyAttendance(ctx.Request.Context(), mentor.ID, year, month)
	if err != nil {
		err = fmt.Errorf("v1.HandleMonthlyAttendance -> h.svc.MonthlyAttendance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleMissingSubmissions godoc
// @Summary      Active devotees without an entry on the target day
// @Tags         reports
// @Produce      json
// @Param        date query     string false "day (yyyy-mm-dd), defaults to today"
// @Success      200  {object}  report.MissingReport
// @Failure      403  {object}  response.Err
// @Router       /sadhna/missing-submissions [get]
// @Security BearerAuth
func (h *ReportHandler) HandleMissingSubmissions(ctx *gin.Context) {
	mentor, ok := requireRole(ctx, h.uSvc, domain.RoleMentor)
	if !ok {
		return
	}

	date, err := parseDateQuery(ctx, "date")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if date.IsZero() {
		date = time.Now()
	}

	result, err := h.svc.MissingSubmissions(ctx.Request.Context(), mentor.ID, date)
	if err != nil {
		err = fmt.Errorf("v1.HandleMissingSubmissions -> h.svc.MissingSubmissions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}
