package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harismriti/sadhna-api/internal/api/handler/v1/request"
	"github.com/harismriti/sadhna-api/internal/api/handler/v1/response"
	"github.com/harismriti/sadhna-api/internal/domain"
	"github.com/harismriti/sadhna-api/internal/service"
)

type SadhnaService interface {
	UpsertEntry(ctx context.Context, userID, entryID uint, input domain.DailyEntry) (domain.DailyEntry, bool, error)
	MyEntries(ctx context.Context, userID uint, start, end time.Time, limit int) ([]domain.DailyEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID uint) error
	DevoteesEntries(ctx context.Context, mentorID uint, date time.Time) ([]domain.DailyEntry, error)
	DevoteeHistory(ctx context.Context, mentorID, devoteeID uint) (domain.User, []domain.DailyEntry, error)
	PeerDevotees(ctx context.Context, requester domain.User) ([]domain.User, error)
	PeerEntries(ctx context.Context, requester domain.User, date time.Time) ([]domain.DailyEntry, error)
	PeerHistory(ctx context.Context, requester domain.User, peerID uint) (domain.User, []domain.DailyEntry, error)
}

type SadhnaHandler struct {
	svc  SadhnaService
	uSvc UserService
}

func NewSadhnaHandler(svc SadhnaService, uSvc UserService) *SadhnaHandler {
	return &SadhnaHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleUpsertEntry godoc
// @Summary      Create or overwrite one day's entry
// @Description  The entry's score is recomputed from the submitted fields. Resubmitting the same day overwrites the previous entry.
// @Tags         sadhna
// @Produce      json
// @Param        request   body      request.UpsertEntryRequest true "request body"
// @Success      200      {object}   response.EntryResponse
// @Success      201      {object}   response.EntryResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Router       /sadhna [post]
// @Security BearerAuth
func (h *SadhnaHandler) HandleUpsertEntry(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpsertEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, created, err := h.svc.UpsertEntry(ctx.Request.Context(), user.ID, req.ID, req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleUpsertEntry -> h.svc.UpsertEntry -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	status := http.StatusOK
	message := "Sadhna entry updated successfully"
	if created {
		status = http.StatusCreated
		message = "Sadhna entry saved successfully"
	}

	ctx.JSON(status, response.EntryResponse{Message: message, Entry: entry})
}

// HandleGetMyEntries godoc
// @Summary      List the caller's entries
// @Tags         sadhna
// @Produce      json
// @Param        startDate query     string false "range start (yyyy-mm-dd)"
// @Param        endDate   query     string false "range end (yyyy-mm-dd)"
// @Param        limit     query     int    false "maximum rows"
// @Success      200      {array}    domain.DailyEntry
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Router       /sadhna/my-entries [get]
// @Security BearerAuth
func (h *SadhnaHandler) HandleGetMyEntries(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	start, err := parseDateQuery(ctx, "startDate")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	end, err := parseDateQuery(ctx, "endDate")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid limit")))
			return
		}
	}

	entries, err := h.svc.MyEntries(ctx.Request.Context(), user.ID, start, end, limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMyEntries -> h.svc.MyEntries -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// HandleDeleteEntry godoc
// @Summary      Delete one of the caller's entries
// @Tags         sadhna
// @Produce      json
// @Param        id   path      int true "entry ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /sadhna/{id} [delete]
// @Security BearerAuth
func (h *SadhnaHandler) HandleDeleteEntry(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	entryID, err := parseUintParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteEntry(ctx.Request.Context(), user.ID, entryID); err != nil {
		switch {
		case errors.Is(err, service.ErrEntryNotFound):
			response.RenderErr(ctx, response.ErrNotFound("entry", "ID", entryID))
		case errors.Is(err, service.ErrNotEntryOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		default:
			err = fmt.Errorf("v1.HandleDeleteEntry -> h.svc.DeleteEntry -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Sadhna entry deleted successfully"})
}

// HandleGetDevoteesEntries godoc
// @Summary      List a mentor's devotees' entries, optionally for one day
// @Tags         sadhna
// @Produce      json
// @Param        date query     string false "day (yyyy-mm-dd); omit for the full history"
// @Success      200  {array}   domain.DailyEntry
// @Failure      403  {object}  response.Err
// @Router       /sadhna/devotees-entries [get]
// @Security BearerAuth
func (h *SadhnaHandler) HandleGetDevoteesEntries(ctx *gin.Context) {
	mentor, ok := requireRole(ctx, h.uSvc, domain.RoleMentor)
	if !ok {
		return
	}

	// An absent date means the whole history, not just today.
	date, err := parseDateQuery(ctx, "date")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entries, err := h.svc.DevoteesEntries(ctx.Request.Context(), mentor.ID, date)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDevoteesEntries -> h.svc.DevoteesEntries -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// HandleGetDevoteeHistory godoc
// @Summary      Full entry history for one of the mentor's devotees
// @Tags         sadhna
// @Produce      json
// @Param        devoteeId path      int true "devotee ID"
// @Success      200      {object}   response.HistoryResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /sadhna/devotee-history/{devoteeId} [get]
// @Security BearerAuth
func (h *SadhnaHandler) HandleGetDevoteeHistory(ctx *gin.Context) {
	mentor, ok := requireRole(ctx, h.uSvc, domain.RoleMentor)
	if !ok {
		return
	}

	devoteeID, err := parseUintParam(ctx, "devoteeId")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	devotee, entries, err := h.svc.DevoteeHistory(ctx.Request.Context(), mentor.ID, devoteeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("devotee", "ID", devoteeID))
		case errors.Is(err, service.ErrNotYourDevotee):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		default:
			err = fmt.Errorf("v1.HandleGetDevoteeHistory -> h.svc.DevoteeHistory -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.HistoryResponse{Devotee: devotee.Summary(), Entries: entries})
}

// HandleGetPeerDevotees godoc
// @Summary      List the devotees who share a mentor with the caller
// @Tags         sadhna
// @Produce      json
// @Success      200  {array}   domain.UserSummary
// @Failure      400  {object}  response.Err
// @Router       /sadhna/peer-devotees [get]
// @Security BearerAuth
func (h *SadhnaHandler) HandleGetPeerDevotees(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	peers, err := h.svc.PeerDevotees(ctx.Request.Context(), user)
	if err != nil {
		if errors.Is(err, service.ErrNoMentorAssigned) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleGetPeerDevotees -> h.svc.PeerDevotees -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	summaries := make([]domain.UserSummary, 0, len(peers))
	for _, p := range peers {
		summaries = append(summaries, p.Summary())
	}

	ctx.JSON(http.StatusOK, summaries)
}

// HandleGetPeerEntries godoc
// @Summary      Peer-group entries, optionally for one day
// @Tags         sadhna
// @Produce      json
// @Param        date query     string false "day (yyyy-mm-dd); omit for the full history"
// @Success      200  {array}   domain.DailyEntry
// @Failure      400  {object}  response.Err
// @Router       /sadhna/peer-entries [get]
// @Security BearerAuth
func (h *SadhnaHandler) HandleGetPeerEntries(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	// An absent date means the whole history, not just today.
	date, err := parseDateQuery(ctx, "date")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entries, err := h.svc.PeerEntries(ctx.Request.Context(), user, date)
	if err != nil {
		if errors.Is(err, service.ErrNoMentorAssigned) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleGetPeerEntries -> h.svc.PeerEntries -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// HandleGetPeerHistory godoc
// @Summary      Full entry history for one of the caller's peers
// @Tags         sadhna
// @Produce      json
// @Param        peerId path     int true "peer devotee ID"
// @Success      200   {object}  response.HistoryResponse
// @Failure      403   {object}  response.Err
// @Failure      404   {object}  response.Err
// @Router       /sadhna/peer-history/{peerId} [get]
// @Security BearerAuth
func (h *SadhnaHandler) HandleGetPeerHistory(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	peerID, err := parseUintParam(ctx, "peerId")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	peer, entries, err := h.svc.PeerHistory(ctx.Request.Context(), user, peerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("devotee", "ID", peerID))
		case errors.Is(err, service.ErrNoMentorAssigned):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrNotYourDevotee):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		default:
			err = fmt.Errorf("v1.HandleGetPeerHistory -> h.svc.PeerHistory -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.HistoryResponse{Devotee: peer.Summary(), Entries: entries})
}
