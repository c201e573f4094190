package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harismriti/sadhna-api/internal/api/handler/v1/response"
	"github.com/harismriti/sadhna-api/internal/api/middleware"
	"github.com/harismriti/sadhna-api/internal/domain"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Hari Smriti API",
		"status":  "running",
	})
}

// getUserFromContext resolves the authenticated user stored by the JWT
// middleware.
func getUserFromContext(ctx *gin.Context, svc UserService) (domain.User, *response.Err) {
	raw, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrTokenInvalid(errors.New("user not authenticated"))
	}

	userID, ok := raw.(uint)
	if !ok {
		return domain.User{}, response.ErrTokenInvalid(errors.New("malformed user id in context"))
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("getUserFromContext -> svc.GetUser -> %w", err))
	}

	return user, nil
}

// requireRole fetches the caller and rejects the request unless they hold
// the wanted role.
func requireRole(ctx *gin.Context, svc UserService, role string) (domain.User, bool) {
	user, respErr := getUserFromContext(ctx, svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return domain.User{}, false
	}

	if user.Role != role {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not a %v", user.ID, role)))
		return domain.User{}, false
	}

	return user, true
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %w", name, err)
	}
	return uint(value), nil
}

// parseDateQuery reads an optional "yyyy-mm-dd" query parameter. The zero
// time means the parameter was absent.
func parseDateQuery(ctx *gin.Context, name string) (time.Time, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %v: %w", name, err)
	}

	return date, nil
}

// parseYearMonthQuery reads optional year/month query parameters, falling
// back to now's calendar month.
func parseYearMonthQuery(ctx *gin.Context, now time.Time) (int, time.Month, error) {
	year := now.Year()
	month := now.Month()

	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year: %w", err)
		}
		year = parsed
	}
	if raw := ctx.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, errors.New("invalid month")
		}
		month = time.Month(parsed)
	}

	return year, month, nil
}
