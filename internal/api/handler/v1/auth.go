package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harismriti/sadhna-api/internal/api/handler/v1/request"
	"github.com/harismriti/sadhna-api/internal/api/handler/v1/response"
	"github.com/harismriti/sadhna-api/internal/config"
	"github.com/harismriti/sadhna-api/internal/domain"
	"github.com/harismriti/sadhna-api/internal/pkg/jwthelper"
	"github.com/harismriti/sadhna-api/internal/service"
)

type AuthService interface {
	Register(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	UpdateProfile(ctx context.Context, userID uint, update service.ProfileUpdate) (domain.User, error)
	GetMentors(ctx context.Context) ([]domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
	uSvc UserService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService, uSvc UserService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleRegister godoc
// @Summary      Register a new mentor or devotee
// @Tags         auth
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      201      {object}   response.AuthResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Register(ctx.Request.Context(), domain.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Phone:       req.Phone,
		Role:        req.Role,
		MentorIDs:   req.MentorIDs,
		DevoteeType: req.DevoteeType,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) || errors.Is(err, service.ErrInvalidMentors) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleRegister -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewAuthResponse(user, token))
}

// HandleLogin godoc
// @Summary      Login a user
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.AuthResponse
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewAuthResponse(user, token))
}

// HandleGetMe godoc
// @Summary      Get current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.AuthResponse
// @Failure      401  {object}  response.Err
// @Router       /auth/me [get]
// @Security BearerAuth
func (h *AuthHandler) HandleGetMe(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, response.NewAuthResponse(user, ""))
}

// HandleUpdateProfile godoc
// @Summary      Update current user profile
// @Description  Mutates name, phone, devotee type and the mentor list. Role and email never change.
// @Tags         auth
// @Produce      json
// @Param        request   body      request.UpdateProfileRequest true "request body"
// @Success      200      {object}   response.AuthResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Router       /auth/profile [put]
// @Security BearerAuth
func (h *AuthHandler) HandleUpdateProfile(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.uSvc.UpdateProfile(ctx.Request.Context(), user.ID, service.ProfileUpdate{
		Name:        req.Name,
		Phone:       req.Phone,
		DevoteeType: req.DevoteeType,
		MentorIDs:   req.MentorIDs,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidMentors) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateProfile -> h.uSvc.UpdateProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewAuthResponse(updated, ""))
}

// HandleGetMentors godoc
// @Summary      List active mentors for the registration form
// @Tags         auth
// @Produce      json
// @Success      200  {array}   domain.UserSummary
// @Failure      500  {object}  response.Err
// @Router       /auth/mentors [get]
func (h *AuthHandler) HandleGetMentors(ctx *gin.Context) {
	mentors, err := h.uSvc.GetMentors(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMentors -> h.uSvc.GetMentors -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	summaries := make([]domain.UserSummary, 0, len(mentors))
	for _, m := range mentors {
		summaries = append(summaries, domain.UserSummary{ID: m.ID, Name: m.Name, Email: m.Email})
	}

	ctx.JSON(http.StatusOK, summaries)
}
