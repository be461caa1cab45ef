package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/blog-backend/internal/domain/errors"
	"github.com/rafabene/blog-backend/internal/handlers/dto"
	"github.com/rafabene/blog-backend/internal/services"
)

// AccountHandler lida com cadastro, login e atualização de usuários
type AccountHandler struct {
	accountService *services.AccountService
}

// NewAccountHandler cria um novo AccountHandler
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Register cadastra um usuário
//
//	@Summary	Register a user
//	@Tags		accounts
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.RegisterRequest	true	"New user"
//	@Success	201		{object}	dto.UserEnvelope
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/api/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.accountService.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UserEnvelope{
		Success: true,
		Message: dto.T(c, "message.registered"),
		User:    dto.ToUserResponse(user),
	})
}

// Login verifica credenciais; não há sessão nem token
//
//	@Summary	Log in
//	@Tags		accounts
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.LoginRequest	true	"Credentials"
//	@Success	200		{object}	dto.LoginResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/api/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.accountService.Login(c.Request.Context(), services.LoginInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: dto.T(c, "message.login_successful"),
		User:    dto.ToUserResponse(user),
		UserID:  user.ID,
	})
}

// GetUser busca um usuário por ID
//
//	@Summary	Get a user
//	@Tags		accounts
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	dto.UserEnvelope
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/api/users/{id} [get]
func (h *AccountHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, errors.ErrUserNotFound)
	if !ok {
		return
	}

	user, err := h.accountService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{
		Success: true,
		User:    dto.ToUserResponse(user),
	})
}

// UpdateUser altera nome, email e/ou senha
//
//	@Summary	Update a user
//	@Tags		accounts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"User ID"
//	@Param		body	body		dto.UpdateUserRequest	true	"Fields to change"
//	@Success	200		{object}	dto.UserEnvelope
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/api/users/{id} [put]
func (h *AccountHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, errors.ErrUserNotFound)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.accountService.UpdateUser(c.Request.Context(), id, services.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{
		Success: true,
		Message: dto.T(c, "message.user_updated"),
		User:    dto.ToUserResponse(user),
	})
}
