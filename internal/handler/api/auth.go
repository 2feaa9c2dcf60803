package api

import (
	"errors"
	"net/http"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/user"
	reqdto "github.com/Sannikov1993/PosResto-sub020/internal/handler/dto/request"
	resdto "github.com/Sannikov1993/PosResto-sub020/internal/handler/dto/response"
	"github.com/Sannikov1993/PosResto-sub020/internal/handler/httperr"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth usecase.AuthUseCase
}

func NewAuthHandler(auth usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	email, err := user.NewEmail(req.Email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email format", nil)
		return
	}

	pass, err := user.NewPassword(req.Password)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized,
			usecase.ErrInvalidCredentials, "Invalid email or password", nil)
		return
	}

	token, account, err := h.auth.Login(c.Request.Context(), email, pass)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound),
			errors.Is(err, usecase.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized,
				err, "Invalid email or password", nil)
		case errors.Is(err, usecase.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden,
				err, "Account is deactivated", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError,
				err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUser(token, account))
}
