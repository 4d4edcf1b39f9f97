package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrahman/profilio/internal/application/usecase/auth"
	"github.com/hrahman/profilio/pkg/apperror"
)

type AccountHandler struct {
	getAccountUseCase *auth.GetAccountUseCase
}

func NewAccountHandler(uc *auth.GetAccountUseCase) *AccountHandler {
	return &AccountHandler{getAccountUseCase: uc}
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	u, err := h.getAccountUseCase.Execute(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	})
}
