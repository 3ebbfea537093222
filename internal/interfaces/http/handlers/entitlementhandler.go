package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darasa-app/darasa/internal/application/entitlement/usecases"
	"github.com/darasa-app/darasa/internal/shared/constants"
	"github.com/darasa-app/darasa/internal/shared/logger"
	"github.com/darasa-app/darasa/internal/shared/utils"
)

// EntitlementHandler lets an authenticated user inspect their own
// entitlement snapshot.
type EntitlementHandler struct {
	getEntitlements *usecases.GetUserEntitlementsUseCase
	logger          logger.Interface
}

func NewEntitlementHandler(getEntitlements *usecases.GetUserEntitlementsUseCase, logger logger.Interface) *EntitlementHandler {
	return &EntitlementHandler{
		getEntitlements: getEntitlements,
		logger:          logger,
	}
}

// GetMyEntitlements handles GET /users/me/entitlements
func (h *EntitlementHandler) GetMyEntitlements(c *gin.Context) {
	userSID := c.GetString(constants.ContextKeyUserSID)
	if userSID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.getEntitlements.ExecuteResponse(c.Request.Context(), userSID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "entitlements retrieved successfully", result)
}
