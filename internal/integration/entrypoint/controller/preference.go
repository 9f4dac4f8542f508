// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocketfin/backend/internal/application/usecase/preference"
	"github.com/pocketfin/backend/internal/integration/entrypoint/dto"
	"github.com/pocketfin/backend/internal/integration/entrypoint/middleware"
)

// PreferenceController handles user-preference endpoints.
type PreferenceController struct {
	getUseCase    *preference.GetPreferencesUseCase
	updateUseCase *preference.UpdatePreferencesUseCase
}

// NewPreferenceController creates a new preference controller instance.
func NewPreferenceController(
	getUseCase *preference.GetPreferencesUseCase,
	updateUseCase *preference.UpdatePreferencesUseCase,
) *PreferenceController {
	return &PreferenceController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /preferences requests.
func (c *PreferenceController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), preference.GetPreferencesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve preferences",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPreferencesResponse(output.Preferences))
}

// Update handles PUT /preferences requests.
func (c *PreferenceController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), preference.UpdatePreferencesInput{
		UserID:               userID,
		Currency:             req.Currency,
		DateFormat:           req.DateFormat,
		Theme:                req.Theme,
		NotificationsEnabled: req.NotificationsEnabled,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update preferences",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPreferencesResponse(output.Preferences))
}
