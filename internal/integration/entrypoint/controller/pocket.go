// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketfin/backend/internal/application/usecase/pocket"
	domainerror "github.com/pocketfin/backend/internal/domain/error"
	"github.com/pocketfin/backend/internal/integration/entrypoint/dto"
	"github.com/pocketfin/backend/internal/integration/entrypoint/middleware"
)

// PocketController handles pocket endpoints.
type PocketController struct {
	listUseCase     *pocket.ListPocketsUseCase
	createUseCase   *pocket.CreatePocketUseCase
	updateUseCase   *pocket.UpdatePocketUseCase
	deleteUseCase   *pocket.DeletePocketUseCase
	transferUseCase *pocket.TransferUseCase
}

// NewPocketController creates a new pocket controller instance.
func NewPocketController(
	listUseCase *pocket.ListPocketsUseCase,
	createUseCase *pocket.CreatePocketUseCase,
	updateUseCase *pocket.UpdatePocketUseCase,
	deleteUseCase *pocket.DeletePocketUseCase,
	transferUseCase *pocket.TransferUseCase,
) *PocketController {
	return &PocketController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		transferUseCase: transferUseCase,
	}
}

// List handles GET /pockets requests.
func (c *PocketController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), pocket.ListPocketsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve pockets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPocketListResponse(output.Pockets))
}

// Create handles POST /pockets requests.
func (c *PocketController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreatePocketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingPocketFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), pocket.CreatePocketInput{
		UserID:    userID,
		Name:      req.Name,
		Icon:      req.Icon,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		c.handlePocketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPocketResponse(output.Pocket))
}

// Update handles PATCH /pockets/:id requests.
func (c *PocketController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	pocketID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid pocket ID format"})
		return
	}

	var req dto.UpdatePocketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), pocket.UpdatePocketInput{
		PocketID:  pocketID,
		UserID:    userID,
		Name:      req.Name,
		Icon:      req.Icon,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		c.handlePocketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPocketResponse(output.Pocket))
}

// Delete handles DELETE /pockets/:id requests.
func (c *PocketController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	pocketID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid pocket ID format"})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), pocket.DeletePocketInput{
		PocketID: pocketID,
		UserID:   userID,
	})
	if err != nil {
		c.handlePocketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeletePocketResponse{
		ReassignedTransactions: output.ReassignedTransactions,
	})
}

// Transfer handles POST /pockets/transfer requests.
func (c *PocketController) Transfer(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.TransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidTransfer),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidTransfer),
		})
		return
	}

	fromPocketID, err := uuid.Parse(req.FromPocketID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid pocket ID format"})
		return
	}
	toPocketID, err := uuid.Parse(req.ToPocketID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid pocket ID format"})
		return
	}

	output, err := c.transferUseCase.Execute(ctx.Request.Context(), pocket.TransferInput{
		UserID:       userID,
		FromPocketID: fromPocketID,
		ToPocketID:   toPocketID,
		Amount:       amount,
	})
	if err != nil {
		c.handlePocketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TransferResponse{
		FromPocket: dto.ToPocketResponse(output.FromPocket),
		ToPocket:   dto.ToPocketResponse(output.ToPocket),
	})
}

// handlePocketError maps pocket errors to HTTP responses.
func (c *PocketController) handlePocketError(ctx *gin.Context, err error) {
	var pktErr *domainerror.PocketError
	if errors.As(err, &pktErr) {
		ctx.JSON(c.getStatusCodeForPocketError(pktErr.Code), dto.ErrorResponse{
			Error: pktErr.Message,
			Code:  string(pktErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPocketError maps pocket error codes to HTTP status codes.
func (c *PocketController) getStatusCodeForPocketError(code domainerror.PocketErrorCode) int {
	switch code {
	case domainerror.ErrCodePocketNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedPocket:
		return http.StatusForbidden
	case domainerror.ErrCodeInsufficientFunds:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeMissingPocketFields,
		domainerror.ErrCodeCannotDeleteDefault,
		domainerror.ErrCodeNoDefaultPocket,
		domainerror.ErrCodeInvalidTransfer:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
