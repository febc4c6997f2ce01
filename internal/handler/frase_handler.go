package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "frases/internal/errors"
	"frases/internal/service"
)

// FraseHandler handles quote submission, listing and moderation endpoints.
type FraseHandler struct {
	fraseService service.FraseService
}

// NewFraseHandler creates a new frase handler.
func NewFraseHandler(fraseService service.FraseService) *FraseHandler {
	return &FraseHandler{fraseService: fraseService}
}

// CreateFraseRequest represents a public quote submission.
type CreateFraseRequest struct {
	Texto string  `json:"texto" validate:"required"`
	Autor *string `json:"autor"`
}

// FijarRequest carries the target value of the pinned flag.
type FijarRequest struct {
	Fijada *bool `json:"fijada" validate:"required"`
}

// SuccessResponse acknowledges a deletion.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CreateFrase godoc
// @Summary Submit a new quote
// @Tags frases
// @Accept json
// @Produce json
// @Param request body CreateFraseRequest true "Quote submission"
// @Success 201 {object} model.Frase
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /frases [post]
func (h *FraseHandler) CreateFrase(c echo.Context) error {
	var req CreateFraseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: apperrors.ErrEmptyTexto.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	frase, err := h.fraseService.Create(c.Request().Context(), req.Texto, req.Autor)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusCreated, frase)
}

// ListPendientes godoc
// @Summary List quotes awaiting moderation
// @Tags frases
// @Produce json
// @Success 200 {array} model.Frase
// @Failure 500 {object} errors.ErrorResponse
// @Router /frases/pendientes [get]
func (h *FraseHandler) ListPendientes(c echo.Context) error {
	frases, err := h.fraseService.ListPending(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, frases)
}

// ListAprobadas godoc
// @Summary List approved quotes, newest first
// @Tags frases
// @Produce json
// @Success 200 {array} model.Frase
// @Failure 500 {object} errors.ErrorResponse
// @Router /frases/aprobadas [get]
func (h *FraseHandler) ListAprobadas(c echo.Context) error {
	frases, err := h.fraseService.ListApproved(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, frases)
}

// ListFrases godoc
// @Summary List every quote regardless of approval state
// @Tags frases
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Frase
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /frases [get]
func (h *FraseHandler) ListFrases(c echo.Context) error {
	frases, err := h.fraseService.ListAll(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, frases)
}

// AprobarFrase godoc
// @Summary Approve a quote
// @Tags frases
// @Produce json
// @Security BearerAuth
// @Param id path int true "Frase ID"
// @Success 200 {object} model.Frase
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /frases/{id}/aprobar [put]
func (h *FraseHandler) AprobarFrase(c echo.Context) error {
	id, err := h.parseID(c)
	if err != nil {
		return err
	}

	frase, err := h.fraseService.Approve(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, frase)
}

// FijarFrase godoc
// @Summary Pin or unpin a quote
// @Tags frases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Frase ID"
// @Param request body FijarRequest true "Pinned flag"
// @Success 200 {object} model.Frase
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /frases/{id}/fijar [put]
func (h *FraseHandler) FijarFrase(c echo.Context) error {
	id, err := h.parseID(c)
	if err != nil {
		return err
	}

	var req FijarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "VALIDATION_ERROR",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "fijada is required",
			Code:  "VALIDATION_ERROR",
		})
	}

	frase, err := h.fraseService.SetPinned(c.Request().Context(), id, *req.Fijada)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, frase)
}

// DeleteFrase godoc
// @Summary Permanently delete a quote
// @Tags frases
// @Produce json
// @Security BearerAuth
// @Param id path int true "Frase ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /frases/{id} [delete]
func (h *FraseHandler) DeleteFrase(c echo.Context) error {
	id, err := h.parseID(c)
	if err != nil {
		return err
	}

	if err := h.fraseService.Delete(c.Request().Context(), id); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *FraseHandler) parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "VALIDATION_ERROR",
		})
	}
	return uint(id), nil
}

// mapError converts service errors to HTTP responses, logging storage
// failures server-side instead of leaking them to the client.
func (h *FraseHandler) mapError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Errorf("frase handler: %v", err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
