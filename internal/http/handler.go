package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"vehicle-lookup-service/internal/http/middleware"
	"vehicle-lookup-service/internal/model"
	"vehicle-lookup-service/internal/service"
)

type Handler struct {
	lookupService  *service.LookupService
	historyService *service.HistoryService
	log            zerolog.Logger
}

func NewHandler(
	lookupService *service.LookupService,
	historyService *service.HistoryService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		lookupService:  lookupService,
		historyService: historyService,
		log:            log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware, optionalAuthMiddleware gin.HandlerFunc) {
	// scanning works anonymously; a valid token additionally enables history
	scans := r.Group("/api/v1")
	scans.Use(optionalAuthMiddleware)
	{
		scans.POST("/scans", h.resolveScan)
		scans.POST("/plates/lookup", h.lookupPlate)
	}

	protected := r.Group("/api/v1")
	protected.Use(authMiddleware)
	{
		protected.GET("/history", h.getHistory)
	}
}

func (h *Handler) resolveScan(c *gin.Context) {
	var req struct {
		Fragments []model.RawFragment `json:"fragments" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	principal := principalOrNil(c)

	result, err := h.lookupService.ResolveScan(c.Request.Context(), principal, req.Fragments)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) lookupPlate(c *gin.Context) {
	var req struct {
		Plate string `json:"plate" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	principal := principalOrNil(c)

	result, err := h.lookupService.ResolveText(c.Request.Context(), principal, strings.TrimSpace(req.Plate))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) getHistory(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	items, err := h.historyService.GetHistory(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(items))
}

func principalOrNil(c *gin.Context) *model.Principal {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return nil
	}
	return &principal
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
