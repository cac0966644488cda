package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/adapter/observ"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/adapter/qr"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/logging"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/usecase"
)

// OperatorHandler serves the operator console: the triage board and
// its actions, the menu editor storage, table management, QR export
// and description suggestions.
type OperatorHandler struct {
	dashboard  *usecase.Dashboard
	transition *usecase.Transition
	suggest    *usecase.Suggest
	menu       usecase.MenuRepo
	baseURL    string
}

func NewOperatorHandler(dashboard *usecase.Dashboard, transition *usecase.Transition, suggest *usecase.Suggest, menu usecase.MenuRepo, baseURL string) *OperatorHandler {
	return &OperatorHandler{
		dashboard:  dashboard,
		transition: transition,
		suggest:    suggest,
		menu:       menu,
		baseURL:    baseURL,
	}
}

// Dashboard returns the triage board: pending, preparing and served
// columns. Cancelled orders stay in the store but are not shown.
func (h *OperatorHandler) Dashboard(c *gin.Context) {
	board, err := h.dashboard.Board(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusOK, board)
}

// Start moves a pending order into preparation.
func (h *OperatorHandler) Start(c *gin.Context) {
	h.applyTransition(c, entity.StatusPreparing)
}

// Ready marks a preparing order as served.
func (h *OperatorHandler) Ready(c *gin.Context) {
	h.applyTransition(c, entity.StatusServed)
}

// Cancel cancels a not-yet-served order.
func (h *OperatorHandler) Cancel(c *gin.Context) {
	h.applyTransition(c, entity.StatusCancelled)
}

// applyTransition drives one lifecycle move. An action racing with
// another path (the order already left the column, or is gone) is a
// no-op, reported as changed=false rather than an error.
func (h *OperatorHandler) applyTransition(c *gin.Context, to entity.OrderStatus) {
	id := c.Param("id")

	order, err := h.transition.Execute(c.Request.Context(), id, to)
	switch {
	case errors.Is(err, usecase.ErrUnknownOrder), errors.Is(err, usecase.ErrInvalidTransition):
		logging.From(c).Info("stale transition ignored", "order_id", id, "to", string(to))
		c.JSON(http.StatusOK, gin.H{"changed": false})
	case err != nil:
		logging.From(c).Error("transition failed", "order_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
	default:
		observ.StatusTransitions.WithLabelValues(string(to)).Inc()
		c.JSON(http.StatusOK, gin.H{"changed": true, "order": order})
	}
}

// GetRestaurant returns the full menu/restaurant configuration blob.
func (h *OperatorHandler) GetRestaurant(c *gin.Context) {
	r, err := h.menu.Restaurant(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// ReplaceRestaurant commits a full replacement of the configuration
// blob, the save button of the visual editor.
func (h *OperatorHandler) ReplaceRestaurant(c *gin.Context) {
	var r entity.Restaurant
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	if err := h.menu.Replace(c.Request.Context(), r); err != nil {
		logging.From(c).Error("menu replace failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusOK, r)
}

type addTableReq struct {
	Table string `json:"table" binding:"required"`
}

// AddTable registers a new table label.
func (h *OperatorHandler) AddTable(c *gin.Context) {
	var req addTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	r, err := h.menu.AddTable(c.Request.Context(), req.Table)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateTable) {
			c.JSON(http.StatusConflict, gin.H{"error": "duplicate_table"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// TableQR renders the shareable QR code PNG for a table.
func (h *OperatorHandler) TableQR(c *gin.Context) {
	tableID := c.Param("table")
	shareURL, err := qr.ShareURL(h.baseURL, tableID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	png, err := qr.PNG(shareURL, qr.ExportSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// SuggestDescription asks the text-suggestion service for a
// description of the item in the requested language. An empty
// suggestion means "nothing available"; the editor keeps its current
// text.
func (h *OperatorHandler) SuggestDescription(c *gin.Context) {
	itemID := c.Param("id")
	lang := entity.ParseLanguage(c.Query("lang"))

	text, err := h.suggest.Execute(c.Request.Context(), itemID, lang)
	switch {
	case errors.Is(err, usecase.ErrUnknownItem):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown_item"})
	case errors.Is(err, usecase.ErrSuggestionInFlight):
		observ.Suggestions.WithLabelValues("busy").Inc()
		c.JSON(http.StatusConflict, gin.H{"error": "suggestion_in_flight"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
	case text == "":
		observ.Suggestions.WithLabelValues("empty").Inc()
		c.JSON(http.StatusOK, gin.H{"suggestion": ""})
	default:
		observ.Suggestions.WithLabelValues("ok").Inc()
		c.JSON(http.StatusOK, gin.H{"suggestion": text})
	}
}
