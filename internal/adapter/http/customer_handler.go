package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/adapter/observ"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/entity"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/logging"
	"github.com/Asilbek2706/QR-Menu-Editor/internal/usecase"
)

// CustomerHandler serves the table-scoped customer surface: browse
// the menu, check out a cart, track the active order. It never
// mutates an order after creation.
type CustomerHandler struct {
	place    *usecase.PlaceOrder
	tracking *usecase.Tracking
	menu     usecase.MenuRepo
}

func NewCustomerHandler(place *usecase.PlaceOrder, tracking *usecase.Tracking, menu usecase.MenuRepo) *CustomerHandler {
	return &CustomerHandler{place: place, tracking: tracking, menu: menu}
}

type menuItemView struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           int64    `json:"price"`
	Image           string   `json:"image,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	PrepTimeMinutes int      `json:"prepTimeMinutes,omitempty"`
}

type menuCategoryView struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Items []menuItemView `json:"items"`
}

type menuResponse struct {
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Theme          entity.MenuTheme   `json:"theme"`
	TableID        string             `json:"tableId"`
	Categories     []menuCategoryView `json:"categories"`
	HasActiveOrder bool               `json:"hasActiveOrder"`
}

// Menu returns the localized menu for a table: available items
// grouped by category, plus whether the table already has an active
// order.
func (h *CustomerHandler) Menu(c *gin.Context) {
	tableID := c.Query("table")
	if tableID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "table_required"})
		return
	}
	lang := entity.ParseLanguage(c.Query("lang"))

	r, err := h.menu.Restaurant(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	_, hasActive, err := h.tracking.ActiveForTable(c.Request.Context(), tableID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	resp := menuResponse{
		Name:           r.Name.Localize(lang),
		Description:    r.Description.Localize(lang),
		Theme:          r.Theme,
		TableID:        tableID,
		Categories:     make([]menuCategoryView, 0, len(r.Categories)),
		HasActiveOrder: hasActive,
	}
	for _, cat := range r.Categories {
		cv := menuCategoryView{ID: cat.ID, Name: cat.Name.Localize(lang), Items: []menuItemView{}}
		for _, it := range r.Items {
			if it.Category != cat.ID || !it.IsAvailable {
				continue
			}
			cv.Items = append(cv.Items, menuItemView{
				ID:              it.ID,
				Name:            it.Name.Localize(lang),
				Description:     it.Description.Localize(lang),
				Price:           it.Price,
				Image:           it.Image,
				Tags:            it.Tags,
				PrepTimeMinutes: it.PrepTimeMinutes,
			})
		}
		resp.Categories = append(resp.Categories, cv)
	}
	c.JSON(http.StatusOK, resp)
}

type checkoutReq struct {
	TableID string       `json:"tableId" binding:"required"`
	Cart    usecase.Cart `json:"cart" binding:"required"`
}

// Checkout converts the customer's cart into a pending order.
func (h *CustomerHandler) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	order, err := h.place.Execute(c.Request.Context(), req.TableID, req.Cart)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyCart) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "empty_cart"})
			return
		}
		logging.From(c).Error("checkout failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}

	observ.OrdersPlaced.Inc()
	logging.From(c).Info("order placed",
		"order_id", order.ID, "table", order.TableID, "total", order.TotalPrice)
	c.JSON(http.StatusCreated, order)
}

type trackingResponse struct {
	Active           bool          `json:"active"`
	Order            *entity.Order `json:"order,omitempty"`
	RemainingSeconds int64         `json:"remainingSeconds,omitempty"`
	Headline         string        `json:"headline,omitempty"`
	Subtext          string        `json:"subtext,omitempty"`
	Progress         int           `json:"progress,omitempty"`
}

// TrackOrder returns the live tracking snapshot for the table's
// active order, or an empty state when there is none. The client
// polls this once per second; the countdown clamps at zero while the
// displayed status follows the order status alone.
func (h *CustomerHandler) TrackOrder(c *gin.Context) {
	tableID := c.Param("table")
	lang := entity.ParseLanguage(c.Query("lang"))

	snap, ok, err := h.tracking.ActiveForTable(c.Request.Context(), tableID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
		return
	}
	if !ok {
		c.JSON(http.StatusOK, trackingResponse{Active: false})
		return
	}

	c.JSON(http.StatusOK, trackingResponse{
		Active:           true,
		Order:            &snap.Order,
		RemainingSeconds: snap.RemainingSeconds,
		Headline:         snap.Narrative.Headline.Localize(lang),
		Subtext:          snap.Narrative.Subtext.Localize(lang),
		Progress:         snap.Narrative.Progress,
	})
}
