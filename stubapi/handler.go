package stubapi

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/clients"
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler is an in-memory shopcart API speaking one endpoint Variant. It
// stands in for the real service in local runs and tests.
type Handler struct {
	mu         sync.RWMutex
	carts      map[int64]*models.Shopcart
	nextCartID int64
	nextItemID int64
	variant    clients.Variant
	logger     *zap.Logger
}

func NewHandler(variant clients.Variant, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("stubapi.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stubapi.handler")
	}
	return &Handler{
		carts:      make(map[int64]*models.Shopcart),
		nextCartID: 1,
		nextItemID: 1,
		variant:    variant,
		logger:     l,
	}
}

// CustomerID is a pointer so that "required" accepts customer 0.
type createShopcartRequest struct {
	CustomerID *int64        `json:"customer_id" binding:"required"`
	Items      []models.Item `json:"items"`
}

type updateShopcartRequest struct {
	ID         *int64        `json:"id"`
	CustomerID *int64        `json:"customer_id" binding:"required"`
	Items      []models.Item `json:"items"`
}

type checkoutRequest struct {
	Items []struct {
		ID int64 `json:"id"`
	} `json:"items" binding:"required,min=1"`
}

type addItemRequest struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name" binding:"required"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
	Color    *string `json:"color"`
}

// CreateShopcart handles POST {base}
func (h *Handler) CreateShopcart(c *gin.Context) {
	var req createShopcartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	cart := &models.Shopcart{
		ID:         h.nextCartID,
		CustomerID: *req.CustomerID,
	}
	items, dup, ok := h.newItemsLocked(cart.ID, req.Items)
	if !ok {
		h.mu.Unlock()
		itemConflict(c, dup, cart.ID)
		return
	}
	cart.Items = items
	h.nextCartID++
	h.carts[cart.ID] = cart
	resp := cloneShopcart(cart)
	h.mu.Unlock()

	h.logger.Info("created shopcart", zap.Int64("shopcart_id", resp.ID), zap.Int64("customer_id", resp.CustomerID))

	c.Header("Location", fmt.Sprintf("%s/%d", h.variant.BasePath, resp.ID))
	c.JSON(http.StatusCreated, resp)
}

// ListShopcarts handles GET {base} with optional id and customer_id filters
func (h *Handler) ListShopcarts(c *gin.Context) {
	var (
		idFilter, customerFilter int64
		err                      error
	)
	if raw := c.Query(h.variant.SearchIDKey); raw != "" {
		if idFilter, err = strconv.ParseInt(raw, 10, 64); err != nil {
			badRequest(c, fmt.Sprintf("Invalid %s query parameter", h.variant.SearchIDKey), err)
			return
		}
	}
	if raw := c.Query("customer_id"); raw != "" {
		if customerFilter, err = strconv.ParseInt(raw, 10, 64); err != nil {
			badRequest(c, "Invalid customer_id query parameter", err)
			return
		}
	}

	h.mu.RLock()
	carts := make([]models.Shopcart, 0, len(h.carts))
	for _, cart := range h.carts {
		if idFilter != 0 && cart.ID != idFilter {
			continue
		}
		if customerFilter != 0 && cart.CustomerID != customerFilter {
			continue
		}
		carts = append(carts, cloneShopcart(cart))
	}
	h.mu.RUnlock()

	sort.Slice(carts, func(i, j int) bool { return carts[i].ID < carts[j].ID })

	if h.variant.ListWrapperKey != "" {
		c.JSON(http.StatusOK, gin.H{h.variant.ListWrapperKey: carts})
		return
	}
	c.JSON(http.StatusOK, carts)
}

// GetShopcart handles GET {base}/:shopcartId
func (h *Handler) GetShopcart(c *gin.Context) {
	cartID, ok := shopcartIDParam(c)
	if !ok {
		return
	}

	h.mu.RLock()
	cart, exists := h.carts[cartID]
	var resp models.Shopcart
	if exists {
		resp = cloneShopcart(cart)
	}
	h.mu.RUnlock()

	if !exists {
		shopcartNotFound(c, cartID)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateShopcart handles PUT {base}/:shopcartId. The customer is replaced;
// items are replaced only when the body carries them.
func (h *Handler) UpdateShopcart(c *gin.Context) {
	cartID, ok := shopcartIDParam(c)
	if !ok {
		return
	}

	var req updateShopcartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	if req.ID != nil && *req.ID != cartID {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: fmt.Sprintf("Shopcart id '%d' in the body does not match '%d' in the path.", *req.ID, cartID),
		})
		return
	}

	h.mu.Lock()
	cart, exists := h.carts[cartID]
	if !exists {
		h.mu.Unlock()
		shopcartNotFound(c, cartID)
		return
	}
	if req.Items != nil {
		items, dup, ok := h.newItemsLocked(cartID, req.Items)
		if !ok {
			h.mu.Unlock()
			itemConflict(c, dup, cartID)
			return
		}
		cart.Items = items
	}
	cart.CustomerID = *req.CustomerID
	resp := cloneShopcart(cart)
	h.mu.Unlock()

	h.logger.Info("updated shopcart", zap.Int64("shopcart_id", cartID), zap.Int64("customer_id", resp.CustomerID))
	c.JSON(http.StatusOK, resp)
}

// Checkout handles POST {base}/:shopcartId/checkout. Every listed item must
// be in the cart; they are removed together and returned. An empty cart
// answers 403.
func (h *Handler) Checkout(c *gin.Context) {
	cartID, ok := shopcartIDParam(c)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid checkout: body of request contained bad or no data", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	cart, exists := h.carts[cartID]
	if !exists {
		shopcartNotFound(c, cartID)
		return
	}
	if len(cart.Items) == 0 {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "FORBIDDEN",
			Message: fmt.Sprintf("Shopcart with id '%d' has no items to check out.", cartID),
		})
		return
	}

	wanted := make(map[int64]bool, len(req.Items))
	for _, it := range req.Items {
		if indexOfItem(cart.Items, it.ID) < 0 {
			itemNotFound(c, it.ID)
			return
		}
		wanted[it.ID] = true
	}

	out := make([]models.Item, 0, len(wanted))
	kept := make([]models.Item, 0, len(cart.Items))
	for _, item := range cart.Items {
		if wanted[item.ID] {
			out = append(out, item)
			continue
		}
		kept = append(kept, item)
	}
	cart.Items = kept

	h.logger.Info("checked out items", zap.Int64("shopcart_id", cartID), zap.Int("items", len(out)))
	c.JSON(http.StatusOK, models.ItemList{Items: out})
}

// DeleteShopcart handles DELETE {base}/:shopcartId. Deleting a missing
// shopcart still answers 204.
func (h *Handler) DeleteShopcart(c *gin.Context) {
	cartID, ok := shopcartIDParam(c)
	if !ok {
		return
	}

	h.mu.Lock()
	delete(h.carts, cartID)
	h.mu.Unlock()

	h.logger.Info("deleted shopcart", zap.Int64("shopcart_id", cartID))
	c.Status(http.StatusNoContent)
}

// ResetShopcart handles PUT {base}/:shopcartId/reset
func (h *Handler) ResetShopcart(c *gin.Context) {
	cartID, ok := shopcartIDParam(c)
	if !ok {
		return
	}

	h.mu.Lock()
	cart, exists := h.carts[cartID]
	var resp models.Shopcart
	if exists {
		cart.Items = []models.Item{}
		resp = cloneShopcart(cart)
	}
	h.mu.Unlock()

	if !exists {
		shopcartNotFound(c, cartID)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddItem handles POST {base}/:shopcartId/items
func (h *Handler) AddItem(c *gin.Context) {
	cartID, ok := shopcartIDParam(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid Item: body of request contained bad or no data", err)
		return
	}

	h.mu.Lock()
	cart, exists := h.carts[cartID]
	if !exists {
		h.mu.Unlock()
		shopcartNotFound(c, cartID)
		return
	}
	item := models.Item{
		ID:       req.ID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
	}
	if req.Color != nil {
		item.Color = *req.Color
	}
	if item.ID != 0 && indexOfItem(cart.Items, item.ID) >= 0 {
		h.mu.Unlock()
		itemConflict(c, item.ID, cartID)
		return
	}
	item = h.newItemLocked(cartID, item)
	cart.Items = append(cart.Items, item)
	resp := cloneShopcart(cart)
	h.mu.Unlock()

	h.logger.Info("added item", zap.Int64("shopcart_id", cartID), zap.Int64("item_id", item.ID))

	c.Header("Location", fmt.Sprintf("%s/%d", h.variant.BasePath, cartID))
	c.JSON(http.StatusCreated, resp)
}

// ListItems handles GET {base}/:shopcartId/items
func (h *Handler) ListItems(c *gin.Context) {
	h.GetShopcart(c)
}

// GetItem handles GET {base}/:shopcartId/items/:itemId
func (h *Handler) GetItem(c *gin.Context) {
	cartID, itemID, ok := itemIDParams(c)
	if !ok {
		return
	}

	h.mu.RLock()
	item, cartFound, itemFound := h.findItemLocked(cartID, itemID)
	h.mu.RUnlock()

	switch {
	case !cartFound:
		shopcartNotFound(c, cartID)
	case !itemFound:
		itemNotFound(c, itemID)
	default:
		c.JSON(http.StatusOK, item)
	}
}

// UpdateItem handles PUT {base}/:shopcartId/items/:itemId with a sparse
// body; only the keys present are changed.
func (h *Handler) UpdateItem(c *gin.Context) {
	cartID, itemID, ok := itemIDParams(c)
	if !ok {
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	cart, exists := h.carts[cartID]
	if !exists {
		shopcartNotFound(c, cartID)
		return
	}
	idx := indexOfItem(cart.Items, itemID)
	if idx < 0 {
		itemNotFound(c, itemID)
		return
	}

	updated := cart.Items[idx]
	if err := applyPatch(&updated, patch); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: err.Error(),
		})
		return
	}
	cart.Items[idx] = updated

	c.JSON(http.StatusOK, updated)
}

// DeleteItem handles DELETE {base}/:shopcartId/items/:itemId
func (h *Handler) DeleteItem(c *gin.Context) {
	cartID, itemID, ok := itemIDParams(c)
	if !ok {
		return
	}

	h.mu.Lock()
	cart, exists := h.carts[cartID]
	if !exists {
		h.mu.Unlock()
		shopcartNotFound(c, cartID)
		return
	}
	idx := indexOfItem(cart.Items, itemID)
	if idx < 0 {
		h.mu.Unlock()
		itemNotFound(c, itemID)
		return
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	h.mu.Unlock()

	h.logger.Info("deleted item", zap.Int64("shopcart_id", cartID), zap.Int64("item_id", itemID))
	c.Status(http.StatusNoContent)
}

// newItemLocked assigns the shopcart and, when the client sent none, an id.
// Callers hold h.mu.
func (h *Handler) newItemLocked(cartID int64, item models.Item) models.Item {
	item.ShopcartID = cartID
	if item.ID == 0 {
		item.ID = h.nextItemID
	}
	if item.ID >= h.nextItemID {
		h.nextItemID = item.ID + 1
	}
	return item
}

// newItemsLocked prepares a full item list for cartID. It reports the
// first repeated item id, if any, and false. Callers hold h.mu.
func (h *Handler) newItemsLocked(cartID int64, in []models.Item) ([]models.Item, int64, bool) {
	items := make([]models.Item, 0, len(in))
	seen := make(map[int64]bool, len(in))
	for _, item := range in {
		if item.ID != 0 {
			if seen[item.ID] {
				return nil, item.ID, false
			}
			seen[item.ID] = true
		}
		items = append(items, item)
	}
	// explicit ids first, so generated ones skip past them
	for i := range items {
		if items[i].ID != 0 {
			items[i] = h.newItemLocked(cartID, items[i])
		}
	}
	for i := range items {
		if items[i].ID == 0 {
			items[i] = h.newItemLocked(cartID, items[i])
		}
	}
	return items, 0, true
}

func (h *Handler) findItemLocked(cartID, itemID int64) (models.Item, bool, bool) {
	cart, exists := h.carts[cartID]
	if !exists {
		return models.Item{}, false, false
	}
	if idx := indexOfItem(cart.Items, itemID); idx >= 0 {
		return cart.Items[idx], true, true
	}
	return models.Item{}, true, false
}

// indexOfItem returns the position of itemID in items, or -1. Item ids are
// unique within a cart.
func indexOfItem(items []models.Item, itemID int64) int {
	for i := range items {
		if items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func applyPatch(item *models.Item, patch map[string]any) error {
	if v, ok := patch["quantity"]; ok {
		n, isNum := v.(float64)
		if !isNum || n != float64(int64(n)) {
			return fmt.Errorf("Invalid Item: quantity must be an integer, got %v", v)
		}
		item.Quantity = int64(n)
	}
	if v, ok := patch["price"]; ok {
		n, isNum := v.(float64)
		if !isNum {
			return fmt.Errorf("Invalid Item: price must be a number, got %v", v)
		}
		item.Price = n
	}
	if v, ok := patch["color"]; ok {
		s, isStr := v.(string)
		if !isStr {
			return fmt.Errorf("Invalid Item: color must be a string, got %v", v)
		}
		item.Color = s
	}
	return nil
}

func cloneShopcart(cart *models.Shopcart) models.Shopcart {
	out := *cart
	out.Items = append([]models.Item{}, cart.Items...)
	return out
}

func shopcartIDParam(c *gin.Context) (int64, bool) {
	cartID, err := strconv.ParseInt(c.Param("shopcartId"), 10, 64)
	if err != nil || cartID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid shopcart ID",
			Details: "Shopcart ID must be a positive integer",
		})
		return 0, false
	}
	return cartID, true
}

func itemIDParams(c *gin.Context) (int64, int64, bool) {
	cartID, ok := shopcartIDParam(c)
	if !ok {
		return 0, 0, false
	}
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || itemID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid item ID",
			Details: "Item ID must be a positive integer",
		})
		return 0, 0, false
	}
	return cartID, itemID, true
}

func badRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "INVALID_INPUT",
		Message: message,
		Details: err.Error(),
	})
}

func shopcartNotFound(c *gin.Context, cartID int64) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "NOT_FOUND",
		Message: fmt.Sprintf("Shopcart with id '%d' could not be found.", cartID),
	})
}

func itemNotFound(c *gin.Context, itemID int64) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "NOT_FOUND",
		Message: fmt.Sprintf("Item with id '%d' could not be found.", itemID),
	})
}

func itemConflict(c *gin.Context, itemID, cartID int64) {
	c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "CONFLICT",
		Message: fmt.Sprintf("Item with id '%d' already exists in shopcart '%d'.", itemID, cartID),
	})
}
