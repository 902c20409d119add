package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/clients"
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ShopcartAPI is the collaborator the controller calls, one method per
// endpoint.
type ShopcartAPI interface {
	CreateShopcart(ctx context.Context, req models.CreateShopcartRequest) (*models.Shopcart, error)
	AddItem(ctx context.Context, shopcartID string, req models.AddItemRequest) error
	GetItem(ctx context.Context, shopcartID, itemID string) (*models.Item, error)
	UpdateItem(ctx context.Context, shopcartID, itemID string, patch models.ItemPatch) (*models.Item, error)
	GetShopcart(ctx context.Context, shopcartID string) (*models.Shopcart, error)
	ListShopcarts(ctx context.Context) ([]models.Shopcart, error)
	SearchShopcarts(ctx context.Context, query string) ([]models.Shopcart, error)
	DeleteItem(ctx context.Context, shopcartID, itemID string) error
	DeleteShopcart(ctx context.Context, shopcartID string) error
	ListItems(ctx context.Context, shopcartID string) ([]models.Item, error)
	ResetShopcart(ctx context.Context, shopcartID string) (*models.Shopcart, error)
	UpdateShopcart(ctx context.Context, shopcartID string, req models.UpdateShopcartRequest) (*models.Shopcart, error)
	Checkout(ctx context.Context, shopcartID string, req models.CheckoutRequest) ([]models.Item, error)
}

// ActivityRecorder receives one event per dispatched action.
type ActivityRecorder interface {
	RecordAction(ctx context.Context, event models.ActionEvent) error
}

// Controller is the I/O wrapper around Apply: it reads the form, sends one
// request and hands the outcome to Apply. It keeps no state between
// actions, so concurrent dispatches never wait on each other.
type Controller struct {
	api      ShopcartAPI
	variant  clients.Variant
	recorder ActivityRecorder
	logger   *zap.Logger
}

// NewController builds a controller; recorder may be nil.
func NewController(api ShopcartAPI, variant clients.Variant, recorder ActivityRecorder, logger ...*zap.Logger) *Controller {
	l := zap.L().Named("console.controller")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("console.controller")
	}
	return &Controller{api: api, variant: variant, recorder: recorder, logger: l}
}

// Dispatch runs one action against the form as it is right now.
func (c *Controller) Dispatch(ctx context.Context, action Action, form models.FormState) (models.FormState, models.RenderedView) {
	if action == ActionClearForm {
		return Apply(action, form, ActionResult{})
	}

	start := time.Now()
	result := c.call(ctx, action, form)
	next, view := Apply(action, form, result)

	logger := c.logger.With(
		zap.String("action", action.String()),
		zap.Duration("took", time.Since(start)),
	)
	if result.Err != nil {
		logger.Warn("console action failed",
			zap.Int("status", clients.StatusCode(result.Err)),
			zap.Error(result.Err),
		)
	} else {
		logger.Info("console action succeeded")
	}

	c.record(ctx, action, form, result, view)
	return next, view
}

func (c *Controller) call(ctx context.Context, action Action, form models.FormState) ActionResult {
	var (
		res ActionResult
		err error
	)

	switch action {
	case ActionCreateShopcart:
		res.Shopcart, err = c.api.CreateShopcart(ctx, CreateShopcartBody(form))
	case ActionAddItem:
		err = c.api.AddItem(ctx, form.ShopcartID, AddItemBody(form))
	case ActionGetItem:
		res.Item, err = c.api.GetItem(ctx, form.ShopcartID, form.ItemID)
	case ActionUpdateItem:
		res.Patch = BuildItemPatch(form)
		res.Item, err = c.api.UpdateItem(ctx, form.ShopcartID, form.ItemID, res.Patch)
	case ActionGetShopcart:
		res.Shopcart, err = c.api.GetShopcart(ctx, form.ShopcartID)
	case ActionListShopcarts:
		res.Shopcarts, err = c.api.ListShopcarts(ctx)
	case ActionDeleteItem:
		err = c.api.DeleteItem(ctx, form.ShopcartID, form.ItemID)
	case ActionDeleteShopcart:
		err = c.api.DeleteShopcart(ctx, form.ShopcartID)
	case ActionSearchShopcarts:
		res.Shopcarts, err = c.api.SearchShopcarts(ctx, BuildSearchQuery(form, c.variant.SearchIDKey))
	case ActionListItems:
		res.Items, err = c.api.ListItems(ctx, form.ShopcartID)
	case ActionResetShopcart:
		res.Shopcart, err = c.api.ResetShopcart(ctx, form.ShopcartID)
	case ActionUpdateShopcart:
		res.Shopcart, err = c.api.UpdateShopcart(ctx, form.ShopcartID, UpdateShopcartBody(form))
	case ActionCheckoutItem:
		res.Items, err = c.api.Checkout(ctx, form.ShopcartID, CheckoutBody(form))
	default:
		err = fmt.Errorf("unknown action %q", action)
	}

	if err != nil {
		return ActionResult{Err: err}
	}
	return res
}

func (c *Controller) record(ctx context.Context, action Action, form models.FormState, result ActionResult, view models.RenderedView) {
	if c.recorder == nil {
		return
	}

	event := models.ActionEvent{
		EventID:    uuid.NewString(),
		Action:     action.String(),
		Outcome:    models.OutcomeSuccess,
		Message:    view.Flash,
		ShopcartID: form.ShopcartID,
		OccurredAt: time.Now().UTC(),
	}
	if result.Err != nil {
		event.Outcome = models.OutcomeFailure
		event.StatusCode = clients.StatusCode(result.Err)
	}

	if err := c.recorder.RecordAction(ctx, event); err != nil {
		c.logger.Warn("failed to record console action",
			zap.String("action", action.String()),
			zap.Error(err),
		)
	}
}
