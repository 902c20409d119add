package handlers

import (
	"context"
	"net/http"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/controller"
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dispatcher runs one console action.
type Dispatcher interface {
	Dispatch(ctx context.Context, action controller.Action, form models.FormState) (models.FormState, models.RenderedView)
}

type ConsoleHandler struct {
	dispatcher Dispatcher
	variant    string
	logger     *zap.Logger
}

// ActionResponse is the JSON answer to an action post.
type ActionResponse struct {
	Form models.FormState    `json:"form"`
	View models.RenderedView `json:"view"`
}

func NewConsoleHandler(d Dispatcher, variant string, logger ...*zap.Logger) *ConsoleHandler {
	l := zap.L().Named("console.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("console.handler")
	}
	return &ConsoleHandler{dispatcher: d, variant: variant, logger: l}
}

// Index handles GET /
func (h *ConsoleHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", views.NewPage(models.FormState{}, models.RenderedView{}, h.variant))
}

// RunAction handles POST /actions/:action
func (h *ConsoleHandler) RunAction(c *gin.Context) {
	action, err := controller.ParseAction(c.Param("action"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Unknown console action",
			Details: err.Error(),
		})
		return
	}

	var form models.FormState
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("failed to bind console form", zap.String("action", action.String()), zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid form submission",
			Details: err.Error(),
		})
		return
	}

	next, view := h.dispatcher.Dispatch(c.Request.Context(), action, form)

	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(http.StatusOK, ActionResponse{Form: next, View: view})
	default:
		c.HTML(http.StatusOK, "index", views.NewPage(next, view, h.variant))
	}
}
