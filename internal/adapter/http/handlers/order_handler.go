package handlers

import (
	"context"
	"net/http"

	request "supplyops/internal/adapter/http/dto/request"
	response "supplyops/internal/adapter/http/dto/response"
	"supplyops/internal/adapter/http/middleware"
	"supplyops/internal/domain/entities"
	"supplyops/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// SubmitOrder records a consumer order in NEW.
//
// @Summary  Submit an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order  body      request.SubmitOrderRequest  true  "Order"
// @Success  201    {object}  response.OrderResponse
// @Failure  400    {object}  pkg.HTTPError
// @Router   /orders [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var payload request.SubmitOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	order, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// @Summary  List orders
// @Tags     orders
// @Produce  json
// @Param    status  query  string  false  "Status"
// @Param    q       query  string  false  "Free text on id or consumer"
// @Success  200  {array}   response.OrderResponse
// @Router   /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context(), middleware.ActorFrom(c), filterFromQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromList(orders, response.FromOrder))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), middleware.ActorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// AcceptOrder moves a NEW order to IN_PROGRESS.
//
// @Summary  Accept an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id    path      string                       true   "Order id"
// @Param    body  body      request.TransitionRequest    false  "Expected version"
// @Success  200   {object}  response.OrderResponse
// @Failure  403   {object}  pkg.HTTPError
// @Failure  409   {object}  pkg.HTTPError
// @Router   /orders/{id}/accept [patch]
func (h *OrderHandler) AcceptOrder(c *gin.Context) {
	h.transition(c, h.usecase.Accept)
}

func (h *OrderHandler) RejectOrder(c *gin.Context) {
	h.transition(c, h.usecase.Reject)
}

func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	h.transition(c, h.usecase.Complete)
}

// AmendItems replaces the items of an order that is not yet terminal.
func (h *OrderHandler) AmendItems(c *gin.Context) {
	var payload request.AmendItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	order, err := h.usecase.AmendItems(c.Request.Context(), c.Param("id"), callFrom(c, payload.Version), payload.OrderItems())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, orderID string, call usecase.Call) (entities.Order, error),
) {
	var payload request.TransitionRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	order, err := apply(c.Request.Context(), c.Param("id"), callFrom(c, payload.Version))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}
