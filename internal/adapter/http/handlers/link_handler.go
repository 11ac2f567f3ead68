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

type LinkHandler struct {
	usecase usecase.ILinkUseCase
}

func NewLinkHandler(uc usecase.ILinkUseCase) *LinkHandler {
	return &LinkHandler{usecase: uc}
}

func (h *LinkHandler) RequestLink(c *gin.Context) {
	var payload request.LinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	link, err := h.usecase.Request(c.Request.Context(), payload.ToEntity(), payload.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromLink(link))
}

func (h *LinkHandler) ListLinks(c *gin.Context) {
	links, err := h.usecase.List(c.Request.Context(), middleware.ActorFrom(c), filterFromQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromList(links, response.FromLink))
}

func (h *LinkHandler) GetLink(c *gin.Context) {
	link, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), middleware.ActorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLink(link))
}

func (h *LinkHandler) ApproveLink(c *gin.Context) {
	h.transition(c, func(ctx context.Context, id string, call usecase.Call, _ string) (entities.ConsumerLink, error) {
		return h.usecase.Approve(ctx, id, call)
	})
}

func (h *LinkHandler) RejectLink(c *gin.Context) {
	h.transition(c, h.usecase.Reject)
}

func (h *LinkHandler) UnlinkConsumer(c *gin.Context) {
	h.transition(c, h.usecase.Unlink)
}

func (h *LinkHandler) BlockLink(c *gin.Context) {
	h.transition(c, h.usecase.Block)
}

func (h *LinkHandler) UnblockLink(c *gin.Context) {
	h.transition(c, h.usecase.Unblock)
}

func (h *LinkHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, linkID string, call usecase.Call, reason string) (entities.ConsumerLink, error),
) {
	var payload request.TransitionRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	link, err := apply(c.Request.Context(), c.Param("id"), callFrom(c, payload.Version), payload.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLink(link))
}
