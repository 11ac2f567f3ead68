package handlers

import (
	"context"
	"net/http"
	"strings"

	request "supplyops/internal/adapter/http/dto/request"
	response "supplyops/internal/adapter/http/dto/response"
	"supplyops/internal/adapter/http/middleware"
	"supplyops/internal/domain/entities"
	"supplyops/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	usecase usecase.IComplaintUseCase
}

func NewComplaintHandler(uc usecase.IComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{usecase: uc}
}

// SubmitComplaint files a complaint against the order in the path.
func (h *ComplaintHandler) SubmitComplaint(c *gin.Context) {
	var payload request.ComplaintRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	complaint, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromComplaint(complaint))
}

func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	complaints, err := h.usecase.List(c.Request.Context(), middleware.ActorFrom(c), filterFromQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromList(complaints, response.FromComplaint))
}

func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	complaint, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), middleware.ActorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromComplaint(complaint))
}

func (h *ComplaintHandler) StartReview(c *gin.Context) {
	h.transition(c, func(ctx context.Context, id string, call usecase.Call, _ string) (entities.Complaint, error) {
		return h.usecase.StartReview(ctx, id, call)
	})
}

// ResolveComplaint takes the resolution note from "reason".
func (h *ComplaintHandler) ResolveComplaint(c *gin.Context) {
	h.transition(c, h.usecase.Resolve)
}

// EscalateComplaint answers with the incident, new or pre-existing.
func (h *ComplaintHandler) EscalateComplaint(c *gin.Context) {
	var payload request.EscalateRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	severity := entities.Severity(strings.ToUpper(strings.TrimSpace(payload.Severity)))
	incident, err := h.usecase.Escalate(c.Request.Context(), c.Param("id"), callFrom(c, payload.Version), severity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromIncident(incident))
}

func (h *ComplaintHandler) AddNote(c *gin.Context) {
	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	complaint, err := h.usecase.AddNote(c.Request.Context(), c.Param("id"), callFrom(c, payload.Version), payload.Note)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromComplaint(complaint))
}

func (h *ComplaintHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, complaintID string, call usecase.Call, note string) (entities.Complaint, error),
) {
	var payload request.TransitionRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	complaint, err := apply(c.Request.Context(), c.Param("id"), callFrom(c, payload.Version), payload.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromComplaint(complaint))
}
