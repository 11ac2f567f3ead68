package handlers

import (
	"net/http"
	"strings"

	request "supplyops/internal/adapter/http/dto/request"
	response "supplyops/internal/adapter/http/dto/response"
	"supplyops/internal/adapter/http/middleware"
	"supplyops/internal/domain/entities"
	"supplyops/internal/usecase"

	"github.com/gin-gonic/gin"
)

type IncidentHandler struct {
	usecase usecase.IIncidentUseCase
}

func NewIncidentHandler(uc usecase.IIncidentUseCase) *IncidentHandler {
	return &IncidentHandler{usecase: uc}
}

func (h *IncidentHandler) OpenIncident(c *gin.Context) {
	var payload request.OpenIncidentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	incident, err := h.usecase.Open(c.Request.Context(), payload.ToEntity(), middleware.ActorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromIncident(incident))
}

func (h *IncidentHandler) ListIncidents(c *gin.Context) {
	incidents, err := h.usecase.List(c.Request.Context(), middleware.ActorFrom(c), filterFromQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromList(incidents, response.FromIncident))
}

func (h *IncidentHandler) GetIncident(c *gin.Context) {
	incident, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), middleware.ActorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromIncident(incident))
}

func (h *IncidentHandler) SetStatus(c *gin.Context) {
	var payload request.IncidentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	status := entities.IncidentStatus(strings.ToUpper(strings.TrimSpace(payload.Status)))
	incident, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), callFrom(c, payload.Version), status)
	h.respond(c, incident, err)
}

func (h *IncidentHandler) Assign(c *gin.Context) {
	var payload request.AssignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	incident, err := h.usecase.Assign(c.Request.Context(), c.Param("id"), callFrom(c, payload.Version), payload.StaffRef)
	h.respond(c, incident, err)
}

func (h *IncidentHandler) Retriage(c *gin.Context) {
	var payload request.SeverityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	severity := entities.Severity(strings.ToUpper(strings.TrimSpace(payload.Severity)))
	incident, err := h.usecase.Retriage(c.Request.Context(), c.Param("id"), callFrom(c, payload.Version), severity)
	h.respond(c, incident, err)
}

func (h *IncidentHandler) AddNote(c *gin.Context) {
	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c, err)
		return
	}

	incident, err := h.usecase.AddNote(c.Request.Context(), c.Param("id"), callFrom(c, payload.Version), payload.Note)
	h.respond(c, incident, err)
}

func (h *IncidentHandler) respond(c *gin.Context, incident entities.Incident, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromIncident(incident))
}
