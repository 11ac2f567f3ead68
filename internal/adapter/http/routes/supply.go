package routes

import (
	"supplyops/internal/adapter/http/handlers"
	"supplyops/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders     = "/orders"
	PathLinks      = "/links"
	PathComplaints = "/complaints"
	PathIncidents  = "/incidents"
)

type Handlers struct {
	Orders     *handlers.OrderHandler
	Links      *handlers.LinkHandler
	Complaints *handlers.ComplaintHandler
	Incidents  *handlers.IncidentHandler
}

func addSupplyRoutes(rg *gin.RouterGroup, h Handlers) {
	// Intake from consumer-facing channels. No staff identity.
	intake := rg.Group("")
	{
		intake.POST(PathOrders, h.Orders.SubmitOrder)
		intake.POST(PathOrders+"/:id/complaints", h.Complaints.SubmitComplaint)
		intake.POST(PathLinks, h.Links.RequestLink)
	}

	staff := rg.Group("", middleware.RequireActor())

	orders := staff.Group(PathOrders)
	{
		orders.GET("", h.Orders.ListOrders)
		orders.GET("/:id", h.Orders.GetOrder)
		orders.PATCH("/:id/accept", h.Orders.AcceptOrder)
		orders.PATCH("/:id/reject", h.Orders.RejectOrder)
		orders.PATCH("/:id/complete", h.Orders.CompleteOrder)
		orders.PUT("/:id/items", h.Orders.AmendItems)
	}

	links := staff.Group(PathLinks)
	{
		links.GET("", h.Links.ListLinks)
		links.GET("/:id", h.Links.GetLink)
		links.PATCH("/:id/approve", h.Links.ApproveLink)
		links.PATCH("/:id/reject", h.Links.RejectLink)
		links.PATCH("/:id/unlink", h.Links.UnlinkConsumer)
		links.PATCH("/:id/block", h.Links.BlockLink)
		links.PATCH("/:id/unblock", h.Links.UnblockLink)
	}

	complaints := staff.Group(PathComplaints)
	{
		complaints.GET("", h.Complaints.ListComplaints)
		complaints.GET("/:id", h.Complaints.GetComplaint)
		complaints.PATCH("/:id/review", h.Complaints.StartReview)
		complaints.PATCH("/:id/resolve", h.Complaints.ResolveComplaint)
		complaints.PATCH("/:id/escalate", h.Complaints.EscalateComplaint)
		complaints.POST("/:id/notes", h.Complaints.AddNote)
	}

	incidents := staff.Group(PathIncidents)
	{
		incidents.POST("", h.Incidents.OpenIncident)
		incidents.GET("", h.Incidents.ListIncidents)
		incidents.GET("/:id", h.Incidents.GetIncident)
		incidents.PATCH("/:id/status", h.Incidents.SetStatus)
		incidents.PATCH("/:id/assign", h.Incidents.Assign)
		incidents.PATCH("/:id/severity", h.Incidents.Retriage)
		incidents.POST("/:id/notes", h.Incidents.AddNote)
	}
}
