package request

import (
	"strings"

	"supplyops/internal/domain/entities"
)

type LinkRequest struct {
	ID         string `json:"id"`
	ConsumerID string `json:"consumer_id" binding:"required"`
	SupplierID string `json:"supplier_id" binding:"required"`
	Message    string `json:"message"`
}

func (r LinkRequest) ToEntity() entities.ConsumerLink {
	return entities.ConsumerLink{
		ID:         strings.TrimSpace(r.ID),
		ConsumerID: r.ConsumerID,
		SupplierID: r.SupplierID,
	}
}

type ComplaintRequest struct {
	ID          string `json:"id"`
	ConsumerRef string `json:"consumer_ref"`
	Type        string `json:"type"`
	Description string `json:"description" binding:"required"`
}

// ToEntity binds the complaint to the order taken from the path.
func (r ComplaintRequest) ToEntity(orderID string) entities.Complaint {
	return entities.Complaint{
		ID:          strings.TrimSpace(r.ID),
		OrderID:     orderID,
		ConsumerRef: strings.TrimSpace(r.ConsumerRef),
		Type:        strings.TrimSpace(r.Type),
		Description: r.Description,
	}
}

type OpenIncidentRequest struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id" binding:"required"`
	ConsumerRef string `json:"consumer_ref"`
	Summary     string `json:"summary"`
	Severity    string `json:"severity"`
	AssignedTo  string `json:"assigned_to"`
}

func (r OpenIncidentRequest) ToEntity() entities.Incident {
	return entities.Incident{
		ID:          strings.TrimSpace(r.ID),
		OrderID:     r.OrderID,
		ConsumerRef: strings.TrimSpace(r.ConsumerRef),
		Summary:     strings.TrimSpace(r.Summary),
		Severity:    entities.Severity(strings.ToUpper(strings.TrimSpace(r.Severity))),
		AssignedTo:  r.AssignedTo,
	}
}
