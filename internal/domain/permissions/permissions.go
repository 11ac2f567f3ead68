// Package permissions is the single grant table consulted by every mutating
// entry point before it touches state.
package permissions

import "supplyops/internal/domain/entities"

// Action names something a staff member may attempt.
type Action string

const (
	ViewEntity Action = "entity:view"

	OrderAccept   Action = "order:accept"
	OrderReject   Action = "order:reject"
	OrderComplete Action = "order:complete"
	OrderAmend    Action = "order:amend"

	LinkApprove Action = "link:approve"
	LinkReject  Action = "link:reject"
	LinkUnlink  Action = "link:unlink"
	LinkBlock   Action = "link:block"
	LinkUnblock Action = "link:unblock"

	ComplaintReview   Action = "complaint:review"
	ComplaintResolve  Action = "complaint:resolve"
	ComplaintEscalate Action = "complaint:escalate"
	ComplaintNote     Action = "complaint:note"

	IncidentOpen     Action = "incident:open"
	IncidentRetriage Action = "incident:retriage"
	IncidentAssign   Action = "incident:assign"
	IncidentNote     Action = "incident:note"
	IncidentResolve  Action = "incident:resolve"

	StaffCreate     Action = "staff:create"
	StaffChangeRole Action = "staff:change_role"
	StaffDeactivate Action = "staff:deactivate"

	SupplierDeactivate Action = "supplier:deactivate"
	SupplierReactivate Action = "supplier:reactivate"
)

var (
	everyone    = roles(entities.RoleOwner, entities.RoleManager, entities.RoleSales)
	supervisors = roles(entities.RoleOwner, entities.RoleManager)
	ownerOnly   = roles(entities.RoleOwner)
)

// Approve/reject and unlink are shared by owners and managers; block and
// unblock stay with the owner.
var grants = map[Action]map[entities.Role]struct{}{
	ViewEntity: everyone,

	OrderAccept:   supervisors,
	OrderReject:   supervisors,
	OrderComplete: supervisors,
	OrderAmend:    supervisors,

	LinkApprove: supervisors,
	LinkReject:  supervisors,
	LinkUnlink:  supervisors,
	LinkBlock:   ownerOnly,
	LinkUnblock: ownerOnly,

	ComplaintReview:   supervisors,
	ComplaintResolve:  supervisors,
	ComplaintEscalate: supervisors,
	ComplaintNote:     supervisors,

	IncidentOpen:     supervisors,
	IncidentRetriage: supervisors,
	IncidentAssign:   supervisors,
	IncidentNote:     supervisors,
	IncidentResolve:  supervisors,

	StaffCreate:     ownerOnly,
	StaffChangeRole: ownerOnly,
	StaffDeactivate: ownerOnly,

	SupplierDeactivate: ownerOnly,
	SupplierReactivate: ownerOnly,
}

// IsAllowed reports whether role may perform action. Unknown roles and
// unknown actions are denied.
func IsAllowed(role entities.Role, action Action) bool {
	allowed, ok := grants[action]
	if !ok {
		return false
	}
	_, ok = allowed[role]
	return ok
}

// Actions lists every known action; used by tests and docs.
func Actions() []Action {
	out := make([]Action, 0, len(grants))
	for a := range grants {
		out = append(out, a)
	}
	return out
}

func roles(rs ...entities.Role) map[entities.Role]struct{} {
	set := make(map[entities.Role]struct{}, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}
