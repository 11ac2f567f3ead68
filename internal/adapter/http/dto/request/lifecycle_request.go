package request

// TransitionRequest is the optional body of a status PATCH. Version 0 means
// "apply to whatever is current".
type TransitionRequest struct {
	Version int64  `json:"version"`
	Reason  string `json:"reason"`
}

type NoteRequest struct {
	Version int64  `json:"version"`
	Note    string `json:"note" binding:"required"`
}

type EscalateRequest struct {
	Version  int64  `json:"version"`
	Severity string `json:"severity"`
}

type IncidentStatusRequest struct {
	Version int64  `json:"version"`
	Status  string `json:"status" binding:"required"`
}

type AssignRequest struct {
	Version  int64  `json:"version"`
	StaffRef string `json:"staff_ref" binding:"required"`
}

type SeverityRequest struct {
	Version  int64  `json:"version"`
	Severity string `json:"severity" binding:"required"`
}
