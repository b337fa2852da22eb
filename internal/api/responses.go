package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// ConflictResponse carries the identity and interval of the commitment that
// blocked a scheduling request, so an operator can resolve the dispute
// without inspecting server state.
type ConflictResponse struct {
	Error         string `json:"error" example:"room is already booked"`
	ConflictID    int    `json:"conflict_id,omitempty" example:"17"`
	ConflictStart string `json:"conflict_start,omitempty" example:"2026-03-01T09:00:00Z"`
	ConflictEnd   string `json:"conflict_end,omitempty" example:"2026-03-01T10:00:00Z"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
