package domain

import "time"

// MaintenanceStatus is the lifecycle state of a maintenance request.
type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "OPEN"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceCancelled  MaintenanceStatus = "CANCELLED"
)

// maintenanceTransitions defines the allowed state machine transitions.
var maintenanceTransitions = map[MaintenanceStatus][]MaintenanceStatus{
	MaintenanceOpen:       {MaintenanceInProgress, MaintenanceCancelled},
	MaintenanceInProgress: {MaintenanceCompleted, MaintenanceCancelled},
}

// CanTransitionTo reports whether moving from the current status to next is valid.
func (s MaintenanceStatus) CanTransitionTo(next MaintenanceStatus) bool {
	for _, allowed := range maintenanceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// MaintenancePriority ranks request urgency.
type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "LOW"
	PriorityMedium MaintenancePriority = "MEDIUM"
	PriorityHigh   MaintenancePriority = "HIGH"
)

// Valid reports whether p is a known priority.
func (p MaintenancePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// MaintenanceRequest is a repair/service request raised for an apartment.
type MaintenanceRequest struct {
	ID            string              `json:"id"`
	ApartmentID   string              `json:"apartment_id"`
	RequesterID   string              `json:"requester_id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Category      string              `json:"category,omitempty"`
	Priority      MaintenancePriority `json:"priority"`
	Status        MaintenanceStatus   `json:"status"`
	AssignedTo    string              `json:"assigned_to,omitempty"`
	EstimatedCost float64             `json:"estimated_cost,omitempty"`
	ActualCost    float64             `json:"actual_cost,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty"`
}
