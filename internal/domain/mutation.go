package domain

type ObjectStatus string

const (
	StatusActive   ObjectStatus = "ACTIVE"
	StatusPaused   ObjectStatus = "PAUSED"
	StatusArchived ObjectStatus = "ARCHIVED"
)

func (s ObjectStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusArchived:
		return true
	}
	return false
}

type UpdateStatusRequest struct {
	Status ObjectStatus `json:"status"`
}

// UpdateBudgetRequest recebe valores na moeda da conta.
type UpdateBudgetRequest struct {
	DailyBudget    *float64 `json:"dailyBudget,omitempty"`
	LifetimeBudget *float64 `json:"lifetimeBudget,omitempty"`
}

type RenameRequest struct {
	Name string `json:"name"`
}

type DuplicateRequest struct {
	DeepCopy bool `json:"deepCopy"`
}

type MutationResponse struct {
	ObjectID string `json:"objectId"`
	CopyID   string `json:"copyId,omitempty"`
	Success  bool   `json:"success"`
}
