package domain

type AdAccountStatus int

// Códigos de account_status da Graph API mais relevantes para o painel.
const (
	AdAccountStatusActive    AdAccountStatus = 1
	AdAccountStatusDisabled  AdAccountStatus = 2
	AdAccountStatusUnsettled AdAccountStatus = 3
	AdAccountStatusClosed    AdAccountStatus = 101
)

type AdAccount struct {
	ID            string          `json:"id"`
	AccountID     string          `json:"account_id"`
	Name          string          `json:"name"`
	Currency      string          `json:"currency"`
	TimezoneName  string          `json:"timezone_name"`
	BusinessName  string          `json:"business_name,omitempty"`
	AmountSpent   float64         `json:"amount_spent"`
	AccountStatus AdAccountStatus `json:"account_status"`
}

func (a *AdAccount) IsActive() bool {
	return a != nil && a.AccountStatus == AdAccountStatusActive
}
