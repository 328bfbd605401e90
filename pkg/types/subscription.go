package types

// SubscriptionStatus is the lifecycle state of an investment subscription.
// Pending is reserved for a future approval flow and is never assigned by the
// accrual core.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCompleted SubscriptionStatus = "completed"
	SubscriptionStatusPending   SubscriptionStatus = "pending"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusCompleted, SubscriptionStatusPending:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transition.
func (s SubscriptionStatus) Terminal() bool {
	return s == SubscriptionStatusCompleted
}

// InvestmentPackage describes a purchasable fixed-term investment product.
type InvestmentPackage struct {
	Name         string  `json:"name" mapstructure:"name"`
	Price        float64 `json:"price" mapstructure:"price"`
	DailyReturn  Percent `json:"daily_return" mapstructure:"daily_return"`
	DurationDays int     `json:"duration_days" mapstructure:"duration_days"`
	TotalReturn  float64 `json:"total_return" mapstructure:"total_return"`
}
