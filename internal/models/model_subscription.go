package models

import (
	"time"

	"github.com/moonvest/investd/pkg/types"
)

// Subscription is a fixed-term investment contract accruing a daily
// percentage return on PackagePrice. Earnings bookkeeping lives in
// TotalEarned and LastEarningsUpdate; remaining days are derived from
// EndDate on every read and never stored.
type Subscription struct {
	ID            string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID        string `gorm:"column:user_id;type:varchar(64);not null;index" json:"user_id"`
	UserUsername  string `gorm:"column:user_username;type:varchar(255)" json:"user_username,omitempty"`
	UserFirstName string `gorm:"column:user_first_name;type:varchar(255)" json:"user_first_name,omitempty"`
	UserLastName  string `gorm:"column:user_last_name;type:varchar(255)" json:"user_last_name,omitempty"`

	PackageName  string        `gorm:"column:package_name;type:varchar(255);not null" json:"package_name"`
	PackagePrice float64       `gorm:"column:package_price;not null" json:"package_price"`
	DailyReturn  types.Percent `gorm:"column:daily_return;type:varchar(16);not null" json:"daily_return"`
	DurationDays int           `gorm:"column:duration_days;not null" json:"duration_days"`
	TotalReturn  float64       `gorm:"column:total_return;not null" json:"total_return"`

	StartDate time.Time                `gorm:"column:start_date;not null" json:"start_date"`
	EndDate   time.Time                `gorm:"column:end_date;not null" json:"end_date"`
	Status    types.SubscriptionStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`

	TotalEarned        float64   `gorm:"column:total_earned;not null;default:0" json:"total_earned"`
	LastEarningsUpdate time.Time `gorm:"column:last_earnings_update;not null" json:"last_earnings_update"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscription"
}

// LastUpdateBase is the reference instant for unsettled-earnings counting:
// the last settlement, or the start date when none has happened yet.
func (s *Subscription) LastUpdateBase() time.Time {
	if s.LastEarningsUpdate.IsZero() {
		return s.StartDate
	}
	return s.LastEarningsUpdate
}
