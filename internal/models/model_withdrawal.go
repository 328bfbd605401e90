package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/moonvest/investd/pkg/types"
)

// Withdrawal is a payout request. Creation only verifies the user has the
// requested amount; the balance is debited when an operator processes it.
type Withdrawal struct {
	ID            string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	UserID        string `gorm:"column:user_id;type:varchar(64);not null;index" json:"user_id"`
	UserUsername  string `gorm:"column:user_username;type:varchar(255)" json:"user_username,omitempty"`
	UserFirstName string `gorm:"column:user_first_name;type:varchar(255)" json:"user_first_name,omitempty"`
	UserLastName  string `gorm:"column:user_last_name;type:varchar(255)" json:"user_last_name,omitempty"`

	Amount            float64                 `gorm:"column:amount;not null" json:"amount"`
	Status            types.TransactionStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`
	Network           string                  `gorm:"column:network;type:varchar(64);not null" json:"network"`
	NetworkName       string                  `gorm:"column:network_name;type:varchar(255)" json:"network_name"`
	WithdrawalAddress string                  `gorm:"column:withdrawal_address;type:varchar(255);not null" json:"withdrawal_address"`

	Extra       datatypes.JSON `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra,omitempty"`
	ProcessedAt *time.Time     `gorm:"column:processed_at;default:null" json:"processed_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Withdrawal) TableName() string {
	return "withdrawal"
}
