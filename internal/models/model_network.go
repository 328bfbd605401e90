package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/moonvest/investd/pkg/types"
)

// Network is a crypto network users may deposit to or withdraw from. When the
// table is empty the network service serves a built-in fallback set so the
// mini-app always has addresses to show.
type Network struct {
	ID       string            `gorm:"column:id;type:varchar(64);primary_key" json:"id"`
	Name     string            `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Symbol   string            `gorm:"column:symbol;type:varchar(32);not null" json:"symbol"`
	Address  string            `gorm:"column:address;type:varchar(255);not null" json:"address"`
	Icon     string            `gorm:"column:icon;type:varchar(16)" json:"icon"`
	Type     types.NetworkType `gorm:"column:type;type:varchar(32);not null" json:"type"`
	IsActive bool              `gorm:"column:is_active;not null;default:true" json:"isActive"`

	Extra     datatypes.JSON `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Network) TableName() string {
	return "network"
}
