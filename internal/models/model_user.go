package models

import "time"

// User owns the balance mutated by deposits, withdrawals, purchases and
// earnings settlement. The primary key is the chat-platform user id.
type User struct {
	ID        string  `gorm:"column:id;type:varchar(64);primary_key" json:"id"`
	Username  string  `gorm:"column:username;type:varchar(255)" json:"username"`
	FirstName string  `gorm:"column:first_name;type:varchar(255)" json:"first_name"`
	LastName  string  `gorm:"column:last_name;type:varchar(255)" json:"last_name"`
	Balance   float64 `gorm:"column:balance;not null;default:0" json:"balance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName prefers the username and falls back to the real name.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}
