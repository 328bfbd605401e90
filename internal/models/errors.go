package models

import "fmt"

// InsufficientBalanceError rejects a purchase or withdrawal before any record
// is created. It carries the figures the client renders.
type InsufficientBalanceError struct {
	CurrentBalance float64
	Required       float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %.2f, need %.2f", e.CurrentBalance, e.Required)
}
