package tool

import "github.com/google/uuid"

// GenerateUUIDV7 returns a time-ordered UUID string for new records.
func GenerateUUIDV7() string {
	return uuid.Must(uuid.NewV7()).String()
}
