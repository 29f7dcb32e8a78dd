package domain

import "time"

type Person struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
