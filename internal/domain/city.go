package domain

import (
	"time"
)

type City struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Country   string    `db:"country" json:"country"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CityFilter narrows list queries. Nil IsActive means no status filter.
type CityFilter struct {
	IsActive *bool
	Skip     int
	Limit    int
}

// CityUpdate carries a partial mutation. Nil fields are left untouched.
type CityUpdate struct {
	Name     *string
	Country  *string
	IsActive *bool
}
