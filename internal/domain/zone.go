package domain

import (
	"database/sql"
	"time"
)

type Zone struct {
	ID          int64          `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	CityID      int64          `db:"city_id" json:"city_id"`
	Color       string         `db:"color" json:"color"`
	Description sql.NullString `db:"description" json:"description,omitempty"`
	IsActive    bool           `db:"is_active" json:"is_active"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// ZoneWithCity is a zone row denormalized with its owning city.
type ZoneWithCity struct {
	Zone
	CityName    string `db:"city_name" json:"city_name"`
	CityCountry string `db:"city_country" json:"city_country"`
}

// ZoneFilter narrows list queries. Nil fields mean no filter.
type ZoneFilter struct {
	CityID   *int64
	IsActive *bool
	Skip     int
	Limit    int
}

// ZoneUpdate carries a partial mutation. Nil fields are left untouched.
type ZoneUpdate struct {
	Name        *string
	CityID      *int64
	Color       *string
	Description *string
	IsActive    *bool
}
