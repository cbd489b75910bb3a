package domain

import "time"

// PriceCategory категория гостя ("взрослый", "ребенок", ...)
type PriceCategory struct {
	ID        int64
	HousingID int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
