package domain

import "time"

// Housing сдаваемое жилье. Владеет сезонами бронирования.
type Housing struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
