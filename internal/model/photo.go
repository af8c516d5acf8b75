package model

import "time"

// Photo display_order is dense across the whole gallery, not per parent.
type Photo struct {
	ID           int       `db:"id"            json:"id"`
	ImageURL     string    `db:"image_url"     json:"image_url"`
	Caption      *string   `db:"caption"       json:"caption,omitempty"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
}
