package entity

import "time"

// Content is a tourist attraction (wisata).
type Content struct {
	ID          int64     `json:"wisataID"`
	Name        string    `json:"wisataName"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Address     string    `json:"address"`
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	Country     string    `json:"country"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ContentPatch carries the fields of a partial update; nil means unchanged.
type ContentPatch struct {
	Name        *string
	Description *string
	ImageURL    *string
	Address     *string
	Lat         *float64
	Lon         *float64
	Country     *string
}

// Apply copies every non-nil field onto c.
func (p ContentPatch) Apply(c *Content) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.ImageURL != nil {
		c.ImageURL = p.ImageURL
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Lat != nil {
		c.Lat = *p.Lat
	}
	if p.Lon != nil {
		c.Lon = *p.Lon
	}
	if p.Country != nil {
		c.Country = *p.Country
	}
}
