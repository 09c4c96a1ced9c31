package works

import "time"

// Artwork is one catalog item in its canonical shape. Instances are produced
// only by the normalize/validate pipeline or the bundled fallback dataset and
// are treated as immutable after construction.
type Artwork struct {
	ID          string `json:"id" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Year        int    `json:"year" validate:"gte=0"`
	Medium      string `json:"medium,omitempty"`
	Dimensions  string `json:"dimensions,omitempty"`
	AspectRatio string `json:"aspect_ratio,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
	Note        string `json:"note,omitempty"`

	Featured  bool `json:"featured"`
	Available bool `json:"available"`

	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`

	Series      string `json:"series,omitempty"`
	Technique   string `json:"technique,omitempty"`
	Inspiration string `json:"inspiration,omitempty"`
	Price       string `json:"price,omitempty"`
	Exhibition  string `json:"exhibition,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
