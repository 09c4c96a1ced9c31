package catalog

import "portfolio-backend/internal/domain/works"

type ArtworksResponse struct {
	Artworks []works.Artwork `json:"artworks"`
	Count    int             `json:"count"`
	Tag      string          `json:"tag,omitempty"`
}
