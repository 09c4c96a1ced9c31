package content

import (
	"time"

	"portfolio-backend/internal/domain/artist"
	"portfolio-backend/internal/domain/works"

	"github.com/google/uuid"
)

// Bundled snapshot served whenever the remote source is unreachable or returns
// nothing valid. Structurally identical to live data, so it is interchangeable
// at the orchestrator boundary.

var fallbackTime = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

// fallbackID derives a stable id for a bundled record from its slug.
func fallbackID(slug string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("portfolio-backend/"+slug)).String()
}

// FallbackArtworks returns a fresh copy of the bundled collection. Copies keep
// the bundled records immutable even if a caller mutates the returned slice.
func FallbackArtworks() []works.Artwork {
	artworks := []works.Artwork{
		{
			ID:          fallbackID("artwork-yeohaeng-2025"),
			Slug:        "artwork-yeohaeng-2025",
			Title:       "여행",
			Year:        2025,
			Medium:      "Oil on canvas",
			Dimensions:  "60 × 80 cm",
			AspectRatio: "3/4",
			Description: "A journey through remembered landscapes, painted from train-window sketches.",
			ImageURL:    "https://cdn.example.com/artworks/yeohaeng.jpg",
			Featured:    true,
			Available:   true,
			Category:    "painting",
			Tags:        []string{"landscape", "memory", "travel"},
			Series:      "Passages",
			CreatedAt:   fallbackTime,
			UpdatedAt:   fallbackTime,
		},
		{
			ID:          fallbackID("artwork-tidal-garden-2024"),
			Slug:        "artwork-tidal-garden-2024",
			Title:       "Tidal Garden",
			Year:        2024,
			Medium:      "Acrylic and ink on paper",
			Dimensions:  "50 × 50 cm",
			AspectRatio: "1/1",
			Description: "Layered washes tracing the mudflats of the west coast at low tide.",
			ImageURL:    "https://cdn.example.com/artworks/tidal-garden.jpg",
			Featured:    true,
			Available:   false,
			Category:    "painting",
			Tags:        []string{"sea", "abstraction"},
			Series:      "Passages",
			Exhibition:  "Low Tide, Seoul, 2024",
			CreatedAt:   fallbackTime,
			UpdatedAt:   fallbackTime,
		},
		{
			ID:          fallbackID("artwork-geoul-2023"),
			Slug:        "artwork-geoul-2023",
			Title:       "거울",
			Year:        2023,
			Medium:      "Mixed media on wood panel",
			Dimensions:  "90 × 60 cm",
			AspectRatio: "3/2",
			Description: "A mirrored diptych on weathered panel.",
			ImageURL:    "https://cdn.example.com/artworks/geoul.jpg",
			Available:   true,
			Category:    "mixed-media",
			Tags:        []string{"reflection"},
			Technique:   "layered glazing",
			CreatedAt:   fallbackTime,
			UpdatedAt:   fallbackTime,
		},
		{
			ID:          fallbackID("artwork-field-notes-2022"),
			Slug:        "artwork-field-notes-2022",
			Title:       "Field Notes",
			Year:        2022,
			Medium:      "Graphite on paper",
			Dimensions:  "42 × 29.7 cm",
			AspectRatio: "42/29",
			Description: "Thirty days of morning drawings from the studio window.",
			ImageURL:    "https://cdn.example.com/artworks/field-notes.jpg",
			Available:   true,
			Category:    "drawing",
			Tags:        []string{"daily practice", "studio"},
			CreatedAt:   fallbackTime,
			UpdatedAt:   fallbackTime,
		},
	}

	out := make([]works.Artwork, len(artworks))
	copy(out, artworks)
	return out
}

// FallbackArtist returns the fixed fallback profile. The UI never receives an
// empty or null artist.
func FallbackArtist() artist.Artist {
	return artist.Artist{
		ID:              fallbackID("artist-profile"),
		Name:            "Seo Yeon Park",
		Bio:             "Seo Yeon Park is a painter working between Seoul and Incheon, known for layered landscapes built from daily observation.",
		Statement:       "I paint the distance between a place and the memory of it.",
		ImageURL:        "https://cdn.example.com/artist/profile.jpg",
		BirthYear:       1987,
		BirthPlace:      "Incheon, South Korea",
		CurrentLocation: "Seoul, South Korea",
		Education:       []string{"MFA Painting, Hongik University", "BFA Fine Arts, Ewha Womans University"},
		Exhibitions:     []string{"Low Tide, Seoul, 2024", "Passages, Busan, 2023"},
		Awards:          []string{"Emerging Artist Prize, 2022"},
		Specialties:     []string{"oil painting", "mixed media"},
		Influences:      []string{"Park Soo-keun", "Agnes Martin"},
		Techniques:      []string{"layered glazing", "ink wash"},
		Email:           "studio@example.com",
		Social:          map[string]string{"instagram": "@seoyeon.park.studio"},
		Website:         "https://www.example.com",
	}
}
