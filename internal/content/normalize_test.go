package content

import (
	"testing"

	"portfolio-backend/internal/infra/airtable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArtwork_AliasResolution(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
		title  string
		medium string
	}{
		{
			name:   "lowercase keys",
			fields: map[string]any{"title": "Harbor", "medium": "oil"},
			title:  "Harbor",
			medium: "oil",
		},
		{
			name:   "capitalized keys",
			fields: map[string]any{"Title": "Harbor", "Medium": "oil"},
			title:  "Harbor",
			medium: "oil",
		},
		{
			name:   "korean labels",
			fields: map[string]any{"제목": "Harbor", "재료": "oil"},
			title:  "Harbor",
			medium: "oil",
		},
		{
			name: "priority order prefers the first defined alias",
			fields: map[string]any{
				"Title": "Capitalized",
				"title": "Lowercase",
			},
			title:  "Lowercase",
			medium: "",
		},
		{
			name: "empty strings are skipped",
			fields: map[string]any{
				"title": "   ",
				"Title": "Harbor",
			},
			title:  "Harbor",
			medium: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NormalizeArtwork(airtable.Record{ID: "rec1", Fields: tt.fields})
			require.NoError(t, err)
			assert.Equal(t, tt.title, a.Title)
			assert.Equal(t, tt.medium, a.Medium)
		})
	}
}

func TestNormalizeArtwork_MissingTitleIsRejected(t *testing.T) {
	_, err := NormalizeArtwork(airtable.Record{
		ID:     "rec9",
		Fields: map[string]any{"medium": "oil", "year": float64(2020)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rec9")
}

func TestNormalizeArtwork_SlugDerivation(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
		slug   string
	}{
		{
			name:   "hangul title is romanized",
			fields: map[string]any{"title": "여행", "year": float64(2025)},
			slug:   "artwork-yeohaeng-2025",
		},
		{
			name:   "latin diacritics are stripped",
			fields: map[string]any{"title": "Café at Dusk", "year": float64(2024)},
			slug:   "artwork-cafe-at-dusk-2024",
		},
		{
			name:   "punctuation collapses to single hyphens",
			fields: map[string]any{"title": "Notes!! (Vol. 2)", "year": float64(2023)},
			slug:   "artwork-notes-vol-2-2023",
		},
		{
			name:   "explicit slug wins",
			fields: map[string]any{"title": "여행", "year": float64(2025), "slug": "custom-slug"},
			slug:   "custom-slug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NormalizeArtwork(airtable.Record{ID: "rec1", Fields: tt.fields})
			require.NoError(t, err)
			assert.Equal(t, tt.slug, a.Slug)
			assert.Regexp(t, `^[a-z0-9-]+$`, a.Slug)
		})
	}
}

func TestAspectRatio(t *testing.T) {
	tests := []struct {
		dimensions string
		want       string
	}{
		{"60 × 80 cm", "3/4"},
		{"50x50cm", "1/1"},
		{"90 X 60", "3/2"},
		{"100 * 40 cm", "5/2"},
		{"untitled dimensions", "1/1"},
		{"", "1/1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, aspectRatio(tt.dimensions), "input %q", tt.dimensions)
	}
}

func TestAsList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{name: "array column", in: []any{"sea", "memory"}, want: []string{"sea", "memory"}},
		{name: "comma delimited", in: "sea, memory", want: []string{"sea", "memory"}},
		{name: "semicolon delimited", in: "sea; memory", want: []string{"sea", "memory"}},
		{name: "pipe delimited", in: "sea|memory", want: []string{"sea", "memory"}},
		{name: "empties dropped", in: "sea,, ,memory,", want: []string{"sea", "memory"}},
		{name: "nil", in: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, asList(tt.in))
		})
	}
}

func TestNormalizeArtwork_SanitizesRichText(t *testing.T) {
	a, err := NormalizeArtwork(airtable.Record{
		ID: "rec1",
		Fields: map[string]any{
			"title":       "Harbor",
			"description": `A quiet <script>alert("x")</script>morning`,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "A quiet morning", a.Description)
}

func TestNormalizeArtwork_AttachmentImage(t *testing.T) {
	a, err := NormalizeArtwork(airtable.Record{
		ID: "rec1",
		Fields: map[string]any{
			"title": "Harbor",
			"image": []any{
				map[string]any{"url": "https://cdn.example.com/harbor.jpg"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/harbor.jpg", a.ImageURL)
}

func TestNormalizeArtist_Profile(t *testing.T) {
	profile := NormalizeArtist(airtable.Record{
		ID: "recArtist",
		Fields: map[string]any{
			"이름":        "Seo Yeon Park",
			"bio":       "Painter.",
			"학력":        "MFA; BFA",
			"instagram": "@studio",
		},
	})

	assert.Equal(t, "Seo Yeon Park", profile.Name)
	assert.Equal(t, []string{"MFA", "BFA"}, profile.Education)
	assert.Equal(t, map[string]string{"instagram": "@studio"}, profile.Social)
}
