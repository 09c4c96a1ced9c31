package content

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"portfolio-backend/internal/domain/artist"
	"portfolio-backend/internal/domain/works"
	"portfolio-backend/internal/infra/airtable"

	"github.com/jmgilman/go/errors"
	"github.com/microcosm-cc/bluemonday"
)

// Field aliases: canonical key → source keys tried in priority order. The
// remote tables have been edited by hand over the years, so the same logical
// field shows up lowercase, capitalized or under its Korean label.
var artworkAliases = map[string][]string{
	"slug":        {"slug", "Slug"},
	"title":       {"title", "Title", "제목"},
	"year":        {"year", "Year", "연도", "제작년도"},
	"medium":      {"medium", "Medium", "재료"},
	"dimensions":  {"dimensions", "Dimensions", "size", "Size", "크기"},
	"description": {"description", "Description", "설명"},
	"image":       {"image", "Image", "image_url", "이미지"},
	"note":        {"note", "Note", "작가노트"},
	"featured":    {"featured", "Featured", "대표작"},
	"category":    {"category", "Category", "분류"},
	"available":   {"available", "Available", "판매가능"},
	"tags":        {"tags", "Tags", "태그"},
	"series":      {"series", "Series", "시리즈"},
	"technique":   {"technique", "Technique", "기법"},
	"inspiration": {"inspiration", "Inspiration", "영감"},
	"price":       {"price", "Price", "가격"},
	"exhibition":  {"exhibition", "Exhibition", "전시"},
}

var artistAliases = map[string][]string{
	"name":        {"name", "Name", "이름"},
	"bio":         {"bio", "Bio", "biography", "소개"},
	"statement":   {"statement", "Statement", "작가의 말"},
	"image":       {"image", "Image", "profile_image", "프로필"},
	"birth_year":  {"birth_year", "BirthYear", "출생년도"},
	"birth_place": {"birth_place", "BirthPlace", "출생지"},
	"location":    {"location", "Location", "거주지"},
	"education":   {"education", "Education", "학력"},
	"exhibitions": {"exhibitions", "Exhibitions", "전시이력"},
	"awards":      {"awards", "Awards", "수상"},
	"specialties": {"specialties", "Specialties", "전문분야"},
	"influences":  {"influences", "Influences", "영향"},
	"techniques":  {"techniques", "Techniques", "기법"},
	"email":       {"email", "Email", "이메일"},
	"phone":       {"phone", "Phone", "연락처"},
	"website":     {"website", "Website", "웹사이트"},
	"instagram":   {"instagram", "Instagram"},
	"youtube":     {"youtube", "YouTube"},
}

// Remote text is untrusted spreadsheet input; rich-text fields are stripped of
// any markup before they reach a page.
var sanitizer = bluemonday.StrictPolicy()

// resolve returns the first defined, non-null, non-empty value among the
// aliases of a canonical field.
func resolve(fields map[string]any, aliases map[string][]string, canonical string) any {
	for _, alias := range aliases[canonical] {
		v, ok := fields[alias]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

// NormalizeArtwork maps one raw remote record onto the canonical Artwork
// shape. A record without a title is rejected: it is skipped and logged by the
// caller, never admitted with a placeholder.
func NormalizeArtwork(rec airtable.Record) (works.Artwork, error) {
	fields := rec.Fields

	title := asString(resolve(fields, artworkAliases, "title"))
	if title == "" {
		return works.Artwork{}, errors.Newf(errors.CodeInvalidInput, "record %s has no title under any alias", rec.ID)
	}

	year := asInt(resolve(fields, artworkAliases, "year"))
	dimensions := asString(resolve(fields, artworkAliases, "dimensions"))

	slug := asString(resolve(fields, artworkAliases, "slug"))
	if slug == "" {
		slug = deriveSlug(title, year)
	}

	a := works.Artwork{
		ID:          rec.ID,
		Slug:        slug,
		Title:       title,
		Year:        year,
		Medium:      asString(resolve(fields, artworkAliases, "medium")),
		Dimensions:  dimensions,
		AspectRatio: aspectRatio(dimensions),
		Description: sanitizer.Sanitize(asString(resolve(fields, artworkAliases, "description"))),
		ImageURL:    asImageURL(resolve(fields, artworkAliases, "image")),
		Note:        sanitizer.Sanitize(asString(resolve(fields, artworkAliases, "note"))),
		Featured:    asBool(resolve(fields, artworkAliases, "featured")),
		Available:   asBool(resolve(fields, artworkAliases, "available")),
		Category:    asString(resolve(fields, artworkAliases, "category")),
		Tags:        asList(resolve(fields, artworkAliases, "tags")),
		Series:      asString(resolve(fields, artworkAliases, "series")),
		Technique:   asString(resolve(fields, artworkAliases, "technique")),
		Inspiration: asString(resolve(fields, artworkAliases, "inspiration")),
		Price:       asString(resolve(fields, artworkAliases, "price")),
		Exhibition:  asString(resolve(fields, artworkAliases, "exhibition")),
		CreatedAt:   rec.CreatedTime,
		UpdatedAt:   rec.CreatedTime,
	}

	return a, nil
}

// NormalizeArtist maps the profile record onto the canonical Artist shape.
func NormalizeArtist(rec airtable.Record) artist.Artist {
	fields := rec.Fields

	social := map[string]string{}
	for _, network := range []string{"instagram", "youtube"} {
		if handle := asString(resolve(fields, artistAliases, network)); handle != "" {
			social[network] = handle
		}
	}
	if len(social) == 0 {
		social = nil
	}

	return artist.Artist{
		ID:              rec.ID,
		Name:            asString(resolve(fields, artistAliases, "name")),
		Bio:             sanitizer.Sanitize(asString(resolve(fields, artistAliases, "bio"))),
		Statement:       sanitizer.Sanitize(asString(resolve(fields, artistAliases, "statement"))),
		ImageURL:        asImageURL(resolve(fields, artistAliases, "image")),
		BirthYear:       asInt(resolve(fields, artistAliases, "birth_year")),
		BirthPlace:      asString(resolve(fields, artistAliases, "birth_place")),
		CurrentLocation: asString(resolve(fields, artistAliases, "location")),
		Education:       asList(resolve(fields, artistAliases, "education")),
		Exhibitions:     asList(resolve(fields, artistAliases, "exhibitions")),
		Awards:          asList(resolve(fields, artistAliases, "awards")),
		Specialties:     asList(resolve(fields, artistAliases, "specialties")),
		Influences:      asList(resolve(fields, artistAliases, "influences")),
		Techniques:      asList(resolve(fields, artistAliases, "techniques")),
		Email:           asString(resolve(fields, artistAliases, "email")),
		Phone:           asString(resolve(fields, artistAliases, "phone")),
		Website:         asString(resolve(fields, artistAliases, "website")),
		Social:          social,
	}
}

var dimensionsPattern = regexp.MustCompile(`(\d+)\s*[×xX*]\s*(\d+)`)

// aspectRatio reduces a "WIDTH × HEIGHT" dimension string to lowest terms,
// e.g. "60 × 80 cm" → "3/4". Unparsable input defaults to a square.
func aspectRatio(dimensions string) string {
	m := dimensionsPattern.FindStringSubmatch(dimensions)
	if m == nil {
		return "1/1"
	}

	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	if w <= 0 || h <= 0 {
		return "1/1"
	}

	d := gcd(w, h)
	return fmt.Sprintf("%d/%d", w/d, h/d)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64: // JSON numbers decode as float64
		return int(n)
	case int:
		return n
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return parsed
		}
	}
	return 0
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		// checkbox columns exported as text
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "y", "1", "checked":
			return true
		}
	}
	return false
}

var listSeparators = regexp.MustCompile(`[,;|]`)

// asList accepts either an array column or a single delimited text column.
func asList(v any) []string {
	var parts []string
	switch items := v.(type) {
	case []any:
		for _, item := range items {
			parts = append(parts, asString(item))
		}
	case []string:
		parts = items
	case string:
		parts = listSeparators.Split(items, -1)
	default:
		return nil
	}

	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// asImageURL handles both plain URL columns and attachment columns, which
// arrive as an array of objects carrying a "url" key.
func asImageURL(v any) string {
	if s := asString(v); s != "" {
		return s
	}
	attachments, ok := v.([]any)
	if !ok || len(attachments) == 0 {
		return ""
	}
	first, ok := attachments[0].(map[string]any)
	if !ok {
		return ""
	}
	return asString(first["url"])
}
