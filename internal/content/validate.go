package content

import (
	"log"

	"portfolio-backend/internal/domain/artist"
	"portfolio-backend/internal/domain/works"

	"github.com/go-playground/validator/v10"
	"github.com/jmgilman/go/errors"
)

// Reporter receives per-record validation failures with enough context to
// diagnose them. Pluggable so an error-capture service can replace the log.
type Reporter interface {
	CaptureException(err error, scope map[string]any)
}

// LogReporter writes captures to the process log.
type LogReporter struct{}

func (LogReporter) CaptureException(err error, scope map[string]any) {
	log.Printf("validation: %v (scope=%v)", err, scope)
}

// Validator checks normalized records against the canonical schemas. One
// failing record never aborts its siblings.
type Validator struct {
	validate *validator.Validate
	reporter Reporter
}

func NewValidator(reporter Reporter) *Validator {
	if reporter == nil {
		reporter = LogReporter{}
	}
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		reporter: reporter,
	}
}

// Artworks filters a batch down to the records that satisfy the Artwork
// schema. Failures are dropped individually and reported; the slug uniqueness
// invariant is enforced across the surviving set.
func (v *Validator) Artworks(batch []works.Artwork) []works.Artwork {
	out := make([]works.Artwork, 0, len(batch))
	seen := make(map[string]bool, len(batch))

	for _, a := range batch {
		if err := v.validate.Struct(a); err != nil {
			v.reporter.CaptureException(
				errors.Wrapf(err, errors.CodeSchemaFailed, "artwork %s failed schema validation", a.ID),
				map[string]any{"schema": "artwork", "record": a.ID},
			)
			continue
		}
		if seen[a.Slug] {
			v.reporter.CaptureException(
				errors.Newf(errors.CodeConflict, "artwork %s duplicates slug %q", a.ID, a.Slug),
				map[string]any{"schema": "artwork", "record": a.ID},
			)
			continue
		}
		seen[a.Slug] = true
		out = append(out, a)
	}

	return out
}

// Artist validates the profile record. An invalid profile resolves to "no
// artist", which the orchestrator turns into the fixed fallback.
func (v *Validator) Artist(a artist.Artist) (artist.Artist, bool) {
	if err := v.validate.Struct(a); err != nil {
		v.reporter.CaptureException(
			errors.Wrapf(err, errors.CodeSchemaFailed, "artist %s failed schema validation", a.ID),
			map[string]any{"schema": "artist", "record": a.ID},
		)
		return artist.Artist{}, false
	}
	return a, true
}
