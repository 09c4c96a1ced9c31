package artist

// Artist is the single profile record behind the site. At most one profile is
// ever current; when the remote copy is missing or invalid the fixed fallback
// profile takes its place, never an empty value.
type Artist struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Bio       string `json:"bio" validate:"required"`
	Statement string `json:"statement,omitempty"`
	ImageURL  string `json:"image_url,omitempty" validate:"omitempty,url"`

	BirthYear       int    `json:"birth_year,omitempty" validate:"gte=0"`
	BirthPlace      string `json:"birth_place,omitempty"`
	CurrentLocation string `json:"current_location,omitempty"`

	Education   []string `json:"education,omitempty"`
	Exhibitions []string `json:"exhibitions,omitempty"`
	Awards      []string `json:"awards,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Influences  []string `json:"influences,omitempty"`
	Techniques  []string `json:"techniques,omitempty"`

	Email   string            `json:"email,omitempty"`
	Phone   string            `json:"phone,omitempty"`
	Social  map[string]string `json:"social,omitempty"`
	Website string            `json:"website,omitempty" validate:"omitempty,url"`
}
