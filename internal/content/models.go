package content

// Event is a single historical event shown on the timeline.
type Event struct {
	ID              string `json:"id"`
	Year            string `json:"year"`
	HijriYear       string `json:"hijriYear"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Category        string `json:"category"`
	Location        string `json:"location"`
	BackgroundImage string `json:"backgroundImage"`
	Description     string `json:"description"`
}

// EventFields is an Event without its id, as submitted by the admin form.
// The required tags are checked by the form, not by the store.
type EventFields struct {
	Year            string `validate:"required"`
	HijriYear       string `validate:"required"`
	Title           string `validate:"required"`
	Subtitle        string `validate:"required"`
	Category        string `validate:"required"`
	Location        string `validate:"required"`
	BackgroundImage string `validate:"required,url"`
	Description     string `validate:"required"`
}

// EventUpdate carries optional replacements; nil slots leave the field as is.
type EventUpdate struct {
	Year            *string
	HijriYear       *string
	Title           *string
	Subtitle        *string
	Category        *string
	Location        *string
	BackgroundImage *string
	Description     *string
}

// Category groups events on the category grid. EventCount is entered by
// hand and is not derived from the events collection.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	EventCount  int    `json:"eventCount"`
	Color       string `json:"color"`
}

type CategoryFields struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Image       string `validate:"required,url"`
	EventCount  int    `validate:"gte=0"`
	Color       string `validate:"required,oneof='from-emerald-500 to-emerald-600' 'from-blue-500 to-blue-600' 'from-purple-500 to-purple-600' 'from-orange-500 to-orange-600' 'from-red-500 to-red-600' 'from-green-500 to-emerald-500'"`
}

type CategoryUpdate struct {
	Name        *string
	Description *string
	Image       *string
	EventCount  *int
	Color       *string
}

// CategoryColors are the gradient tokens a category may use.
var CategoryColors = []string{
	"from-emerald-500 to-emerald-600",
	"from-blue-500 to-blue-600",
	"from-purple-500 to-purple-600",
	"from-orange-500 to-orange-600",
	"from-red-500 to-red-600",
	"from-green-500 to-emerald-500",
}

// Colors is the background colour pair, kept as raw hex.
type Colors struct {
	Light string
	Dark  string
}

// Snapshot is a copy of everything the store owns. Version grows by one
// with every mutation.
type Snapshot struct {
	Version    uint64
	Events     []Event
	Categories []Category
	Colors     Colors
}

func (f EventFields) event(id string) Event {
	return Event{
		ID:              id,
		Year:            f.Year,
		HijriYear:       f.HijriYear,
		Title:           f.Title,
		Subtitle:        f.Subtitle,
		Category:        f.Category,
		Location:        f.Location,
		BackgroundImage: f.BackgroundImage,
		Description:     f.Description,
	}
}

// Fields strips the id, e.g. to prefill an edit form.
// Era renders the "M / H" year label, e.g. "622 M / 1 H".
func (e Event) Era() string {
	switch {
	case e.Year == "" && e.HijriYear == "":
		return ""
	case e.HijriYear == "":
		return e.Year + " M"
	case e.Year == "":
		return e.HijriYear + " H"
	}
	return e.Year + " M / " + e.HijriYear + " H"
}

func (e Event) Fields() EventFields {
	return EventFields{
		Year:            e.Year,
		HijriYear:       e.HijriYear,
		Title:           e.Title,
		Subtitle:        e.Subtitle,
		Category:        e.Category,
		Location:        e.Location,
		BackgroundImage: e.BackgroundImage,
		Description:     e.Description,
	}
}

func (u EventUpdate) apply(e *Event) {
	set(&e.Year, u.Year)
	set(&e.HijriYear, u.HijriYear)
	set(&e.Title, u.Title)
	set(&e.Subtitle, u.Subtitle)
	set(&e.Category, u.Category)
	set(&e.Location, u.Location)
	set(&e.BackgroundImage, u.BackgroundImage)
	set(&e.Description, u.Description)
}

// FullEventUpdate replaces every field, as the edit form does on submit.
func FullEventUpdate(f EventFields) EventUpdate {
	return EventUpdate{
		Year:            &f.Year,
		HijriYear:       &f.HijriYear,
		Title:           &f.Title,
		Subtitle:        &f.Subtitle,
		Category:        &f.Category,
		Location:        &f.Location,
		BackgroundImage: &f.BackgroundImage,
		Description:     &f.Description,
	}
}

func (f CategoryFields) category(id string) Category {
	return Category{
		ID:          id,
		Name:        f.Name,
		Description: f.Description,
		Image:       f.Image,
		EventCount:  f.EventCount,
		Color:       f.Color,
	}
}

func (c Category) Fields() CategoryFields {
	return CategoryFields{
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		EventCount:  c.EventCount,
		Color:       c.Color,
	}
}

func (u CategoryUpdate) apply(c *Category) {
	set(&c.Name, u.Name)
	set(&c.Description, u.Description)
	set(&c.Image, u.Image)
	set(&c.Color, u.Color)
	if u.EventCount != nil {
		c.EventCount = *u.EventCount
	}
}

func FullCategoryUpdate(f CategoryFields) CategoryUpdate {
	return CategoryUpdate{
		Name:        &f.Name,
		Description: &f.Description,
		Image:       &f.Image,
		EventCount:  &f.EventCount,
		Color:       &f.Color,
	}
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
