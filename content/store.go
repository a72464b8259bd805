package content

// Store is the full set of content for the site, one record per page.
type Store struct {
	Home    Home    `json:"home" yaml:"home"`
	History History `json:"history" yaml:"history"`
	Gallery Gallery `json:"gallery" yaml:"gallery"`
	Styles  Styles  `json:"styles" yaml:"styles"`
	Contact Contact `json:"contact" yaml:"contact"`
}

// Home is the landing page: a full-width hero image with a tagline, followed
// by an about section.
type Home struct {
	Title          string   `json:"title" yaml:"title"`
	HeroImage      string   `json:"heroImage" yaml:"heroImage"`
	HeroText       string   `json:"heroText" yaml:"heroText"`
	AboutHeading   string   `json:"aboutHeading" yaml:"aboutHeading"`
	AboutParagraph RichText `json:"aboutParagraph" yaml:"aboutParagraph"`
}

// History is a short narrative followed by a timeline of milestones.
type History struct {
	Title      string          `json:"title" yaml:"title"`
	Paragraphs []string        `json:"paragraphs" yaml:"paragraphs"`
	Timeline   []TimelineEntry `json:"timeline" yaml:"timeline"`
}

// TimelineEntry is one milestone. Year is text; it is never parsed.
type TimelineEntry struct {
	Year        string `json:"year" yaml:"year"`
	Description string `json:"description" yaml:"description"`
}

// Gallery is a grid of images.
type Gallery struct {
	Title  string  `json:"title" yaml:"title"`
	Images []Image `json:"images" yaml:"images"`
}

// Image is a reference to a file under images/ plus its alt text.
type Image struct {
	Src string `json:"src" yaml:"src"`
	Alt string `json:"alt" yaml:"alt"`
}

// Styles lists photography genres and techniques as cards.
type Styles struct {
	Title string      `json:"title" yaml:"title"`
	Cards []StyleCard `json:"cards" yaml:"cards"`
}

// StyleCard is a single genre card.
type StyleCard struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
}

// Contact holds the contact page details.
type Contact struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Address     string `json:"address" yaml:"address"`
	Phone       string `json:"phone" yaml:"phone"`
	Email       string `json:"email" yaml:"email"`
}
