package content_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impractical.co/learnphoto/content"
)

const sampleYAML = `
home:
  title: Test Home
  heroImage: images/hero.jpg
  heroText: Tagline
  aboutHeading: About
  aboutParagraph: |-
    One.

    Two.
history:
  title: Then and Now
  paragraphs:
    - First paragraph.
    - Second paragraph.
  timeline:
    - year: "1826"
      description: First photograph.
    - year: "1839"
      description: Daguerreotype.
gallery:
  title: Pictures
  images:
    - src: images/a.jpg
      alt: A
    - src: images/b.jpg
      alt: B
styles:
  title: Genres
  cards:
    - title: Macro
      description: Small things.
      image: images/macro.jpg
contact:
  title: Write Us
  email: test@example.com
`

func TestDecode(t *testing.T) {
	t.Parallel()

	store, err := content.Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Test Home", store.Home.Title)
	assert.Equal(t, content.RichText{
		{Text: "One."},
		{Break: true},
		{Break: true},
		{Text: "Two."},
	}, store.Home.AboutParagraph)

	require.Len(t, store.History.Timeline, 2)
	assert.Equal(t, "1826", store.History.Timeline[0].Year)
	assert.Equal(t, "1839", store.History.Timeline[1].Year)

	require.Len(t, store.Gallery.Images, 2)
	assert.Equal(t, content.Image{Src: "images/b.jpg", Alt: "B"}, store.Gallery.Images[1])

	require.Len(t, store.Styles.Cards, 1)
	assert.Equal(t, "Macro", store.Styles.Cards[0].Title)

	// fields missing from the file stay empty
	assert.Equal(t, "Write Us", store.Contact.Title)
	assert.Empty(t, store.Contact.Phone)
	assert.Empty(t, store.Contact.Address)
}

func TestDecode_segment_list(t *testing.T) {
	t.Parallel()

	store, err := content.Decode(strings.NewReader(`
home:
  aboutParagraph:
    - text: before
    - break: true
    - text: after
`))
	require.NoError(t, err)
	assert.Equal(t, "before\nafter", store.Home.AboutParagraph.String())
}

func TestDecode_rejects_mapping_rich_text(t *testing.T) {
	t.Parallel()

	_, err := content.Decode(strings.NewReader(`
home:
  aboutParagraph:
    text: nope
`))
	require.Error(t, err)
}

func TestDecode_empty_input(t *testing.T) {
	t.Parallel()

	store, err := content.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, content.Store{}, store)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	store, err := content.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Pictures", store.Gallery.Title)
}

func TestLoad_missing_file(t *testing.T) {
	t.Parallel()

	_, err := content.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, content.WriteJSON(&buf, content.Default()))

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "Learn Photography", decoded["home"]["title"])
	assert.Equal(t, "hello@learnphotography.com", decoded["contact"]["email"])
	assert.Len(t, decoded["history"]["timeline"], 9)
	assert.Len(t, decoded["gallery"]["images"], 15)
	assert.Len(t, decoded["styles"]["cards"], 12)
	assert.Len(t, decoded["home"]["aboutParagraph"], 4)
}
