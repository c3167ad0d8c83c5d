package knowledge

import (
	"encoding/json"
	"os"

	"github.com/jonathan/icebutcher-assistant/internal/schemas"
)

// catalogListField is the top-level key holding the sculpture list.
const catalogListField = "standardSculptures"

// Item is one catalog entry. Fields other than name and imageUrl are kept
// verbatim so the entry can be re-serialized exactly as it was loaded.
type Item struct {
	Name     string `json:"name" validate:"required"`
	ImageURL string `json:"imageUrl,omitempty"`

	raw json.RawMessage
}

// NewItem builds an item that was not read from a catalog document.
func NewItem(name, imageURL string) Item {
	return Item{Name: name, ImageURL: imageURL}
}

// UnmarshalJSON decodes the known fields and retains the original bytes.
func (it *Item) UnmarshalJSON(data []byte) error {
	var fields struct {
		Name     string `json:"name"`
		ImageURL string `json:"imageUrl"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	it.Name = fields.Name
	it.ImageURL = fields.ImageURL
	it.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the original document bytes when available.
func (it Item) MarshalJSON() ([]byte, error) {
	if len(it.raw) > 0 {
		return it.raw, nil
	}
	return json.Marshal(struct {
		Name     string `json:"name"`
		ImageURL string `json:"imageUrl,omitempty"`
	}{it.Name, it.ImageURL})
}

// LoadCatalog loads the sculpture catalog from a JSON file. The document must
// be an object carrying a standardSculptures list; anything else is a
// DataFormatError rather than an empty catalog.
func LoadCatalog(path string) ([]Item, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataFormatError{
			Path:    path,
			Message: "failed to read catalog file",
			Cause:   err,
		}
	}

	return ParseCatalog(path, content)
}

// ParseCatalog decodes catalog document bytes; path is only used in errors.
func ParseCatalog(path string, content []byte) ([]Item, error) {
	if err := schemas.Validate(schemas.Catalog, content); err != nil {
		return nil, &DataFormatError{
			Path:    path,
			Message: "unexpected JSON structure, expected a '" + catalogListField + "' list",
			Cause:   err,
		}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &DataFormatError{
			Path:    path,
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	var items []Item
	if err := json.Unmarshal(doc[catalogListField], &items); err != nil {
		return nil, &DataFormatError{
			Path:    path,
			Message: "failed to decode " + catalogListField,
			Cause:   err,
		}
	}
	if items == nil {
		items = []Item{}
	}

	return items, nil
}
