package catalog

import (
	"encoding/json"
	"strings"
)

// Film is the catalog entry a resolved alias or detected mention points at.
// Identity is the ID; two films are never merged.
type Film struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	OriginalTitle string `json:"originalTitle,omitempty"`
	Year          int    `json:"year,omitempty"`
	Countries     string `json:"countries,omitempty"`
}

// Record is one raw catalog entry as it appears in a catalog source. Besides
// the film fields it carries explicit alternate names and locale-specific
// titles keyed by locale code (decoded from "title_<locale>" JSON fields).
type Record struct {
	ID              string
	Title           string
	OriginalTitle   string
	Year            int
	Countries       string
	Aliases         []string
	LocalizedTitles map[string]string
}

// Film returns the film value the record describes.
func (r Record) Film() Film {
	return Film{
		ID:            r.ID,
		Title:         r.Title,
		OriginalTitle: r.OriginalTitle,
		Year:          r.Year,
		Countries:     r.Countries,
	}
}

const localeTitlePrefix = "title_"

type recordFields struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"originalTitle,omitempty"`
	Year          int      `json:"year,omitempty"`
	Countries     string   `json:"countries,omitempty"`
	Aliases       []string `json:"aliases,omitempty"`
}

// UnmarshalJSON decodes the enumerated record fields and collects
// locale-specific titles from "title_<locale>" keys. Unknown fields are
// ignored; absent optional fields stay zero.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields recordFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = Record{
		ID:            fields.ID,
		Title:         fields.Title,
		OriginalTitle: fields.OriginalTitle,
		Year:          fields.Year,
		Countries:     fields.Countries,
		Aliases:       fields.Aliases,
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		if !strings.HasPrefix(key, localeTitlePrefix) {
			continue
		}
		locale := key[len(localeTitlePrefix):]
		if locale == "" {
			continue
		}
		var title string
		if err := json.Unmarshal(value, &title); err != nil {
			// Non-string locale titles are skipped, not fatal.
			continue
		}
		if title == "" {
			continue
		}
		if r.LocalizedTitles == nil {
			r.LocalizedTitles = make(map[string]string)
		}
		r.LocalizedTitles[locale] = title
	}
	return nil
}

// MarshalJSON emits the record in the catalog file format, including
// locale-specific titles as "title_<locale>" fields.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 6+len(r.LocalizedTitles))
	out["id"] = r.ID
	out["title"] = r.Title
	if r.OriginalTitle != "" {
		out["originalTitle"] = r.OriginalTitle
	}
	if r.Year != 0 {
		out["year"] = r.Year
	}
	if r.Countries != "" {
		out["countries"] = r.Countries
	}
	if len(r.Aliases) > 0 {
		out["aliases"] = r.Aliases
	}
	for locale, title := range r.LocalizedTitles {
		out[localeTitlePrefix+locale] = title
	}
	return json.Marshal(out)
}
