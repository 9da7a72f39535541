// Package keywords loads the tagger's keyword lists from TOML or YAML files.
//
// Fields missing from a file keep their built-in defaults, so a file that
// only lists extra locations is valid.
package keywords

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/rcliao/amharic-ner/internal/tagger"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid keywords")

// Format selects the file encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// File is the on-disk shape of a keyword configuration.
type File struct {
	PriceMarkers    []string `toml:"price_markers" yaml:"price_markers"`
	PriceUnit       string   `toml:"price_unit" yaml:"price_unit"`
	PriceIntroducer string   `toml:"price_introducer" yaml:"price_introducer"`
	Locations       []string `toml:"locations" yaml:"locations"`
	Products        []string `toml:"products" yaml:"products"`
}

// FormatFor picks a format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unsupported keyword file %q (use .toml, .yaml or .yml)", path)
}

// Load reads and validates a keyword file. An empty path returns the defaults.
func Load(path string) (tagger.Keywords, error) {
	if path == "" {
		return tagger.DefaultKeywords(), nil
	}

	format, err := FormatFor(path)
	if err != nil {
		return tagger.Keywords{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tagger.Keywords{}, fmt.Errorf("read keywords: %w", err)
	}

	kw, err := Parse(data, format)
	if err != nil {
		return tagger.Keywords{}, fmt.Errorf("%s: %w", path, err)
	}
	return kw, nil
}

// Parse decodes data, fills unset fields from the defaults, and validates.
func Parse(data []byte, format Format) (tagger.Keywords, error) {
	var f File
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &f)
	case YAML:
		err = yaml.Unmarshal(data, &f)
	default:
		return tagger.Keywords{}, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return tagger.Keywords{}, fmt.Errorf("decode %s: %w", format, err)
	}

	kw := merge(f, tagger.DefaultKeywords())
	if err := Validate(kw); err != nil {
		return tagger.Keywords{}, err
	}
	return kw, nil
}

func merge(f File, def tagger.Keywords) tagger.Keywords {
	kw := def
	if f.PriceMarkers != nil {
		kw.PriceMarkers = clean(f.PriceMarkers)
	}
	if f.PriceUnit != "" {
		kw.PriceUnit = strings.TrimSpace(f.PriceUnit)
	}
	if f.PriceIntroducer != "" {
		kw.PriceIntroducer = strings.TrimSpace(f.PriceIntroducer)
	}
	if f.Locations != nil {
		kw.Locations = clean(f.Locations)
	}
	if f.Products != nil {
		kw.Products = clean(f.Products)
	}
	return kw
}

// clean joins multi-word entries (tokens never contain spaces), drops
// blanks and removes duplicates while keeping first-seen order.
func clean(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		w = strings.Join(strings.Fields(w), "")
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// Validate checks that the price unit and introducer are usable markers.
func Validate(kw tagger.Keywords) error {
	for _, m := range []struct {
		name, value string
	}{
		{"price_unit", kw.PriceUnit},
		{"price_introducer", kw.PriceIntroducer},
	} {
		if m.value == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalid, m.name)
		}
		if strings.ContainsFunc(m.value, unicode.IsSpace) {
			return fmt.Errorf("%w: %s %q contains whitespace", ErrInvalid, m.name, m.value)
		}
		if !slices.Contains(kw.PriceMarkers, m.value) {
			return fmt.Errorf("%w: %s %q is not listed in price_markers", ErrInvalid, m.name, m.value)
		}
	}
	if kw.PriceUnit == kw.PriceIntroducer {
		return fmt.Errorf("%w: price_unit and price_introducer are both %q", ErrInvalid, kw.PriceUnit)
	}
	return nil
}

// Marshal encodes kw in the given format, e.g. to seed a config file.
func Marshal(kw tagger.Keywords, format Format) ([]byte, error) {
	f := File{
		PriceMarkers:    kw.PriceMarkers,
		PriceUnit:       kw.PriceUnit,
		PriceIntroducer: kw.PriceIntroducer,
		Locations:       kw.Locations,
		Products:        kw.Products,
	}
	switch format {
	case TOML:
		return toml.Marshal(f)
	case YAML:
		return yaml.Marshal(f)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
