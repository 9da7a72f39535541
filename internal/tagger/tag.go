package tagger

import "fmt"

// Tag is an entity label assigned to a single token.
type Tag int

const (
	O         Tag = iota // Outside any entity
	BPrice               // First token of a price
	IPrice               // Continuation of a price (amount, unit, or fused price word)
	BLocation            // Known location name
	BProduct             // Known product keyword
)

var tagNames = [...]string{
	O:         "O",
	BPrice:    "B-PRICE",
	IPrice:    "I-PRICE",
	BLocation: "B-LOCATION",
	BProduct:  "B-PRODUCT",
}

var tagFromName = map[string]Tag{
	"O":          O,
	"B-PRICE":    BPrice,
	"I-PRICE":    IPrice,
	"B-LOCATION": BLocation,
	"B-PRODUCT":  BProduct,
}

// Tags lists every tag in declaration order.
func Tags() []Tag {
	return []Tag{O, BPrice, IPrice, BLocation, BProduct}
}

// String returns the corpus form of the tag, e.g. "B-PRICE".
func (t Tag) String() string {
	if int(t) >= 0 && int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// ParseTag converts a corpus label back into a Tag.
func ParseTag(s string) (Tag, error) {
	t, ok := tagFromName[s]
	if !ok {
		const maxErrLen = 50
		if len(s) > maxErrLen {
			s = s[:maxErrLen] + "..."
		}
		return O, fmt.Errorf("unknown tag: %q", s)
	}
	return t, nil
}

// MarshalText encodes the tag as its corpus label.
func (t Tag) MarshalText() ([]byte, error) {
	if int(t) < 0 || int(t) >= len(tagNames) {
		return nil, fmt.Errorf("invalid tag %d", int(t))
	}
	return []byte(tagNames[t]), nil
}

// UnmarshalText decodes a corpus label such as "I-PRICE".
func (t *Tag) UnmarshalText(data []byte) error {
	parsed, err := ParseTag(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// IsEntity reports whether the tag marks part of an entity.
func (t Tag) IsEntity() bool {
	return t != O
}
