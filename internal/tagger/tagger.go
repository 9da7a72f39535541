// Package tagger assigns entity tags to tokens of Amharic product listings
// using a fixed, ordered rule cascade.
//
// Each token is tagged from its own (whitespace-trimmed) text and at most one
// neighbour on either side. Earlier tags never influence later ones, so a
// token sequence can be labeled in any order and records are independent.
//
// A Tagger is immutable after New and safe for concurrent use.
package tagger

import (
	"strings"
)

// fromMarker ("ከ", from/by) opens price ranges such as "ከ500ብር".
const fromMarker = "ከ"

// Pair is a token together with the tag assigned to it.
// Token keeps the caller's surface form, including surrounding whitespace.
type Pair struct {
	Token string `json:"token"`
	Tag   Tag    `json:"tag"`
}

// Tagger holds the keyword sets consulted by the rule cascade.
type Tagger struct {
	unit       string
	introducer string
	markers    map[string]struct{}
	locations  map[string]struct{}
	products   map[string]struct{}
}

// New builds a Tagger from kw. The keyword lists are copied; later changes
// to kw do not affect the Tagger. Empty unit or introducer markers fall back
// to the defaults.
func New(kw Keywords) *Tagger {
	t := &Tagger{
		unit:       strings.TrimSpace(kw.PriceUnit),
		introducer: strings.TrimSpace(kw.PriceIntroducer),
		markers:    toSet(kw.PriceMarkers),
		locations:  toSet(kw.Locations),
		products:   toSet(kw.Products),
	}
	if t.unit == "" {
		t.unit = DefaultPriceUnit
	}
	if t.introducer == "" {
		t.introducer = DefaultPriceIntroducer
	}
	return t
}

// NewDefault returns a Tagger using DefaultKeywords.
func NewDefault() *Tagger {
	return New(DefaultKeywords())
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// Label tags every token. The result has the same length and order as
// tokens; an empty input yields an empty, non-nil slice.
func (t *Tagger) Label(tokens []string) []Pair {
	pairs := make([]Pair, len(tokens))
	for i, tok := range tokens {
		tag, _ := t.decide(tokens, i)
		pairs[i] = Pair{Token: tok, Tag: tag}
	}
	return pairs
}

// Rule reports which cascade rule decided the tag of tokens[i].
// It panics if i is out of range, like a slice index.
func (t *Tagger) Rule(tokens []string, i int) Rule {
	_ = tokens[i]
	_, r := t.decide(tokens, i)
	return r
}

// IsPriceMarker reports whether tok (trimmed) is one of the configured price markers.
func (t *Tagger) IsPriceMarker(tok string) bool {
	_, ok := t.markers[strings.TrimSpace(tok)]
	return ok
}

// neighbor is a token adjacent to the one being tagged. ok is false at the
// sequence boundaries.
type neighbor struct {
	text string
	ok   bool
}

func neighborAt(tokens []string, j int) neighbor {
	if j < 0 || j >= len(tokens) {
		return neighbor{}
	}
	return neighbor{text: strings.TrimSpace(tokens[j]), ok: true}
}

// is reports whether the neighbour exists and equals s.
func (n neighbor) is(s string) bool {
	return n.ok && n.text == s
}

// decide runs the cascade for tokens[i]. The first matching rule wins.
func (t *Tagger) decide(tokens []string, i int) (Tag, Rule) {
	tok := strings.TrimSpace(tokens[i])
	prev := neighborAt(tokens, i-1)
	next := neighborAt(tokens, i+1)

	if strings.HasSuffix(tok, t.unit) {
		return IPrice, RuleUnitSuffix
	}

	if tok == t.introducer {
		return BPrice, RuleIntroducer
	}

	// Numbers are settled here and never reach the keyword lookups.
	if isDigits(tok) {
		if next.is(t.unit) || prev.is(t.introducer) {
			return IPrice, RuleNumber
		}
		return O, RuleNumber
	}

	// Shadowed by RuleUnitSuffix, which already matches the bare unit.
	if tok == t.unit && prev.ok && isDigits(prev.text) {
		return IPrice, RuleUnitAfterNumber
	}

	hasIntroducer := strings.Contains(tok, t.introducer)
	hasUnit := strings.Contains(tok, t.unit)

	if hasIntroducer && hasUnit {
		return IPrice, RuleIntroducerAndUnit
	}

	if hasUnit && strings.Contains(tok, fromMarker) {
		return IPrice, RuleFromAndUnit
	}

	if hasIntroducer && hasDigit(tok) {
		return IPrice, RuleIntroducerWithDigits
	}

	if _, ok := t.locations[tok]; ok {
		return BLocation, RuleLocation
	}

	if _, ok := t.products[tok]; ok {
		return BProduct, RuleProduct
	}

	return O, RuleDefault
}

// isDigits reports whether s is non-empty and made only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}
