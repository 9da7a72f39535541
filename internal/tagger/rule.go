package tagger

import "fmt"

// Rule identifies the step of the cascade that produced a tag.
// Rules are listed in evaluation order.
type Rule int

const (
	RuleUnitSuffix           Rule = iota + 1 // token ends with the price unit
	RuleIntroducer                           // token is the price introducer
	RuleNumber                               // token is all digits; neighbours decide price vs. O
	RuleUnitAfterNumber                      // bare unit after a number
	RuleIntroducerAndUnit                    // token contains introducer and unit
	RuleFromAndUnit                          // token contains "ከ" and unit
	RuleIntroducerWithDigits                 // token contains introducer and a digit
	RuleLocation                             // known location
	RuleProduct                              // known product keyword
	RuleDefault                              // nothing matched
)

var ruleNames = [...]string{
	RuleUnitSuffix:           "unit-suffix",
	RuleIntroducer:           "introducer",
	RuleNumber:               "number",
	RuleUnitAfterNumber:      "unit-after-number",
	RuleIntroducerAndUnit:    "introducer-and-unit",
	RuleFromAndUnit:          "from-and-unit",
	RuleIntroducerWithDigits: "introducer-with-digits",
	RuleLocation:             "location",
	RuleProduct:              "product",
	RuleDefault:              "default",
}

// String returns a short kebab-case rule name.
func (r Rule) String() string {
	if int(r) > 0 && int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}
