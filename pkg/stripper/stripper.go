package stripper

import (
	"context"
	"io"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Value pattern classes for material property values
const (
	// NumericValue matches a run of digits and periods (e.g. "0.5", "1.0")
	NumericValue = `[0-9.]+`

	// HexColorValue matches a hash followed by hex digits (e.g. "#ff0000")
	HexColorValue = `#[0-9a-fA-F]+`
)

// Rule describes a single material property to remove
type Rule struct {
	// Property is the attribute key to strip (e.g. "metalness")
	Property string

	// ValuePattern matches the property's value (NumericValue or HexColorValue)
	ValuePattern string
}

// DefaultRules returns the fixed set of unsupported material properties,
// in the order they are stripped
func DefaultRules() []Rule {
	return []Rule{
		{Property: "metalness", ValuePattern: NumericValue},
		{Property: "roughness", ValuePattern: NumericValue},
		{Property: "emissive", ValuePattern: HexColorValue},
		{Property: "emissiveIntensity", ValuePattern: NumericValue},
	}
}

// Result contains the results of a strip operation
type Result struct {
	// WasModified indicates if the content changed at all
	WasModified bool

	// RemovedCount is the total number of property occurrences removed
	RemovedCount int

	// RemovedByProperty maps each property name to its removal count
	RemovedByProperty map[string]int

	// OriginalContent is the content before stripping
	OriginalContent []byte

	// ModifiedContent is the content after stripping and normalization
	ModifiedContent []byte
}

// compiledRule holds the three pattern variants for one rule. The
// leading- and trailing-separator forms must run before the bare form,
// otherwise a stray separator is left where the property used to be.
type compiledRule struct {
	property string
	variants []*regexp.Regexp // leading, trailing, bare, in that order
}

// multiSpaceRe collapses runs of two or more spaces left by removals
var multiSpaceRe = regexp.MustCompile(`  +`)

// danglingQuote is the artifact left when the removed property was the
// last entry before the end of an attribute value
const danglingQuote = `; "`

// PropertyStripper removes material properties from attribute strings
type PropertyStripper struct {
	rules []compiledRule
}

// New creates a PropertyStripper for the given rules
func New(rules []Rule) (*PropertyStripper, error) {
	if err := ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		name := regexp.QuoteMeta(rule.Property)
		variants := make([]*regexp.Regexp, 0, 3)
		for _, form := range []string{
			`; ` + name + `: ` + rule.ValuePattern,
			name + `: ` + rule.ValuePattern + `; `,
			name + `: ` + rule.ValuePattern,
		} {
			re, err := regexp.Compile(form)
			if err != nil {
				return nil, errors.Errorf("compiling pattern for %s: %w", rule.Property, err)
			}
			variants = append(variants, re)
		}
		compiled = append(compiled, compiledRule{
			property: rule.Property,
			variants: variants,
		})
	}

	return &PropertyStripper{rules: compiled}, nil
}

// ValidateRules checks that all rules are valid
func ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Property == "" {
			return errors.Errorf("rule %d: property is required", i)
		}
		if rule.ValuePattern == "" {
			return errors.Errorf("rule %d: value_pattern is required", i)
		}
		if _, err := regexp.Compile(rule.ValuePattern); err != nil {
			return errors.Errorf("rule %d: invalid value_pattern: %w", i, err)
		}
	}
	return nil
}

// strip removes all occurrences of the rule's property from text,
// returning the stripped text and the number of occurrences removed
func (r compiledRule) strip(text string) (string, int) {
	removed := 0
	for _, re := range r.variants {
		matches := re.FindAllStringIndex(text, -1)
		if len(matches) == 0 {
			continue
		}
		removed += len(matches)
		text = re.ReplaceAllString(text, "")
	}
	return text, removed
}

// StripProperty removes a single property from text. It compiles the
// rule on every call, so hot paths should build a PropertyStripper
// instead.
func StripProperty(text, property, valuePattern string) (string, error) {
	s, err := New([]Rule{{Property: property, ValuePattern: valuePattern}})
	if err != nil {
		return "", err
	}
	stripped, _ := s.rules[0].strip(text)
	return stripped, nil
}

// Normalize collapses runs of two or more spaces into a single space
// and removes a semicolon-space immediately before a closing quote
func Normalize(text string) string {
	text = multiSpaceRe.ReplaceAllString(text, " ")
	return strings.ReplaceAll(text, danglingQuote, `"`)
}

// Process applies all rules in order, then normalizes the residue.
// Returns a Result containing the modified content and removal counts.
func (s *PropertyStripper) Process(ctx context.Context, content io.Reader) (*Result, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &Result{
		OriginalContent:   originalContent,
		RemovedByProperty: make(map[string]int, len(s.rules)),
	}

	currentContent := string(originalContent)
	for _, rule := range s.rules {
		stripped, removed := rule.strip(currentContent)
		if removed > 0 {
			result.RemovedCount += removed
			result.RemovedByProperty[rule.property] = removed
		}
		currentContent = stripped
	}

	currentContent = Normalize(currentContent)

	result.ModifiedContent = []byte(currentContent)
	result.WasModified = currentContent != string(originalContent)
	return result, nil
}

// Properties returns the property names this stripper targets, in order
func (s *PropertyStripper) Properties() []string {
	names := make([]string, 0, len(s.rules))
	for _, rule := range s.rules {
		names = append(names, rule.property)
	}
	return names
}
