package args

import (
	"fmt"
	"strings"
)

type keywordSpec struct {
	name    string
	abbr    string
	usage   string
	defined bool
	value   string
}

type unarySpec struct {
	name    string
	abbr    string
	usage   string
	defined bool
}

// ArgSet holds the declared keyword and unary arguments plus the resolved
// state and diagnostics of the most recent classification pass.
//
// Declare all arguments and finish configuring separators strictly before
// the first ProcessArgs call. An ArgSet is not safe for concurrent use.
type ArgSet struct {
	description         string
	seps                string
	redefinitionIsError bool

	execName string
	keywords []keywordSpec
	unaries  []unarySpec

	diagnostics []Diagnostic
	keyRedefs   map[string]int // canonical keyword name -> index into diagnostics
	unaryRedefs map[string]int // canonical unary name -> index into diagnostics
}

func NewArgSet(opts ...Option) *ArgSet {
	cfg := setConfig{
		seps:                "=",
		redefinitionIsError: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &ArgSet{
		seps:                cfg.seps,
		redefinitionIsError: cfg.redefinitionIsError,
		keyRedefs:           make(map[string]int),
		unaryRedefs:         make(map[string]int),
	}
}

func (s *ArgSet) SetDescription(desc string) *ArgSet {
	s.description = desc
	return s
}

// KeywordArg declares a value-bearing argument, supplied either as
// "name<sep>value" in a single token or as "name value" in two.
type KeywordArg struct {
	Name         string // Primary identifier, matched exactly
	Abbreviation string // Optional alternate spelling, matched exactly
	Usage        string // Help text shown in usage output
}

func NewKeywordArg(name string) *KeywordArg {
	return &KeywordArg{Name: name}
}

func (k *KeywordArg) SetAbbreviation(abbr string) *KeywordArg {
	k.Abbreviation = abbr
	return k
}

func (k *KeywordArg) SetUsage(u string) *KeywordArg {
	k.Usage = u
	return k
}

// Register adds the keyword argument to the set, validating it against every
// name and abbreviation already declared in either collection.
func (k *KeywordArg) Register(s *ArgSet) error {
	if err := s.validateNewArg("keyword", k.Name, k.Abbreviation); err != nil {
		return err
	}
	s.keywords = append(s.keywords, keywordSpec{name: k.Name, abbr: k.Abbreviation, usage: k.Usage})
	return nil
}

// UnaryArg declares a flag argument: a single token with no value.
type UnaryArg struct {
	Name         string // Primary identifier, matched exactly
	Abbreviation string // Optional alternate spelling, matched exactly
	Usage        string // Help text shown in usage output
}

func NewUnaryArg(name string) *UnaryArg {
	return &UnaryArg{Name: name}
}

func (u *UnaryArg) SetAbbreviation(abbr string) *UnaryArg {
	u.Abbreviation = abbr
	return u
}

func (u *UnaryArg) SetUsage(usage string) *UnaryArg {
	u.Usage = usage
	return u
}

// Register adds the unary argument to the set, validating it against every
// name and abbreviation already declared in either collection.
func (u *UnaryArg) Register(s *ArgSet) error {
	if err := s.validateNewArg("unary", u.Name, u.Abbreviation); err != nil {
		return err
	}
	s.unaries = append(s.unaries, unarySpec{name: u.Name, abbr: u.Abbreviation, usage: u.Usage})
	return nil
}

func (s *ArgSet) validateNewArg(kind, name, abbr string) error {
	if name == "" {
		return newConfigError("%s argument name cannot be empty", kind)
	}

	label := fmt.Sprintf("%s argument %q", kind, name)
	if err := s.checkCollision(label, name); err != nil {
		return err
	}
	if err := s.checkSeparatorChars(label, name); err != nil {
		return err
	}

	if abbr != "" {
		abbrLabel := fmt.Sprintf("abbreviation %q for %s argument %q", abbr, kind, name)
		if abbr == name {
			return newConfigError("%s duplicates its own name", abbrLabel)
		}
		if err := s.checkCollision(abbrLabel, abbr); err != nil {
			return err
		}
		if err := s.checkSeparatorChars(abbrLabel, abbr); err != nil {
			return err
		}
	}

	return nil
}

// checkCollision rejects text if it equals any declared full name or any
// declared non-empty abbreviation. Names and abbreviations share a single
// namespace across both collections.
func (s *ArgSet) checkCollision(label, text string) error {
	for i := range s.keywords {
		if s.keywords[i].name == text {
			return newConfigError("%s collides with keyword argument %q", label, s.keywords[i].name)
		}
		if s.keywords[i].abbr != "" && s.keywords[i].abbr == text {
			return newConfigError("%s collides with the abbreviation of keyword argument %q", label, s.keywords[i].name)
		}
	}
	for i := range s.unaries {
		if s.unaries[i].name == text {
			return newConfigError("%s collides with unary argument %q", label, s.unaries[i].name)
		}
		if s.unaries[i].abbr != "" && s.unaries[i].abbr == text {
			return newConfigError("%s collides with the abbreviation of unary argument %q", label, s.unaries[i].name)
		}
	}
	return nil
}

func (s *ArgSet) checkSeparatorChars(label, text string) error {
	for _, c := range s.seps {
		if strings.ContainsRune(text, c) {
			return newConfigError("%s contains separator character %q", label, c)
		}
	}
	return nil
}

// SetSeparators replaces the key/value separator characters. It fails if any
// already-declared name or abbreviation contains one of the new characters.
// Characters dropped from the old set are not re-checked.
func (s *ArgSet) SetSeparators(seps string) error {
	for _, c := range seps {
		for i := range s.keywords {
			if strings.ContainsRune(s.keywords[i].name, c) {
				return newConfigError("separator characters cannot include %q: it appears in keyword argument %q", c, s.keywords[i].name)
			}
			if strings.ContainsRune(s.keywords[i].abbr, c) {
				return newConfigError("separator characters cannot include %q: it appears in the abbreviation %q of keyword argument %q", c, s.keywords[i].abbr, s.keywords[i].name)
			}
		}
		for i := range s.unaries {
			if strings.ContainsRune(s.unaries[i].name, c) {
				return newConfigError("separator characters cannot include %q: it appears in unary argument %q", c, s.unaries[i].name)
			}
			if strings.ContainsRune(s.unaries[i].abbr, c) {
				return newConfigError("separator characters cannot include %q: it appears in the abbreviation %q of unary argument %q", c, s.unaries[i].abbr, s.unaries[i].name)
			}
		}
	}
	s.seps = seps
	return nil
}

func (s *ArgSet) Separators() string {
	return s.seps
}

func (s *ArgSet) SetRedefinitionIsError(b bool) {
	s.redefinitionIsError = b
}

func (s *ArgSet) RedefinitionIsError() bool {
	return s.redefinitionIsError
}

// ExecName returns the zeroth token of the most recent pass, verbatim.
func (s *ArgSet) ExecName() string {
	return s.execName
}

// HasKeywordArg reports whether a keyword argument with this full name is
// declared. Abbreviations do not match.
func (s *ArgSet) HasKeywordArg(name string) bool {
	for i := range s.keywords {
		if s.keywords[i].name == name {
			return true
		}
	}
	return false
}

// KeywordArgDefined reports whether the keyword argument was supplied in the
// most recent pass. Fails with a ConfigError if name is not declared.
func (s *ArgSet) KeywordArgDefined(name string) (bool, error) {
	for i := range s.keywords {
		if s.keywords[i].name == name {
			return s.keywords[i].defined, nil
		}
	}
	return false, newConfigError("no such keyword argument: %q", name)
}

// ValueForKeywordArg returns the resolved value for the keyword argument,
// the empty string if it was not supplied. Fails with a ConfigError if name
// is not declared.
func (s *ArgSet) ValueForKeywordArg(name string) (string, error) {
	for i := range s.keywords {
		if s.keywords[i].name == name {
			return s.keywords[i].value, nil
		}
	}
	return "", newConfigError("cannot retrieve value for %q: no such keyword argument", name)
}

// HasUnaryArg reports whether a unary argument with this full name is
// declared. Abbreviations do not match.
func (s *ArgSet) HasUnaryArg(name string) bool {
	for i := range s.unaries {
		if s.unaries[i].name == name {
			return true
		}
	}
	return false
}

// UnaryArgDefined reports whether the unary argument was supplied in the
// most recent pass. Fails with a ConfigError if name is not declared.
func (s *ArgSet) UnaryArgDefined(name string) (bool, error) {
	for i := range s.unaries {
		if s.unaries[i].name == name {
			return s.unaries[i].defined, nil
		}
	}
	return false, newConfigError("no such unary argument: %q", name)
}

// Diagnostics returns the diagnostics of the most recent pass, in
// first-occurrence order.
func (s *ArgSet) Diagnostics() []Diagnostic {
	return s.diagnostics
}
