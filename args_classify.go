package args

import (
	"strings"
	"unicode/utf8"
)

// ProcessArgs classifies a raw argument vector against the declared set.
// argv[0] is captured verbatim as the executable name; classification begins
// at argv[1]. Resolved state and diagnostics from any earlier pass are
// discarded first, so a pass is a pure function of (declarations, argv).
//
// Every anomaly becomes a diagnostic rather than an error, with one
// exception: a keyword argument as the final token has no value to consume,
// which records a NoValueForKey diagnostic and ends the pass immediately.
func (s *ArgSet) ProcessArgs(argv []string) {
	s.reset()
	if len(argv) == 0 {
		return
	}
	s.execName = argv[0]

	ai := 1
	for ai < len(argv) {
		arg := argv[ai]

		// A token containing a separator character commits to the
		// key/value shape. It never falls through to the unary or
		// keyword-with-following-value rules, even on no match.
		if keyword, value, ok := s.splitKeyValue(arg); ok {
			if ki := s.findKeyword(keyword); ki >= 0 {
				s.bindKeyword(ki, value)
			} else {
				s.diagnostics = append(s.diagnostics, &UnrecognizedArg{arg: arg})
			}
			ai++
			continue
		}

		if ui := s.findUnary(arg); ui >= 0 {
			if s.unaries[ui].defined {
				if s.redefinitionIsError {
					s.recordUnaryRedefinition(s.unaries[ui].name)
				}
			} else {
				s.unaries[ui].defined = true
			}
			ai++
			continue
		}

		if ki := s.findKeyword(arg); ki >= 0 {
			if ai+1 == len(argv) {
				s.diagnostics = append(s.diagnostics, &NoValueForKey{key: arg})
				return
			}
			s.bindKeyword(ki, argv[ai+1])
			ai += 2
			continue
		}

		s.diagnostics = append(s.diagnostics, &UnrecognizedArg{arg: arg})
		ai++
	}
}

func (s *ArgSet) reset() {
	s.execName = ""
	s.diagnostics = nil
	s.keyRedefs = make(map[string]int)
	s.unaryRedefs = make(map[string]int)
	for i := range s.keywords {
		s.keywords[i].defined = false
		s.keywords[i].value = ""
	}
	for i := range s.unaries {
		s.unaries[i].defined = false
	}
}

// splitKeyValue splits arg at the first occurrence of the first separator
// character, in declared order, that appears anywhere in it. The value may
// be empty.
func (s *ArgSet) splitKeyValue(arg string) (keyword, value string, ok bool) {
	for _, c := range s.seps {
		if i := strings.IndexRune(arg, c); i >= 0 {
			return arg[:i], arg[i+utf8.RuneLen(c):], true
		}
	}
	return "", "", false
}

func (s *ArgSet) findKeyword(text string) int {
	for i := range s.keywords {
		if s.keywords[i].name == text || (s.keywords[i].abbr != "" && s.keywords[i].abbr == text) {
			return i
		}
	}
	return -1
}

func (s *ArgSet) findUnary(text string) int {
	for i := range s.unaries {
		if s.unaries[i].name == text || (s.unaries[i].abbr != "" && s.unaries[i].abbr == text) {
			return i
		}
	}
	return -1
}

// bindKeyword records a value for the keyword spec at ki. The last value
// always wins, whether or not a redefinition diagnostic was recorded.
func (s *ArgSet) bindKeyword(ki int, value string) {
	if s.keywords[ki].defined {
		if s.redefinitionIsError {
			s.recordKeyRedefinition(s.keywords[ki].name)
		}
	} else {
		s.keywords[ki].defined = true
	}
	s.keywords[ki].value = value
}

// Redefinition diagnostics are singletons per canonical name: a repeat bumps
// the count on the existing entry instead of appending a new one.
func (s *ArgSet) recordKeyRedefinition(name string) {
	if di, ok := s.keyRedefs[name]; ok {
		s.diagnostics[di].(*RedefinitionOfKey).count++
		return
	}
	s.keyRedefs[name] = len(s.diagnostics)
	s.diagnostics = append(s.diagnostics, &RedefinitionOfKey{key: name, count: 2})
}

func (s *ArgSet) recordUnaryRedefinition(name string) {
	if di, ok := s.unaryRedefs[name]; ok {
		s.diagnostics[di].(*RedefinitionOfUnary).count++
		return
	}
	s.unaryRedefs[name] = len(s.diagnostics)
	s.diagnostics = append(s.diagnostics, &RedefinitionOfUnary{unary: name, count: 2})
}
