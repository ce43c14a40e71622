package classifier

import (
	"regexp"
	"strings"
)

// obfuscationClass matches runs of censor symbols that can stand in for one
// or more letters of an abusive term, e.g. "f***" or "m@d@r".
const obfuscationClass = `[*#x@$%&^!]+`

// compileObfuscationPatterns builds one anchored regex per abusive term,
// allowing every inner character to be replaced or padded by censor symbols.
// Compilation happens once at classifier construction, not per call.
func compileObfuscationPatterns(words []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < 2 {
			continue // single character can't be obfuscated meaningfully
		}
		res = append(res, compileObfuscationPattern(w))
	}
	return res
}

// compileObfuscationPattern makes a full-token regex for a single term.
// The first and last characters must be present, each middle character can
// be itself or a censor-symbol run: "fuck" matches "f*ck", "f@ck", "fuuck".
func compileObfuscationPattern(word string) *regexp.Regexp {
	runes := []rune(word)
	first, last := string(runes[0]), string(runes[len(runes)-1])

	var middle strings.Builder
	for _, r := range runes[1 : len(runes)-1] {
		middle.WriteString(`(?:` + regexp.QuoteMeta(string(r)) + `|` + obfuscationClass + `)+`)
	}

	pattern := `^` + regexp.QuoteMeta(first)
	if middle.Len() > 0 {
		pattern += `(?:[\W_]*` + middle.String() + `)?`
	}
	pattern += `[\W_]*` + regexp.QuoteMeta(last) + `$`
	return regexp.MustCompile(`(?i)` + pattern)
}
