package errs

import "github.com/agnivade/levenshtein"

// maxSuggestDistance is the largest edit distance still offered as a hint.
const maxSuggestDistance = 2

// Suggest returns the candidate closest to word, or "" when none is close
// enough to be a plausible typo.
func Suggest(word string, candidates []string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(word, c)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// UnknownKeywordError reports word as an unrecognized top-level keyword.
func UnknownKeywordError(src string, offset int, word string, keywords []string) *Error {
	msg := "unknown keyword " + quote(word)
	if s := Suggest(word, keywords); s != "" {
		msg += " (did you mean " + quote(s) + "?)"
	}
	return New(UnknownKeyword, src, offset, msg)
}

func quote(s string) string {
	return "\"" + s + "\""
}
