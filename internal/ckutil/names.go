package ckutil

import (
	"regexp"
	"strings"
)

var nonWordAtWordBoundary = regexp.MustCompile(`(\W)([a-zA-Z][a-z])`)
var startingDigits = regexp.MustCompile(`^([\d]+)(.*)`)

// NormalizeName converts a human readable name, like "Mechanism Type", into
// a go identifier, like "MechanismType".
func NormalizeName(s string) string {
	// 1. Replace round brackets with spaces
	s = strings.Map(func(r rune) rune {
		switch r {
		case '(', ')':
			return ' '
		}
		return r
	}, s)

	// 2. If a non-word char is followed by a letter then a lower case letter, replace the non-word char with space
	s = nonWordAtWordBoundary.ReplaceAllString(s, " $2")

	// 3. Replace remaining non-word chars (except whitespace) with underscore.
	s = strings.Map(wordRune, s)

	words := strings.Split(s, " ")

	for i, w := range words {
		if i == 0 {
			// 4. If the first word begins with a digit, move all digits at start of first word to end of first word
			w = startingDigits.ReplaceAllString(w, `$2$1`)
		}

		// 5. Capitalize the first letter of each word
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}

	// 6. Concatenate all words with spaces removed
	return strings.Join(words, "")
}

// ConstName derives the suffix of a go constant name from a PKCS#11
// constant name.  The PKCS#11 prefix is removed, and the rest is kept
// as written, so "CKM_SHA256_RSA_PKCS" with prefix "CKM_" becomes
// "SHA256_RSA_PKCS".
func ConstName(name, prefix string) string {
	s := strings.TrimPrefix(name, prefix)
	s = strings.Map(func(r rune) rune {
		if r == ' ' {
			return '_'
		}
		return wordRune(r)
	}, s)
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}

func wordRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
	case r >= 'A' && r <= 'Z':
	case r >= '0' && r <= '9':
	case r == '_':
	case r == ' ':
	default:
		return '_'
	}
	return r
}
