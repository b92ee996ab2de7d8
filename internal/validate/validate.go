// Package validate holds the pure predicates applied to every externally
// supplied identifier before it is allowed anywhere near the database.
// Predicates reject only; nothing is trimmed or normalized.
package validate

const (
	// Account name length bounds, inclusive.
	AccountNameMin = 2
	AccountNameMax = 20
)

// AccountName reports whether name is safe to use as an account handle:
// within length bounds and built only from [A-Za-z0-9_]. The charset rule
// alone rejects empty, all-whitespace, and padded names.
func AccountName(name string) bool {
	return AccountNameLength(name) && Alphanumeric(name)
}

// AccountNameLength checks only the length bounds of an account name.
func AccountNameLength(name string) bool {
	return len(name) >= AccountNameMin && len(name) <= AccountNameMax
}

// Alphanumeric reports whether s is non-empty and every byte is a letter,
// digit, or underscore.
func Alphanumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// HexString reports whether s is non-empty and every byte is a hexadecimal
// digit. Credential keys and salts must pass this before storage.
func HexString(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Tokenize splits s on every occurrence of d. Unlike strings.Fields it keeps
// empty tokens, so "....." split on '.' yields six empty strings and the
// empty string yields a single empty token. The admin shell depends on this.
func Tokenize(s string, d rune) []string {
	tokens := []string{}
	cur := ""
	for _, r := range s {
		if r == d {
			tokens = append(tokens, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	return append(tokens, cur)
}
