package domain

import (
	"fmt"
	"strings"
)

// Language is the working language recorded on a job history entry.
type Language string

const (
	LanguageFrench  Language = "FRENCH"
	LanguageEnglish Language = "ENGLISH"
	LanguageSpanish Language = "SPANISH"
)

// Valid reports whether l is one of the declared languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageFrench, LanguageEnglish, LanguageSpanish:
		return true
	}
	return false
}

// ParseLanguage parses a language name case-insensitively.
func ParseLanguage(raw string) (Language, error) {
	l := Language(strings.ToUpper(strings.TrimSpace(raw)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown language %q", raw)
	}
	return l, nil
}

func (l Language) MarshalText() ([]byte, error) {
	return []byte(l), nil
}

// UnmarshalText rejects names that are not declared languages.
func (l *Language) UnmarshalText(text []byte) error {
	v, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
