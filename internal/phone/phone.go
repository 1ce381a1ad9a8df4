// Package phone turns free-form stored phone numbers into international
// form for messaging deep links. Formatters are registered per locale so a
// numbering-plan heuristic is never hard-wired into a view.
package phone

import (
	"errors"
	"strings"
)

// Formatter normalizes a free-form national number into +<country><number>.
type Formatter interface {
	Format(raw string) (string, error)
}

var ErrEmptyNumber = errors.New("phone number is empty")

var formatters = map[string]Formatter{
	"ru": ruFormatter{},
}

// ForLocale returns the formatter for a locale tag, falling back to "ru"
// (the plan the original deployment assumed).
func ForLocale(locale string) Formatter {
	if f, ok := formatters[strings.ToLower(locale)]; ok {
		return f
	}
	return formatters["ru"]
}

// Register installs a formatter for a locale tag.
func Register(locale string, f Formatter) {
	formatters[strings.ToLower(locale)] = f
}

// WhatsAppLink builds the outbound deep link for a normalized number.
func WhatsAppLink(normalized string) string {
	return "https://wa.me/" + normalized
}

// ruFormatter applies the Russian numbering plan: strip separators, a
// leading 8 becomes 7, a bare 10-digit mobile number gets the 7 prefix.
type ruFormatter struct{}

func (ruFormatter) Format(raw string) (string, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if clean == "" {
		return "", ErrEmptyNumber
	}

	if strings.HasPrefix(clean, "8") {
		clean = "7" + clean[1:]
	} else if strings.HasPrefix(clean, "9") && len(clean) == 10 {
		clean = "7" + clean
	}

	if !strings.HasPrefix(clean, "+") {
		clean = "+" + clean
	}
	return clean, nil
}
