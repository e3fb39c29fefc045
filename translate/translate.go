// Package translate formats the assembler's user-visible messages for the
// caller's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("tasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Tense picks the English verb agreeing with a count of supplied items:
// "was" for exactly one, "were" for none or many.
func Tense(count int) string {
	if count == 1 {
		return From("was")
	}
	return From("were")
}
