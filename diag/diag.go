// Package diag is a thin localization layer over the handful of
// diagnostic phrases that recur across the generator's error types
// ("expected %s, got %s", "unexpected %s", "end of input"). It is
// additive, not load-bearing: package recognizer and package meta
// still format their own Error.Error() directly in English, so a bug
// here cannot break library-level diagnostics. No other package in
// this module imports diag; cmd/parsegen reports errors through kong's
// FatalIfErrorf.
//
package diag

import (
	_ "embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/i18n/bundle"
)

//go:embed translations/en.json
var englishTranslations []byte

// Bundle renders diagnostic message IDs into localized text.
type Bundle struct {
	b    *bundle.Bundle
	lang string
}

// New loads the embedded English translation bundle. lang selects
// which locale's strings to render; "en" is always available.
func New(lang string) (*Bundle, error) {
	b := bundle.New()
	if err := b.ParseTranslationFileBytes("translations/en.json", englishTranslations); err != nil {
		return nil, fmt.Errorf("diag: loading embedded translations: %w", err)
	}
	return &Bundle{b: b, lang: lang}, nil
}

// ExpectedToken renders the "expected X, got Y" diagnostic.
func (d *Bundle) ExpectedToken(expected, got string) string {
	return d.translate("expected_token", map[string]interface{}{"Expected": expected, "Got": got})
}

// UnexpectedToken renders the "unexpected X" diagnostic.
func (d *Bundle) UnexpectedToken(got string) string {
	return d.translate("unexpected_token", map[string]interface{}{"Got": got})
}

// EndOfInput renders the "end of input" diagnostic.
func (d *Bundle) EndOfInput() string {
	return d.translate("end_of_input", nil)
}

// RecoveredAt renders the "recovered after skipping to X" diagnostic
// for the token a recognizer TrySyncRecover call stopped at. Nothing
// in this module calls it.
func (d *Bundle) RecoveredAt(token string) string {
	return d.translate("recovered_at", map[string]interface{}{"Token": token})
}

func (d *Bundle) translate(id string, data map[string]interface{}) string {
	tfunc, err := d.b.Tfunc(d.lang, "en")
	if err != nil {
		tfunc, _ = d.b.Tfunc("en")
	}
	if data == nil {
		return tfunc(id)
	}
	return tfunc(id, data)
}
