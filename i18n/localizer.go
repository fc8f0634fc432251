package i18n

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/validation"
)

// DefaultLanguage is used when no language is requested or matched.
const DefaultLanguage = "en"

// Localizer rewrites validation error messages from a catalog. Build one once
// per catalog; it is immutable and safe for concurrent use.
type Localizer struct {
	catalog        *Catalog
	matcher        language.Matcher
	tags           []language.Tag
	langs          []string
	defaultLang    string
	fallbackToCode bool
	logMissing     bool
	logger         *slog.Logger
}

// Option configures a Localizer.
type Option func(*Localizer)

// WithDefaultLanguage sets the language used when negotiation fails.
func WithDefaultLanguage(lang string) Option {
	return func(l *Localizer) {
		if lang != "" {
			l.defaultLang = lang
		}
	}
}

// WithFallbackToCode substitutes the machine code for the message when the
// catalog has no entry. Default is to keep the original message.
func WithFallbackToCode(fallback bool) Option {
	return func(l *Localizer) {
		l.fallbackToCode = fallback
	}
}

// WithLogger provides a logger for missing-entry diagnostics. If not
// specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Localizer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMissingLogging controls whether missing catalog entries are logged.
// Default is false to avoid excessive logging.
func WithMissingLogging(log bool) Option {
	return func(l *Localizer) {
		l.logMissing = log
	}
}

// NewLocalizer creates a Localizer over the given catalog. The default
// language is placed first in the matcher so it wins ties and serves as the
// ultimate fallback.
func NewLocalizer(catalog *Catalog, opts ...Option) (*Localizer, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}

	l := &Localizer{
		catalog:     catalog,
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}

	langs := catalog.Languages()
	ordered := make([]string, 0, len(langs))
	if _, ok := catalog.messages[l.defaultLang]; ok {
		ordered = append(ordered, l.defaultLang)
	}
	for _, lang := range langs {
		if lang != l.defaultLang {
			ordered = append(ordered, lang)
		}
	}

	tags := make([]language.Tag, 0, len(ordered))
	for _, lang := range ordered {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return nil, ErrEmptyCatalog
	}

	l.tags = tags
	l.langs = ordered
	l.matcher = language.NewMatcher(tags)
	return l, nil
}

// MatchLanguage negotiates a catalog language from an Accept-Language header
// value. Unparseable or unsupported input resolves to the default language.
func (l *Localizer) MatchLanguage(acceptLanguage string) string {
	if acceptLanguage == "" {
		return l.defaultLang
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return l.defaultLang
	}
	_, index, _ := l.matcher.Match(prefs...)
	return l.langs[index]
}

// Localize returns a copy of errs with each message rewritten from the
// catalog entry for its code in the given language. Errors without a code, or
// whose code has no entry, keep their original message unless the localizer
// falls back to codes. Paths, codes, and groups are never modified; input
// order is preserved.
func (l *Localizer) Localize(lang string, errs validation.ValidationErrors) validation.ValidationErrors {
	if len(errs) == 0 {
		return errs
	}
	if _, ok := l.catalog.messages[lang]; !ok {
		lang = l.defaultLang
	}

	out := make(validation.ValidationErrors, len(errs))
	for i, err := range errs {
		if err.Code != "" {
			if msg, ok := l.catalog.Lookup(lang, err.Code); ok {
				err.Message = msg
			} else {
				if l.logMissing {
					l.logger.Warn("missing catalog entry", "lang", lang, "code", err.Code)
				}
				if l.fallbackToCode {
					err.Message = err.Code
				}
			}
		}
		out[i] = err
	}
	return out
}
