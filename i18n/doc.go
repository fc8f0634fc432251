// Package i18n translates validation error messages by their machine codes.
//
// Validation rules attach stable codes (e.g. "validation.required") to the
// errors they produce; this package looks those codes up in per-language
// catalogs and rewrites the human-readable messages, leaving paths, codes,
// and groups untouched. Catalogs are plain YAML documents keyed by language:
//
//	en:
//	  validation:
//	    required: must not be blank
//	    min_length: is too short
//	uk:
//	  validation:
//	    required: не може бути порожнім
//
// Both nested maps (as above) and flat dotted keys are accepted.
//
// # Usage
//
//	catalog, err := i18n.ParseYAML(catalogBytes)
//	if err != nil { ... }
//
//	localizer, err := i18n.NewLocalizer(catalog, i18n.WithDefaultLanguage("en"))
//	if err != nil { ... }
//
//	lang := localizer.MatchLanguage(r.Header.Get("Accept-Language"))
//	errs := localizer.Localize(lang, result.Errors())
//
// Language negotiation uses golang.org/x/text/language, so "uk-UA" resolves
// to a "uk" catalog and unsupported languages fall back to the default.
//
// # Error Handling
//
// An error whose code has no catalog entry keeps its original message by
// default; WithFallbackToCode substitutes the code itself instead, which is
// useful for surfacing missing catalog entries in development.
package i18n
