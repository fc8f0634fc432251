package i18n

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog")
	ErrEmptyCatalog      = errors.New("no translations found in catalog")
	ErrInvalidLanguage   = errors.New("invalid language tag in catalog")
	ErrNilCatalog        = errors.New("catalog is nil")
)
