package rules

// Machine-readable codes carried by catalog rules, keyed for i18n lookup.
const (
	CodeRequired     = "validation.required"
	CodeMinLength    = "validation.min_length"
	CodeMaxLength    = "validation.max_length"
	CodeExactLength  = "validation.exact_length"
	CodeMin          = "validation.min"
	CodeMax          = "validation.max"
	CodeBetween      = "validation.between"
	CodePositive     = "validation.positive"
	CodeMinItems     = "validation.min_items"
	CodeMaxItems     = "validation.max_items"
	CodeExactItems   = "validation.exact_items"
	CodeEmail        = "validation.email"
	CodeURL          = "validation.url"
	CodeAlphanumeric = "validation.alphanumeric"
	CodeNumericText  = "validation.numeric"
	CodePattern      = "validation.pattern"
	CodeOneOf        = "validation.one_of"
	CodeUUID         = "validation.uuid"
	CodeUUIDNotNil   = "validation.uuid_not_nil"
	CodeUUIDVersion  = "validation.uuid_version"
)
