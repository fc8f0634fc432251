package rules

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validation"
)

// UUID validates standard UUID format with pre-validation to avoid expensive parsing.
func UUID(path validation.PropertyPath) validation.Rule[string] {
	return validation.FromPredicate(path, "must be a valid UUID", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return false
		}

		// Fast rejection: check length and hyphen positions before parsing
		if len(value) != 36 {
			return false
		}

		if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
			return false
		}

		_, err := uuid.Parse(value)
		return err == nil
	}, validation.WithCode(CodeUUID))
}

// NonNilUUID validates that a parsed UUID is not the nil UUID.
func NonNilUUID(path validation.PropertyPath) validation.Rule[uuid.UUID] {
	return validation.FromPredicate(path, "UUID cannot be nil", func(value uuid.UUID) bool {
		return value != uuid.Nil
	}, validation.WithCode(CodeUUIDNotNil))
}

// UUIDVersion validates that a UUID string parses and has the given version.
func UUIDVersion(path validation.PropertyPath, version int) validation.Rule[string] {
	return validation.FromPredicate(path, fmt.Sprintf("must be a valid UUID version %d", version), func(value string) bool {
		u, err := uuid.Parse(value)
		if err != nil {
			return false
		}
		return int(u.Version()) == version
	}, validation.WithCode(CodeUUIDVersion))
}
