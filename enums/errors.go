package enums

import "fmt"

// LookupError is returned by the strict lookup forms, FromValue and
// Parse, when no declared member matches. It identifies the enum type
// and the offending input.
type LookupError struct {
	EnumType string
	Name     string
	Value    int64
	ByValue  bool
}

func (e *LookupError) Error() string {
	if e.ByValue {
		return fmt.Sprintf("enums: %s has no member with value %d", e.EnumType, e.Value)
	}
	return fmt.Sprintf("enums: %s has no member named %q", e.EnumType, e.Name)
}
