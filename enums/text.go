package enums

import (
	"strconv"
	"strings"
)

// AppendValue appends the textual form of v to dst and returns the
// extended slice. This is the single rendering primitive; String,
// FormatValue and MarshalText all build on it, so callers that already
// hold a byte sink pay no intermediate allocation.
//
// Plain mode renders the name of the first member whose value equals v,
// falling back to the decimal numeral. Flags mode renders "None" for
// zero, otherwise the ", "-joined names of every member (in declaration
// order, None and All excluded) with a nonzero value whose bits are all
// contained in v; members may overlap and every match is reported. If
// nothing matched a nonzero value, the decimal numeral is rendered.
func (t *Type) AppendValue(dst []byte, v int64) []byte {
	if !t.flags {
		if m, ok := t.MemberByValue(v); ok {
			return append(dst, m.Name...)
		}
		return strconv.AppendInt(dst, v, 10)
	}
	if v == 0 {
		return append(dst, "None"...)
	}
	matched := false
	for _, m := range t.members {
		if m.Name == "None" || m.Name == "All" {
			continue
		}
		if m.Value == 0 || v&m.Value != m.Value {
			continue
		}
		if matched {
			dst = append(dst, ", "...)
		}
		dst = append(dst, m.Name...)
		matched = true
	}
	if !matched {
		return strconv.AppendInt(dst, v, 10)
	}
	return dst
}

// FormatValue renders v per AppendValue into a fresh string.
func (t *Type) FormatValue(v int64) string {
	return string(t.AppendValue(nil, v))
}

// ParseText converts the text form of a value back to its integer. It
// accepts a member name (case-insensitive), in flags mode a
// comma-separated list of member names, or a decimal numeral, so values
// produced by AppendValue always round-trip, foreign ones included.
func (t *Type) ParseText(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if t.flags && strings.ContainsRune(s, ',') {
		var v int64
		for _, part := range strings.Split(s, ",") {
			m, ok := t.MemberByName(strings.TrimSpace(part))
			if !ok {
				return 0, &LookupError{EnumType: t.name, Name: strings.TrimSpace(part)}
			}
			v |= m.Value
		}
		return v, nil
	}
	if m, ok := t.MemberByName(s); ok {
		return m.Value, nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	return 0, &LookupError{EnumType: t.name, Name: s}
}

// String renders the value per the type's mode. See Type.AppendValue.
func (v Value[D]) String() string {
	return typeOf[D]().FormatValue(int64(v))
}

// AppendString appends the value's textual form to dst.
func (v Value[D]) AppendString(dst []byte) []byte {
	return typeOf[D]().AppendValue(dst, int64(v))
}

// MarshalText renders the value as its String form, so enum values
// embed in JSON and YAML documents as names rather than numbers.
func (v Value[D]) MarshalText() ([]byte, error) {
	return v.AppendString(nil), nil
}

// UnmarshalText accepts anything MarshalText produces. See Type.ParseText.
func (v *Value[D]) UnmarshalText(text []byte) error {
	parsed, err := typeOf[D]().ParseText(string(text))
	if err != nil {
		return err
	}
	*v = Value[D](parsed)
	return nil
}
