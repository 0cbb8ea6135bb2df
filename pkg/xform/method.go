package xform

import (
	"fmt"
	"strings"
)

// Method selects how operation matrices are derived.
type Method int

const (
	// Library builds matrices with the math package's transform builders.
	Library Method = iota
	// Manual builds matrices from first-principles formulas.
	Manual
)

// String returns the canonical method name.
func (m Method) String() string {
	switch m {
	case Library:
		return "library"
	case Manual:
		return "manual"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod parses a method name. "gl" and "glm" are accepted for Library,
// "custom" for Manual.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "library", "lib", "gl", "glm":
		return Library, nil
	case "manual", "custom":
		return Manual, nil
	}
	return 0, fmt.Errorf("unknown transform method %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if m != Library && m != Manual {
		return nil, fmt.Errorf("unknown transform method %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
