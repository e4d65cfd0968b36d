package utils

// Value dereferences p, returning the zero value when p is nil.
func Value[T any](p *T) T {
	if p == nil {
		return *new(T)
	}
	return *p
}

// Ptr returns a pointer to v. Useful for building patch payloads whose
// optional fields are pointers.
func Ptr[T any](v T) *T {
	return &v
}

// ToStringSlice keeps the string elements of a decoded JSON array,
// silently dropping everything else.
func ToStringSlice(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
