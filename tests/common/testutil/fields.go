//go:build unit || e2e

package testutil

// Field mutates one key of a DTO map built by DtoMap. A nil value removes
// the key, which is how validation tables model missing fields.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
