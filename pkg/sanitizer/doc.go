// Package sanitizer provides small string transforms for cleaning submitted
// form input before it is validated or stored.
//
// Transforms are plain func(string) string values, so they chain by
// ordinary composition:
//
//	name := sanitizer.Trim(sanitizer.NormalizeUnicode("  Andre\u0301 ")) // "Andr\u00e9"
//
// None of the helpers returns an error and none of them holds state.
package sanitizer
