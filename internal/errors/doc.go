// Package errors provides structured, coded errors for hydration.
//
// Every error carries a code (e.g. "H003") that maps to a category, a
// short message and a longer explanation. Codes are comparable with the
// standard library: errors.Is(err, errors.New("H003")) reports whether
// err, or anything it wraps, carries the same code.
//
// # Error Categories
//
//   - hydration: structure mismatches, exhausted DOM positions, invalid
//     handlers, unrenderable children, repeated hydration
//   - delta: malformed serialized delta trees
//   - config: missing or invalid hydrate.json
//
// Recovered hydration conditions (H001, H002) are only logged; the rest
// are returned to the caller scoped to the branch that failed.
//
// # Usage
//
//	err := errors.New("H003").
//	    WithTag("button").
//	    WithDetail(`prop "onclick" holds string`)
//
//	fmt.Println(err.Format())
package errors
