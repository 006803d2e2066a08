package errors

import "sort"

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Hydration (H001-H099)

	"H001": {
		Category: CategoryHydration,
		Message:  "Structure mismatch: element tag differs",
		// Recovered: the existing node is discarded and a new one created.
	},
	"H002": {
		Category: CategoryHydration,
		Message:  "Node exhausted: no DOM node left at this position",
		// Recovered: the node is created and appended.
	},
	"H003": {
		Category:   CategoryHydration,
		Message:    "Invalid event handler",
		Suggestion: "Event props (on*) must hold func(), func(*dom.Event) or dom.Listener",
	},
	"H004": {
		Category:   CategoryHydration,
		Message:    "Unrenderable child",
		Suggestion: "Children must be literals, delta nodes, sequences, readers or zero-argument functions",
	},
	"H005": {
		Category:   CategoryHydration,
		Message:    "Root already hydrated",
		Suggestion: "Hydrate each pre-rendered root once; later updates flow through bound regions",
	},

	// Delta trees (D001-D099)

	"D001": {
		Category:   CategoryDelta,
		Message:    "Invalid delta tree",
		Suggestion: `Nodes are {"tag", "props", "children"}; use {"placeholder": true} to skip a position`,
	},

	// Configuration (C001-C099)

	"C001": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Suggestion: "Create hydrate.json or pass --config",
	},
	"C002": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},
}

// Register adds or replaces a template. Intended for tests and extensions.
func Register(code string, t Template) {
	registry[code] = t
}

// Lookup returns the template for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns every registered code in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
