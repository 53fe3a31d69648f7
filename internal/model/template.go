package model

// Directive is one command line found in a template.
type Directive struct {
	Line    int    `json:"line"`    // 1-based template line
	Command string `json:"command"` // Text after the marker
	Cached  bool   `json:"cached"`  // True if an earlier line already runs this command
}

// ColorSpan is one rgb["text", r, g, b] markup span.
type ColorSpan struct {
	Line int    `json:"line"` // 1-based template line
	Span string `json:"span"` // The whole markup, wrapper included
	Text string `json:"text"`
	R    uint8  `json:"r"`
	G    uint8  `json:"g"`
	B    uint8  `json:"b"`
}

// Inspection describes the markup a template contains without running it.
type Inspection struct {
	Directives  []Directive `json:"directives"`
	Commands    []string    `json:"commands"`     // Distinct commands in batch order
	Tags        []string    `json:"tags"`         // Fact tags referenced, in first-use order
	UnknownTags []string    `json:"unknown_tags"` // Bracketed names that are not fact tags
	ColorSpans  []ColorSpan `json:"color_spans"`
}
