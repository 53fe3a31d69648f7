package model

// Icons used by the template report.
// Using simple single-width characters for consistent terminal rendering
const (
	IconCached  = "≈" // Directive served from the per-run command cache
	IconUnknown = "✗" // Bracketed name that is not a fact tag
	IconOK      = " " // Space (OK - no icon to reduce noise)
	IconColor   = "◆" // Color markup span
)
