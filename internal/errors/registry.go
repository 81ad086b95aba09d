package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// CLI Errors (E100-E199)
	// ============================================

	"E101": {
		Category: CategoryCLI,
		Message:  "Invalid working directory",
		Detail:   "The directory passed via --cwd does not exist or is not accessible.",
		DocURL:   "https://crosskit.dev/docs/errors/E101",
	},

	// ============================================
	// Configuration Errors (E103-E199)
	// ============================================

	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "crosskit.json does not match the expected schema.",
		DocURL:   "https://crosskit.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Could not write configuration",
		Detail:   "crosskit.json could not be written to the project root.",
		DocURL:   "https://crosskit.dev/docs/errors/E104",
	},

	// ============================================
	// Registry Errors (E200-E299)
	// ============================================

	"E201": {
		Category: CategoryRegistry,
		Message:  "Unknown component",
		Detail:   "One or more requested components are not in the registry.",
		DocURL:   "https://crosskit.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryRegistry,
		Message:  "No variant for platform",
		Detail:   "The component does not declare files for the configured platform mode.",
		DocURL:   "https://crosskit.dev/docs/errors/E202",
	},

	// ============================================
	// I/O Errors (E300-E399)
	// ============================================

	"E301": {
		Category: CategoryIO,
		Message:  "Could not read component source",
		Detail:   "A component source file listed in the registry could not be read.",
		DocURL:   "https://crosskit.dev/docs/errors/E301",
	},
	"E302": {
		Category: CategoryIO,
		Message:  "Could not write component file",
		Detail:   "A component file could not be written to the destination directory.",
		DocURL:   "https://crosskit.dev/docs/errors/E302",
	},
	"E303": {
		Category: CategoryConfig,
		Message:  "Invalid rewrite rules file",
		Detail:   "The rewrite rules overlay file could not be parsed.",
		DocURL:   "https://crosskit.dev/docs/errors/E303",
	},
}
