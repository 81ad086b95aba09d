// Package errors provides structured, actionable error messages for crosskit.
//
// Every operator-facing failure goes through this package so that raw
// internal error objects are never shown directly. Each error carries:
//   - A short message describing the error
//   - A detailed explanation
//   - An optional fix suggestion
//   - A documentation URL
//
// # Error Categories
//
// Errors are organized into categories:
//   - cli: command-line usage errors (bad working directory, bad flags)
//   - config: crosskit.json shape and persistence errors
//   - registry: component resolution errors (unknown names, missing variants)
//   - io: file read/write failures during installation
//
// # Usage
//
//	err := errors.New("E201").
//	    WithDetail("Unknown components: carousel, toast").
//	    WithSuggestion("Run 'crosskit list' to see available components")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E201: Unknown component
//	//
//	//   Unknown components: carousel, toast
//	//
//	//   Hint: Run 'crosskit list' to see available components
//	//
//	//   Learn more: https://crosskit.dev/docs/errors/E201
package errors
