// Package config manages the crosskit.json project configuration.
//
// The configuration describes the consumer project's layout: the
// platform mode ("universal" or "native-only", fixed at creation) and
// the import aliases for the components and lib directories.
//
// # Lifecycle
//
// A command invocation loads crosskit.json from the working directory
// if present; otherwise the configuration is built interactively and,
// with the operator's consent, persisted. Before the installer runs,
// the alias strings are resolved into absolute paths rooted at the
// working directory. The configuration is immutable for the duration
// of one invocation.
//
// # File format
//
//	{
//	  "platforms": "universal",
//	  "aliases": {
//	    "components": "@/components",
//	    "lib": "@/lib"
//	  }
//	}
package config
