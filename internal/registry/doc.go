// Package registry holds the component catalog and dependency resolver.
//
// This package implements the "copy-paste ownership" model for UI
// components. Components are distributed as source code that consumers
// add to their projects and own completely; the catalog is a static,
// in-process table compiled into the binary, not a network registry.
//
// # Manifest
//
// The embedded components/manifest.json declares every component:
//
//	{
//	  "manifestVersion": 1,
//	  "version": "0.3.0",
//	  "components": {
//	    "dialog": {
//	      "type": "ui",
//	      "paths": {
//	        "universal": [
//	          {"from": "dialog/dialog.tsx", "to": {"folder": "ui", "file": "dialog.tsx"}}
//	        ]
//	      },
//	      "dependencies": ["primitives", "icons", "utils"],
//	      "npmPackages": {"universal": ["@radix-ui/react-dialog"]}
//	    }
//	  }
//	}
//
// A component's paths are either a flat list (installed the same way on
// every platform mode) or keyed by platform mode; the active mode comes
// from the project configuration.
//
// # Remote registries
//
// Fetching manifests or payloads over the network is not part of this
// package. A remote source would satisfy the same two
// capabilities the installer consumes - a *Catalog and an fs.FS of
// payload files - and can be added behind those without touching the
// resolver or installer.
package registry
