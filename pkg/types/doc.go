// Package types defines the snapshot containers, the drift report, and the
// comparator configuration for the schemadrift tool.
// See docs/ARCHITECTURE.md § Data Model.
package types
