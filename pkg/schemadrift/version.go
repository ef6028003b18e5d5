// Package schemadrift holds module-level metadata shared by the CLI.
package schemadrift

// Version is the schemadrift release version.
const Version = "0.1.0"
