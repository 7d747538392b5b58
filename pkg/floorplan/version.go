// Package floorplan exposes build-level metadata for the floorplan tools.
package floorplan

// Version is the current release version of the floorplan module.
const Version = "0.3.0"
