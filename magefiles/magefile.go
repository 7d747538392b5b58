//go:build mage

package main

// Default is the target run by a bare `mage` invocation.
var Default = Build
