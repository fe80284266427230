//go:build !debug

package dispatch

// DebugBuild is true in binaries built with -tags debug.
const DebugBuild = false
