// Package meta holds build-time metadata shared by the library and binary.
package meta

// Version is the gomymcp release version.
const Version = "1.0.0"
