//go:build logcolor

package core

// ColorEnabled reports whether console output is colorized by default.
const ColorEnabled = true
