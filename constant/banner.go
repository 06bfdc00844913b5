package constant

import _ "embed"

//go:embed ascii.txt
var Banner string

// GOOS values the opener distinguishes.
const (
	Linux   = "linux"
	Darwin  = "darwin"
	Windows = "windows"
	Android = "android"
)
