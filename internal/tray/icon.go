package tray

import _ "embed"

//go:embed icon.ico
var iconData []byte

// Icon returns the 16x16 tray icon.
func Icon() []byte {
	return iconData
}
