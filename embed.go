package main

import (
	"embed"
	"io/fs"
)

// The status page served by internal/server.
//
//go:embed all:frontend
var frontendFiles embed.FS

// frontendFS returns the status page files rooted at "frontend".
func frontendFS() (fs.FS, error) {
	return fs.Sub(frontendFiles, "frontend")
}
