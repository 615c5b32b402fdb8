package util

import (
	"path/filepath"
	"strings"
)

// ComputeBaseHref returns the relative path from a generated page back to
// the site root, so asset links work at any depth. A page at
// blog/artigos/hello/index.html gets "../../../".
func ComputeBaseHref(relPath string) string {
	dir := filepath.ToSlash(filepath.Dir(relPath))
	if dir == "." || dir == "" {
		return ""
	}
	return strings.Repeat("../", strings.Count(dir, "/")+1)
}
