package layouts

import "strings"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - FlashWeb"
	}
	return "FlashWeb"
}

// AssetURL joins the asset base and a static path. An empty base keeps the
// path root-relative.
func AssetURL(base, path string) string {
	if base == "" {
		return path
	}
	return strings.TrimRight(base, "/") + path
}
