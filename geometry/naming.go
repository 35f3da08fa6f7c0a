package geometry

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DeriveName inserts "__{w}x{h}" before the final extension of input.
// Leading dots of the file name do not start an extension.
func DeriveName(input string, size Size) string {
	ext := Ext(input)
	stem := strings.TrimSuffix(input, ext)
	return fmt.Sprintf("%s__%dx%d%s", stem, size.Width, size.Height, ext)
}

// Ext is filepath.Ext except that a dot-file such as ".hidden" has no extension.
func Ext(path string) string {
	base := filepath.Base(path)
	if strings.TrimLeft(base, ".") == "" {
		return ""
	}
	ext := filepath.Ext(base)
	if strings.TrimLeft(base[:len(base)-len(ext)], ".") == "" {
		return ""
	}
	return ext
}
