package constants

import (
	"path/filepath"
	"strings"
)

// ImageExtensions holds the file extensions picked up by directory discovery.
var ImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"bmp":  {},
	"tif":  {},
	"tiff": {},
}

// ArtifactSuffix is appended to the source stem to derive the Markdown
// artifact filename, e.g. photo.jpg -> photo_ocr.md.
const ArtifactSuffix = "_ocr.md"

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsImageExt reports whether ext (with or without a leading dot) is a
// supported input extension.
func IsImageExt(ext string) bool {
	_, ok := ImageExtensions[NormalizeExt(ext)]
	return ok
}

// ArtifactPath derives the artifact path for a source image inside outDir.
// The mapping is deterministic: one source file, one artifact path.
func ArtifactPath(outDir, sourcePath, suffix string) string {
	if suffix == "" {
		suffix = ArtifactSuffix
	}
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, stem+suffix)
}
