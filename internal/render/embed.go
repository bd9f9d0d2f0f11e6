package render

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
)

// Resource is the embeddable form of an external asset: a self-contained
// data URI that needs no file on disk at view time.
type Resource struct {
	DataURI string
	MIME    string
}

// Embedder turns an asset reference into inlineable data. Embed returns
// ok=false when the asset is missing or unreadable; the caller renders
// nothing for that asset and the conversion continues.
type Embedder interface {
	Embed(path string) (Resource, bool)
}

// DirEmbedder resolves asset references relative to the directory holding
// the layout description.
type DirEmbedder struct {
	base string
}

// NewDirEmbedder creates an embedder rooted at base.
func NewDirEmbedder(base string) *DirEmbedder {
	return &DirEmbedder{base: base}
}

// Embed reads the referenced file and encodes it as a base64 data URI.
func (e *DirEmbedder) Embed(path string) (Resource, bool) {
	if path == "" {
		return Resource{}, false
	}
	full := filepath.Join(e.base, path)
	data, err := os.ReadFile(full)
	if err != nil {
		return Resource{}, false
	}
	mime := mimeForExt(filepath.Ext(full))
	return Resource{
		DataURI: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
		MIME:    mime,
	}, true
}

// mimeForExt maps a file extension to a media type. Unrecognized
// extensions fall back to JPEG.
func mimeForExt(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
