package http

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"
)

// StaticHandler serves the embedded stylesheet and script. Unlike page
// routes it never falls back: unknown paths and directories are 404.
type StaticHandler struct {
	fileSystem http.FileSystem
}

// NewStaticHandler creates a new static file handler
func NewStaticHandler(filesystem http.FileSystem) *StaticHandler {
	return &StaticHandler{fileSystem: filesystem}
}

// ServeHTTP implements the http.Handler interface
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cleanPath := path.Clean("/" + r.URL.Path)

	file, err := h.fileSystem.Open(cleanPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	if contentType := getContentType(cleanPath); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, file); err != nil {
		http.Error(w, "Failed to serve file", http.StatusInternalServerError)
		return
	}
}

var mimeTypes = map[string]string{
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".ico":  "image/x-icon",
	".woff": "font/woff",
}

// getContentType returns the content type for the file extension
func getContentType(filePath string) string {
	return mimeTypes[path.Ext(filePath)]
}
