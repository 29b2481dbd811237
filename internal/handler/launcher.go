package handler

import (
	"bytes"
	"crypto/md5"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
)

// LauncherPage is the data the launcher's index.html template is rendered with.
type LauncherPage struct {
	ProductName string
	URL         string
}

// asset is a launcher file held in memory with its pre-compressed variants.
type asset struct {
	content     []byte
	gzipped     []byte
	brotli      []byte
	contentType string
	etag        string
}

// NewLauncherHandler serves the embedded launcher files to the webview. index.html
// is rendered as a template so it can hand the webview over to page.URL; unknown
// paths fall back to it.
func NewLauncherHandler(fsys fs.FS, page LauncherPage) (http.Handler, error) {
	assets := make(map[string]*asset)

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return err
		}
		if filePath == "index.html" {
			content, err = renderIndex(content, page)
			if err != nil {
				return err
			}
		}
		assets[filePath] = buildAsset(filePath, content)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load launcher assets: %w", err)
	}

	index, ok := assets["index.html"]
	if !ok {
		return nil, errors.New("load launcher assets: index.html missing")
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		urlPath := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if urlPath == "" {
			urlPath = "index.html"
		}
		a, ok := assets[urlPath]
		if !ok {
			a = index
		}
		serveAsset(w, r, a)
	}), nil
}

func renderIndex(content []byte, page LauncherPage) ([]byte, error) {
	tmpl, err := template.New("index.html").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse index.html: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("render index.html: %w", err)
	}
	return buf.Bytes(), nil
}

func buildAsset(filePath string, content []byte) *asset {
	a := &asset{
		content:     content,
		contentType: mimeType(filePath),
		etag:        fmt.Sprintf(`"%x"`, md5.Sum(content)),
	}
	if !isCompressible(a.contentType) || len(content) <= 512 {
		return a
	}

	var gz bytes.Buffer
	if zw, err := gzip.NewWriterLevel(&gz, gzip.BestCompression); err == nil {
		zw.Write(content)
		zw.Close()
		if gz.Len() < len(content) {
			a.gzipped = gz.Bytes()
		}
	}

	var br bytes.Buffer
	bw := brotli.NewWriterLevel(&br, brotli.BestCompression)
	bw.Write(content)
	bw.Close()
	if br.Len() < len(content) {
		a.brotli = br.Bytes()
	}
	return a
}

func serveAsset(w http.ResponseWriter, r *http.Request, a *asset) {
	// The launcher page must always be revalidated so a config change takes effect.
	if strings.HasPrefix(a.contentType, "text/html") {
		w.Header().Set("Cache-Control", "no-cache")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=86400, must-revalidate")
	}
	w.Header().Set("ETag", a.etag)
	if r.Header.Get("If-None-Match") == a.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", a.contentType)
	w.Header().Set("Vary", "Accept-Encoding")

	body := a.content
	accept := r.Header.Get("Accept-Encoding")
	switch {
	case a.brotli != nil && acceptsEncoding(accept, "br"):
		w.Header().Set("Content-Encoding", "br")
		body = a.brotli
	case a.gzipped != nil && acceptsEncoding(accept, "gzip"):
		w.Header().Set("Content-Encoding", "gzip")
		body = a.gzipped
	}

	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	w.Write(body)
}

func acceptsEncoding(header, enc string) bool {
	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(name), enc) {
			continue
		}
		return strings.ReplaceAll(strings.TrimSpace(params), " ", "") != "q=0"
	}
	return false
}

func isCompressible(contentType string) bool {
	for _, ct := range []string{"text/", "application/javascript", "application/json", "image/svg+xml"} {
		if strings.HasPrefix(contentType, ct) {
			return true
		}
	}
	return false
}

func mimeType(filePath string) string {
	switch path.Ext(filePath) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript; charset=utf-8"
	case ".json":
		return "application/json; charset=utf-8"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".ico":
		return "image/x-icon"
	default:
		return "application/octet-stream"
	}
}
