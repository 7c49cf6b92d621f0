// Package gzippedhttp provides HTTP middlewares that transparently decode
// gzip request bodies and gzip JSON responses for clients that accept it.
package gzippedhttp

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/patric-chuzhbe/mobileappws/internal/logger"
)

var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		w, _ := gzip.NewWriterLevel(nil, gzip.BestSpeed)
		return w
	},
}

type gzipRequestBody struct {
	body io.ReadCloser
	zr   *gzip.Reader
}

func newGzipRequestBody(body io.ReadCloser) (*gzipRequestBody, error) {
	zr, err := gzip.NewReader(body)
	if err != nil {
		return nil, err
	}

	return &gzipRequestBody{body: body, zr: zr}, nil
}

func (b *gzipRequestBody) Read(p []byte) (int, error) {
	return b.zr.Read(p)
}

func (b *gzipRequestBody) Close() error {
	if err := b.zr.Close(); err != nil {
		_ = b.body.Close()
		return err
	}
	return b.body.Close()
}

// jsonResponseWriter postpones the compression decision until the handler
// has set its headers: only successful application/json responses are
// compressed.
type jsonResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (w *jsonResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	header := w.Header()
	if statusCode != http.StatusNoContent &&
		statusCode != http.StatusNotModified &&
		strings.HasPrefix(header.Get("Content-Type"), "application/json") &&
		header.Get("Content-Encoding") == "" {
		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w.ResponseWriter)
		w.zw = zw

		header.Set("Content-Encoding", "gzip")
		header.Del("Content-Length")
	}
	header.Add("Vary", "Accept-Encoding")

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *jsonResponseWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.zw == nil {
		return w.ResponseWriter.Write(p)
	}

	return w.zw.Write(p)
}

func (w *jsonResponseWriter) close() error {
	if w.zw == nil {
		return nil
	}

	err := w.zw.Close()
	gzipWriterPool.Put(w.zw)
	w.zw = nil

	return err
}

// GzipJSONResponse compresses JSON responses when the request's
// Accept-Encoding lists gzip.
func GzipJSONResponse(h http.Handler) http.Handler {
	middleware := func(response http.ResponseWriter, request *http.Request) {
		if !strings.Contains(request.Header.Get("Accept-Encoding"), "gzip") {
			h.ServeHTTP(response, request)
			return
		}

		compressed := &jsonResponseWriter{ResponseWriter: response}
		defer func() {
			if err := compressed.close(); err != nil {
				logger.Log.Debugw("error while closing the gzip response writer", "error", err)
			}
		}()

		h.ServeHTTP(compressed, request)
	}

	return http.HandlerFunc(middleware)
}

// UngzipRequest replaces a gzip-encoded request body with a decompressing
// reader. Malformed gzip input is rejected with 400.
func UngzipRequest(h http.Handler) http.Handler {
	middleware := func(response http.ResponseWriter, request *http.Request) {
		if !strings.Contains(request.Header.Get("Content-Encoding"), "gzip") {
			h.ServeHTTP(response, request)
			return
		}

		body, err := newGzipRequestBody(request.Body)
		if err != nil {
			logger.Log.Debugw("error while `newGzipRequestBody()` calling", "error", err)
			http.Error(response, "malformed gzip body", http.StatusBadRequest)
			return
		}
		defer body.Close()

		request.Body = body
		request.Header.Del("Content-Encoding")
		request.ContentLength = -1

		h.ServeHTTP(response, request)
	}

	return http.HandlerFunc(middleware)
}
