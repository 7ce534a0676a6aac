package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZipRequest transparently inflates request bodies sent with
// "Content-Encoding: gzip". Response compression is left to chi's
// middleware.Compress.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !strings.Contains(req.Header.Get("Content-Encoding"), "gzip") || req.Body == nil {
			next.ServeHTTP(w, req)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(req.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			http.Error(w, ErrInvalidGZipBody.Error(), http.StatusBadRequest)
			return
		}

		req.Body = &wrappedReadCloser{
			Reader: gzipReader,
			OnClose: func() {
				_ = gzipReader.Close()
				gzipReaderPool.Put(gzipReader)
			},
		}
		req.Header.Del("Content-Encoding")
		req.ContentLength = -1

		next.ServeHTTP(w, req)
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
		w.OnClose = nil
	}
	return nil
}
