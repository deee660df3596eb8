package server

import (
	"context"
	"net/http"
)

// httpServer is the narrow slice of *http.Server the lifecycle code drives.
// Tests swap in a stub so startup and shutdown run without binding a port.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

// stdHTTPServer adapts *http.Server to the httpServer interface.
type stdHTTPServer struct {
	inner *http.Server
}

func (s stdHTTPServer) Addr() string          { return s.inner.Addr }
func (s stdHTTPServer) Handler() http.Handler { return s.inner.Handler }

func (s stdHTTPServer) ListenAndServe() error {
	return s.inner.ListenAndServe()
}

func (s stdHTTPServer) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
