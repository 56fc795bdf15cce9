// Package server serves the status page and the websocket feed of loop snapshots.
package server

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"regexp"

	"github.com/lxzan/gws"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"

	"github.com/soar/padlink/internal/hub"
)

type Server struct {
	hub         *hub.Hub
	broadcaster *hub.Broadcaster
	frontendFS  fs.FS
	addr        string
	httpServer  *http.Server
}

func New(h *hub.Hub, b *hub.Broadcaster, frontendFS fs.FS, addr string) *Server {
	return &Server{
		hub:         h,
		broadcaster: b,
		frontendFS:  frontendFS,
		addr:        addr,
	}
}

// Handler builds the HTTP routes: /ws for the snapshot feed, / for the page.
func (s *Server) Handler() (http.Handler, error) {
	index, err := minifiedIndex(s.frontendFS)
	if err != nil {
		return nil, err
	}

	upgrader := gws.NewUpgrader(&wsHandler{hub: s.hub, broadcaster: s.broadcaster}, &gws.ServerOption{
		Recovery: gws.Recovery,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", handleWebSocket(upgrader))

	fileServer := http.FileServer(http.FS(s.frontendFS))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && r.URL.Path != "/index.html" {
			fileServer.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(index)
	})
	return mux, nil
}

func (s *Server) ListenAndServe() error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: handler,
	}

	log.Printf("HTTP server listening on %s", s.addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		log.Println("Shutting down HTTP server...")
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// minifiedIndex reads index.html once and minifies it together with its inline
// styles and scripts.
func minifiedIndex(fsys fs.FS) ([]byte, error) {
	raw, err := fs.ReadFile(fsys, "index.html")
	if err != nil {
		return nil, fmt.Errorf("server: read index.html: %w", err)
	}

	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)

	out, err := m.Bytes("text/html", raw)
	if err != nil {
		return nil, fmt.Errorf("server: minify index.html: %w", err)
	}
	return out, nil
}
