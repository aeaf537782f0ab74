// Command gamebyte is the framework's development tool. Its main job is
// serving a browser (WebAssembly) build of a game during development:
//
//	gamebyte serve -addr :8080 -dir web
//
// The serve command honors the serve section of gamebyte.yaml and the
// GAMEBYTE_SERVE_* environment variables when flags are not given.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gamebyte/gamebyte"
)

var version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(os.Args[2:])
	case "version":
		fmt.Printf("gamebyte %s\n", version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "gamebyte: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "gamebyte: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Print(`gamebyte - browser game framework development tool

Usage:

  gamebyte serve [-addr :8080] [-dir web] [-config gamebyte.yaml]
        serve a browser (wasm) build directory
  gamebyte version
        print the tool version
`)
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", "", "listen address (default from config)")
	dir := fs.String("dir", "", "web build directory (default from config)")
	configPath := fs.String("config", "gamebyte.yaml", "config manifest path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := gamebyte.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *addr == "" {
		*addr = cfg.Serve.Addr
	}
	if *dir == "" {
		*dir = cfg.Serve.Dir
	}

	abs, err := filepath.Abs(*dir)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("web build directory %s: %w", abs, err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)
	r.Get("/*", serveDir(abs))

	fmt.Printf("serving %s on http://localhost%s\n", abs, *addr)
	return http.ListenAndServe(*addr, r)
}

// serveDir serves static files from root. Wasm files get an explicit
// Content-Type: some Go versions sniff them as application/octet-stream,
// which browsers refuse to instantiate streamingly.
func serveDir(root string) http.HandlerFunc {
	files := http.FileServer(http.Dir(root))
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		files.ServeHTTP(w, r)
	}
}
