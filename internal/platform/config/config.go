package config

import "os"

// Server captures HTTP server level configuration.
type Server struct {
	Addr      string
	StaticDir string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("MERGINGTON_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	staticDir := os.Getenv("MERGINGTON_STATIC_DIR")
	if staticDir == "" {
		staticDir = "web/static"
	}

	return Server{
		Addr:      addr,
		StaticDir: staticDir,
	}
}
