package config

import (
	"fmt"
	"strconv"
)

const defaultPort = "8000"

type Server struct {
	Port string
}

func newServer() (*Server, error) {
	port := getEnv("PORT", defaultPort)

	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("invalid PORT value %q: expected an integer between 1 and 65535", port)
	}

	return &Server{Port: port}, nil
}

// Addr returns the listen address in the ":port" form, which binds the
// wildcard interface.
func (s *Server) Addr() string {
	return ":" + s.Port
}
