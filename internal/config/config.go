package config

import "os"

type Config struct {
	Server   *Server
	Database *Database
	Export   *Export
}

func NewConfig() (*Config, error) {
	server, err := newServer()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:   server,
		Database: newDatabase(),
		Export:   newExport(),
	}, nil
}

// getEnv treats an empty value the same as an unset variable, so a
// hosting platform exporting PORT="" still gets the default.
func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}

	return defaultVal
}
