package config

type Export struct {
	Dir string
}

func newExport() *Export {
	return &Export{
		Dir: getEnv("EXPORT_DIR", "/tmp/exports"),
	}
}
