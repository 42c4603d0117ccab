package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Addr string

	// Catalog endpoint
	CoursesURL          string
	FetchTimeoutSeconds int

	// Snapshot / SFTP
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool

	// Snapshot image probe
	ImageCheckWorkers int
}

func Load() Config {
	return Config{
		Addr: getenv("ADDR", ":8080"),

		CoursesURL:          getenv("COURSES_URL", "http://localhost:3000/api/courses"),
		FetchTimeoutSeconds: getenvInt("FETCH_TIMEOUT_SECONDS", 30),

		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", true),

		ImageCheckWorkers: getenvInt("IMAGE_CHECK_WORKERS", 10),
	}
}

// FetchTimeout is the outer bound for one catalog fetch. It layers under
// the inbound request context; whichever ends first wins.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
