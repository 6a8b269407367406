package config

import (
	"fmt"
	"os"
	"testing"
)

// TestMain refuses to run the config tests outside the test environment, so
// a stray `go test` can never load a development or production .env file and
// point the suite at a real database.
func TestMain(m *testing.M) {
	if env := os.Getenv("GO_ENV"); env != "test" {
		fmt.Fprintf(os.Stderr, "refusing to run tests with GO_ENV=%q; run with GO_ENV=test\n", env)
		os.Exit(1)
	}
	os.Exit(m.Run())
}
