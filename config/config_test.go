package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBaseDomain(t *testing.T) {
	assert.Equal(t, "localhost", defaultBaseDomain("development"))
	assert.Equal(t, "localhost", defaultBaseDomain("test"))
	assert.Equal(t, "quentinhas.com", defaultBaseDomain("production"))
}

func TestGetEnvSeconds(t *testing.T) {
	t.Setenv("TEST_TTL_SECONDS", "120")
	assert.Equal(t, 2*time.Minute, getEnvSeconds("TEST_TTL_SECONDS", 300))

	t.Setenv("TEST_TTL_SECONDS", "not-a-number")
	assert.Equal(t, 5*time.Minute, getEnvSeconds("TEST_TTL_SECONDS", 300))

	t.Setenv("TEST_TTL_SECONDS", "-10")
	assert.Equal(t, 5*time.Minute, getEnvSeconds("TEST_TTL_SECONDS", 300))

	t.Setenv("TEST_TTL_SECONDS", "")
	assert.Equal(t, 5*time.Minute, getEnvSeconds("TEST_TTL_SECONDS", 300))
}

func TestConfigValidate(t *testing.T) {
	valid := &Config{DatabaseURL: "postgres://localhost/quentinhas", BaseDomain: "quentinhas.com"}
	assert.NoError(t, valid.Validate())

	missing := &Config{BaseDomain: "quentinhas.com"}
	assert.ErrorContains(t, missing.Validate(), "DATABASE_URL")

	missing = &Config{DatabaseURL: "postgres://localhost/quentinhas"}
	assert.ErrorContains(t, missing.Validate(), "BASE_DOMAIN")
}

func TestEnvironmentPredicates(t *testing.T) {
	assert.True(t, (&Config{GoEnv: "production"}).IsProduction())
	assert.True(t, (&Config{GoEnv: "test"}).IsTest())
	assert.True(t, (&Config{GoEnv: "development"}).IsDevelopment())
	assert.False(t, (&Config{GoEnv: "development"}).IsProduction())
}

func TestSetConfigOverridesLoaded(t *testing.T) {
	original := GetConfig()
	defer SetConfig(original)

	replacement := &Config{GoEnv: "test", BaseDomain: "example.test"}
	SetConfig(replacement)
	assert.Same(t, replacement, GetConfig())
}
