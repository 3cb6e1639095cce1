package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	config "github.com/hazzsaeedharis/postgres-nl-agent/configs"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/agenterr"
)

func setDBEnv(t *testing.T) {
	t.Setenv("DB_NAME", "agent")
	t.Setenv("DB_USER", "agent")
	t.Setenv("DB_PASSWORD", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setDBEnv(t)

	s, err := config.Load()
	assert.NoError(t, err)

	assert.Equal(t, "localhost", s.DBHost)
	assert.Equal(t, "5432", s.DBPort)
	assert.Equal(t, "en-US", s.SpeechLanguageCode)
	assert.Equal(t, "LINEAR16", s.SpeechEncoding)
	assert.Equal(t, 16000, s.SpeechSampleRate)
	assert.Equal(t, "8080", s.Port)
	assert.False(t, s.Debug)
}

func TestLoadMissingRequiredVars(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "secret")

	_, err := config.Load()

	var cfgErr *agenterr.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
	assert.ElementsMatch(t, []string{"DB_NAME", "DB_USER"}, cfgErr.Missing)
}

func TestLoadDatabaseURLOverridesParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://agent:secret@db:5432/agent")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")

	s, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "postgres://agent:secret@db:5432/agent", s.DSN())
}

func TestDSNFromParts(t *testing.T) {
	setDBEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")

	s, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t,
		"host=db.internal user=agent password=secret dbname=agent port=5433 sslmode=disable",
		s.DSN())
}

func TestLoadSpeechOverrides(t *testing.T) {
	setDBEnv(t)
	t.Setenv("SPEECH_SAMPLE_RATE", "44100")
	t.Setenv("SPEECH_ENCODING", "FLAC")
	t.Setenv("DEBUG", "true")

	s, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, 44100, s.SpeechSampleRate)
	assert.Equal(t, "FLAC", s.SpeechEncoding)
	assert.True(t, s.Debug)
}
