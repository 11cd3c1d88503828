package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
proctoring:
  max_warnings: 3
  face_missing_seconds: 5
  multi_face_seconds: 5
  blur_seconds: 5
  blur_threshold: 120.0
  app_poll_seconds: 1
  voice_change_ratio: 0.6
allowed_apps: [interview, code]
coding_keywords: [code, program, write, implement, function, algorithm]
positive_responses: ["yes", "ok", "go ahead", "let's start"]
speech:
  listen_timeout_seconds: 5
  phrase_limit_seconds: 60
  ambient_noise_seconds: 0.8
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proctoring.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Proctoring.MaxWarnings)
	assert.Equal(t, 120.0, cfg.Proctoring.BlurThreshold)
	assert.Equal(t, 0.6, cfg.Proctoring.VoiceChangeRatio)
	assert.Equal(t, "5s", cfg.FaceMissingTime().String())
	assert.Equal(t, "1s", cfg.AppPollInterval().String())
	assert.Len(t, cfg.CodingKeywords, 6)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"zero max_warnings": `
proctoring:
  max_warnings: 0
  face_missing_seconds: 5
  multi_face_seconds: 5
  blur_seconds: 5
  blur_threshold: 120.0
  app_poll_seconds: 1
  voice_change_ratio: 0.6
allowed_apps: [interview]
coding_keywords: [code]
positive_responses: ["yes"]
speech:
  listen_timeout_seconds: 5
  phrase_limit_seconds: 60
`,
		"empty allowed_apps": `
proctoring:
  max_warnings: 3
  face_missing_seconds: 5
  multi_face_seconds: 5
  blur_seconds: 5
  blur_threshold: 120.0
  app_poll_seconds: 1
  voice_change_ratio: 0.6
allowed_apps: []
coding_keywords: [code]
positive_responses: ["yes"]
speech:
  listen_timeout_seconds: 5
  phrase_limit_seconds: 60
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}
