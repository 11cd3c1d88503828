package config

import "time"

// Config представляет конфигурацию прокторинга
type Config struct {
	Proctoring        ProctoringConfig `yaml:"proctoring"`
	AllowedApps       []string         `yaml:"allowed_apps"`
	CodingKeywords    []string         `yaml:"coding_keywords"`
	PositiveResponses []string         `yaml:"positive_responses"`
	Speech            SpeechConfig     `yaml:"speech"`
}

// ProctoringConfig содержит пороги и длительности нарушений
type ProctoringConfig struct {
	MaxWarnings        int     `yaml:"max_warnings"`
	FaceMissingSeconds int     `yaml:"face_missing_seconds"`
	MultiFaceSeconds   int     `yaml:"multi_face_seconds"`
	BlurSeconds        int     `yaml:"blur_seconds"`
	BlurThreshold      float64 `yaml:"blur_threshold"`
	AppPollSeconds     int     `yaml:"app_poll_seconds"`
	VoiceChangeRatio   float64 `yaml:"voice_change_ratio"`
}

// SpeechConfig содержит настройки записи устных ответов
type SpeechConfig struct {
	ListenTimeoutSeconds float64 `yaml:"listen_timeout_seconds"`
	PhraseLimitSeconds   float64 `yaml:"phrase_limit_seconds"`
	AmbientNoiseSeconds  float64 `yaml:"ambient_noise_seconds"`
}

// Методы для удобного доступа к длительностям
func (c *Config) FaceMissingTime() time.Duration {
	return time.Duration(c.Proctoring.FaceMissingSeconds) * time.Second
}

func (c *Config) MultiFaceTime() time.Duration {
	return time.Duration(c.Proctoring.MultiFaceSeconds) * time.Second
}

func (c *Config) BlurTime() time.Duration {
	return time.Duration(c.Proctoring.BlurSeconds) * time.Second
}

func (c *Config) AppPollInterval() time.Duration {
	return time.Duration(c.Proctoring.AppPollSeconds) * time.Second
}
