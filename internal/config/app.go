package config

import (
	"os"
	"strconv"
)

// AppConfig содержит настройки процесса из переменных окружения
type AppConfig struct {
	GatewayURL     string
	CameraIndex    int
	TTSVoice       string
	SpeechLanguage string
	QuestionsFile  string
	ConfigFile     string
}

// LoadAppConfig читает настройки процесса из окружения
func LoadAppConfig() *AppConfig {
	return &AppConfig{
		GatewayURL:     getEnv("MEDIA_GATEWAY_URL", "http://127.0.0.1:8700"),
		CameraIndex:    getEnvAsInt("CAMERA_INDEX", 0),
		TTSVoice:       getEnv("TTS_VOICE", "en-GB-RyanNeural"),
		SpeechLanguage: getEnv("SPEECH_LANGUAGE", "en-IN"),
		QuestionsFile:  getEnv("QUESTIONS_FILE", "interview_links.json"),
		ConfigFile:     getEnv("CONFIG_FILE", "config/proctoring.yaml"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
