package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load загружает конфигурацию из YAML файла
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", filename, err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга YAML: %w", err)
	}

	// Валидация конфигурации
	err = validateConfig(&config)
	if err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	return &config, nil
}

// validateConfig проверяет корректность конфигурации
func validateConfig(config *Config) error {
	if config.Proctoring.MaxWarnings <= 0 {
		return fmt.Errorf("max_warnings должно быть больше 0")
	}

	if config.Proctoring.FaceMissingSeconds <= 0 {
		return fmt.Errorf("face_missing_seconds должно быть больше 0")
	}

	if config.Proctoring.MultiFaceSeconds <= 0 {
		return fmt.Errorf("multi_face_seconds должно быть больше 0")
	}

	if config.Proctoring.BlurSeconds <= 0 {
		return fmt.Errorf("blur_seconds должно быть больше 0")
	}

	if config.Proctoring.BlurThreshold <= 0 {
		return fmt.Errorf("blur_threshold должно быть больше 0")
	}

	if config.Proctoring.AppPollSeconds <= 0 {
		return fmt.Errorf("app_poll_seconds должно быть больше 0")
	}

	if config.Proctoring.VoiceChangeRatio <= 0 {
		return fmt.Errorf("voice_change_ratio должно быть больше 0")
	}

	if len(config.AllowedApps) == 0 {
		return fmt.Errorf("allowed_apps не должен быть пустым")
	}

	if len(config.CodingKeywords) == 0 {
		return fmt.Errorf("coding_keywords не должен быть пустым")
	}

	if len(config.PositiveResponses) == 0 {
		return fmt.Errorf("positive_responses не должен быть пустым")
	}

	if config.Speech.ListenTimeoutSeconds <= 0 {
		return fmt.Errorf("listen_timeout_seconds должно быть больше 0")
	}

	if config.Speech.PhraseLimitSeconds <= 0 {
		return fmt.Errorf("phrase_limit_seconds должно быть больше 0")
	}

	return nil
}
