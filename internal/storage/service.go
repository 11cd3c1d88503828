package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Service сохраняет и загружает результаты интервью
type Service struct {
	dir string
}

// New создает хранилище результатов в указанной директории
func New(dir string) *Service {
	return &Service{dir: dir}
}

func (s *Service) resultPath(interviewID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("interview_%s.json", interviewID))
}

// SaveResult сохраняет результат интервью в JSON файл
func (s *Service) SaveResult(result *InterviewResult) error {
	// Создаем директорию если её нет
	err := os.MkdirAll(s.dir, 0755)
	if err != nil {
		return fmt.Errorf("ошибка создания директории %s: %w", s.dir, err)
	}

	// Сериализуем результат в JSON с отступами
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации результата: %w", err)
	}

	path := s.resultPath(result.InterviewID)
	err = os.WriteFile(path, jsonData, 0644)
	if err != nil {
		return fmt.Errorf("ошибка записи файла %s: %w", path, err)
	}

	return nil
}

// LoadResult загружает результат интервью из JSON файла
func (s *Service) LoadResult(interviewID string) (*InterviewResult, error) {
	path := s.resultPath(interviewID)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", path, err)
	}

	var result InterviewResult
	err = json.Unmarshal(data, &result)
	if err != nil {
		return nil, fmt.Errorf("ошибка десериализации JSON: %w", err)
	}

	return &result, nil
}

// ListResults возвращает список идентификаторов сохраненных интервью
func (s *Service) ListResults() ([]string, error) {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения директории %s: %w", s.dir, err)
	}

	var results []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		if strings.HasPrefix(name, "interview_") {
			results = append(results, strings.TrimSuffix(strings.TrimPrefix(name, "interview_"), ".json"))
		}
	}

	return results, nil
}
