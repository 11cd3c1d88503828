package questionbank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNotFound возвращается для неизвестного идентификатора интервью
var ErrNotFound = errors.New("интервью с таким идентификатором не найдено")

// Question представляет один вопрос интервью.
// Тип: introduction, technical, scenario или coding.
type Question struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type entry struct {
	Questions []Question `json:"questions"`
}

// Service выдает вопросы интервью по идентификатору
type Service struct {
	filename string
}

// New создает банк вопросов поверх файла ссылок на интервью
func New(filename string) *Service {
	return &Service{filename: filename}
}

// QuestionsFor возвращает упорядоченный список вопросов для интервью
func (s *Service) QuestionsFor(interviewID string) ([]Question, error) {
	data, err := os.ReadFile(s.filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", s.filename, err)
	}

	var links map[string]entry
	if err := json.Unmarshal(data, &links); err != nil {
		return nil, fmt.Errorf("ошибка десериализации JSON: %w", err)
	}

	item, ok := links[interviewID]
	if !ok {
		return nil, ErrNotFound
	}

	return item.Questions, nil
}
