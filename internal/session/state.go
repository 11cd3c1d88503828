package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Category представляет категорию предупреждений
type Category string

const (
	CategoryVideo  Category = "video"
	CategoryApp    Category = "app"
	CategorySpeech Category = "speech"
)

// Warning представляет зафиксированное предупреждение
type Warning struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Index     int       `json:"index"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// State представляет общее состояние сессии прокторинга.
// Один экземпляр разделяется всеми мониторами и оркестратором,
// поэтому весь доступ защищен мьютексом.
type State struct {
	mu          sync.RWMutex
	maxWarnings int
	counts      map[Category]int
	warnings    []Warning
	cancelled   bool
	events      chan Warning
}

// NewState создает состояние сессии с лимитом предупреждений на категорию
func NewState(maxWarnings int) *State {
	return &State{
		maxWarnings: maxWarnings,
		counts:      make(map[Category]int),
		events:      make(chan Warning, 16),
	}
}

// AddWarning фиксирует предупреждение в категории.
// После отмены сессии или достижения лимита категории вызов игнорируется
// (возвращается пустой Warning). Второе значение равно true, если именно
// это предупреждение довело категорию до лимита и отменило сессию.
func (s *State) AddWarning(category Category, message string) (Warning, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelled || s.counts[category] >= s.maxWarnings {
		return Warning{}, false
	}

	s.counts[category]++
	w := Warning{
		ID:        uuid.New().String(),
		Category:  category,
		Index:     s.counts[category],
		Message:   message,
		Timestamp: time.Now(),
	}
	s.warnings = append(s.warnings, w)

	// Неблокирующая отправка: медленный потребитель не должен
	// останавливать мониторинг
	select {
	case s.events <- w:
	default:
	}

	if s.counts[category] >= s.maxWarnings {
		s.cancelled = true
		return w, true
	}
	return w, false
}

// Cancel отменяет сессию напрямую. Повторные вызовы безопасны,
// флаг никогда не сбрасывается обратно.
func (s *State) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = true
}

// Cancelled сообщает, отменена ли сессия
func (s *State) Cancelled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cancelled
}

// WarningCount возвращает число предупреждений в категории
func (s *State) WarningCount(category Category) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[category]
}

// MaxWarnings возвращает лимит предупреждений на категорию
func (s *State) MaxWarnings() int {
	return s.maxWarnings
}

// Warnings возвращает копию журнала предупреждений
func (s *State) Warnings() []Warning {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Warning, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// Events возвращает живой поток предупреждений для отображения
func (s *State) Events() <-chan Warning {
	return s.events
}
