package proctoring

import (
	"fmt"
	"time"

	"interview-proctoring-complete/internal/session"
)

// ForegroundProvider возвращает имя процесса активного окна
// в нижнем регистре; пустая строка — активное окно не определено.
type ForegroundProvider interface {
	ForegroundApp() (string, error)
}

// AppMonitor следит за активным приложением кандидата
type AppMonitor struct {
	provider ForegroundProvider
	state    *session.State
	allowed  func(string) bool
	interval time.Duration
	lastApp  string
}

// NewAppMonitor создает монитор активных приложений
func NewAppMonitor(provider ForegroundProvider, state *session.State, allowed func(string) bool, interval time.Duration) *AppMonitor {
	return &AppMonitor{
		provider: provider,
		state:    state,
		allowed:  allowed,
		interval: interval,
	}
}

// observe обрабатывает одно наблюдение активного приложения.
// Предупреждение выдается только при смене запрещенного приложения:
// повторные наблюдения того же приложения не считаются.
func (m *AppMonitor) observe(name string) bool {
	if name == "" || m.allowed(name) || name == m.lastApp {
		return false
	}

	w, tripped := m.state.AddWarning(session.CategoryApp,
		"Unauthorized application detected -> "+name)
	if w.ID != "" {
		fmt.Printf("⚠️ ПРЕДУПРЕЖДЕНИЕ ПО ПРИЛОЖЕНИЯМ %d/%d: %s\n",
			w.Index, m.state.MaxWarnings(), w.Message)
	}

	m.lastApp = name
	return tripped
}

// Run запускает цикл опроса активного приложения до отмены сессии
func (m *AppMonitor) Run() {
	fmt.Println("✅ Мониторинг приложений запущен")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for !m.state.Cancelled() {
		name, err := m.provider.ForegroundApp()
		if err == nil {
			if m.observe(name) {
				fmt.Println("⛔ Интервью автоматически завершено из-за нарушений по приложениям")
				break
			}
		}

		<-ticker.C
	}

	fmt.Println("✅ Мониторинг приложений остановлен")
}
