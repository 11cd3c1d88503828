package proctoring

import (
	"fmt"
	"time"

	"interview-proctoring-complete/internal/session"
	"interview-proctoring-complete/internal/vision"
)

// Сообщения о видеонарушениях, видимые кандидату
var violationMessages = map[vision.Kind]string{
	vision.KindMultiFace: "Multiple people detected",
	vision.KindNoFace:    "Face not visible",
	vision.KindBlurry:    "Camera is blurry",
}

// Beeper подает звуковой сигнал при предупреждении
type Beeper interface {
	Beep(frequencyHz, durationMs int) error
}

// tracker реализует машину отсчета по текущему виду нарушения.
// Состояния: Clear (current == KindNone) и Counting (current, deadline).
type tracker struct {
	durations map[vision.Kind]time.Duration
	current   vision.Kind
	deadline  time.Time
}

// Observe обрабатывает классификацию очередного кадра.
// Возвращает fire=true, когда текущий вид нарушения продержался весь отсчет;
// remaining — оставшееся время активного отсчета.
func (t *tracker) Observe(kind vision.Kind, now time.Time) (fire bool, remaining time.Duration) {
	if kind == vision.KindNone {
		// Нарушение ушло само — отсчет сбрасывается без предупреждения
		t.current = vision.KindNone
		return false, 0
	}

	if kind != t.current {
		t.current = kind
		t.deadline = now.Add(t.durations[kind])
		return false, t.deadline.Sub(now)
	}

	if now.Before(t.deadline) {
		return false, t.deadline.Sub(now)
	}

	// Отсчет истек: после предупреждения отсчет начинается заново,
	// даже если то же нарушение продолжается
	t.current = vision.KindNone
	return true, 0
}

// VideoMonitor следит за видеопотоком и фиксирует нарушения в состоянии сессии
type VideoMonitor struct {
	source     vision.FrameSource
	classifier *vision.Classifier
	state      *session.State
	beeper     Beeper
	tracker    tracker
	retryPause time.Duration
	lastShown  int
	now        func() time.Time
}

// NewVideoMonitor создает видеомонитор с настроенными длительностями нарушений
func NewVideoMonitor(source vision.FrameSource, classifier *vision.Classifier, state *session.State, beeper Beeper, durations map[vision.Kind]time.Duration) *VideoMonitor {
	return &VideoMonitor{
		source:     source,
		classifier: classifier,
		state:      state,
		beeper:     beeper,
		tracker:    tracker{durations: durations},
		retryPause: 100 * time.Millisecond,
		now:        time.Now,
	}
}

// Run запускает цикл видеомониторинга до отмены сессии
func (m *VideoMonitor) Run() {
	fmt.Println("✅ Видеомониторинг запущен")

	for !m.state.Cancelled() {
		frame, err := m.source.Frame()
		if err != nil {
			// Пропущенный кадр не фатален, берем следующий
			time.Sleep(m.retryPause)
			continue
		}

		kind := m.classifier.Classify(frame)
		fire, remaining := m.tracker.Observe(kind, m.now())

		if !fire {
			// Обратный отсчет показываем раз в секунду, а не на каждом кадре
			if secs := int(remaining.Seconds()); secs > 0 && secs != m.lastShown {
				fmt.Printf("⏳ %s — проверьте веб-камеру (%d сек)\n",
					violationMessages[m.tracker.current], secs)
				m.lastShown = secs
			}
			continue
		}

		w, tripped := m.state.AddWarning(session.CategoryVideo, violationMessages[kind])
		if w.ID == "" {
			continue
		}

		if m.beeper != nil {
			// Звук — вспомогательный сигнал, его ошибки не важны
			_ = m.beeper.Beep(1000, 500)
		}
		fmt.Printf("⚠️ ВИДЕО ПРЕДУПРЕЖДЕНИЕ %d/%d: %s\n", w.Index, m.state.MaxWarnings(), w.Message)

		if tripped {
			fmt.Println("⛔ Интервью автоматически завершено из-за видеонарушений")
			break
		}
	}

	fmt.Println("✅ Видеомониторинг остановлен")
}
