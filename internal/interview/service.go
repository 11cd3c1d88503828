package interview

import (
	"fmt"
	"log"
	"time"

	"interview-proctoring-complete/internal/config"
	"interview-proctoring-complete/internal/evaluation"
	"interview-proctoring-complete/internal/media"
	"interview-proctoring-complete/internal/proctoring"
	"interview-proctoring-complete/internal/questionbank"
	"interview-proctoring-complete/internal/session"
	"interview-proctoring-complete/internal/storage"
)

// Speaker озвучивает текст вопроса кандидату
type Speaker interface {
	Speak(text string, index int) error
}

// Listener записывает устный ответ кандидата
type Listener interface {
	Listen() (media.Capture, error)
}

// CodeEditor получает решение вопроса по программированию.
// Вызов блокируется до отправки решения.
type CodeEditor interface {
	AcquireCode(question string, index int) (string, error)
}

const (
	introQuestion   = "Please introduce yourself."
	confirmQuestion = "Shall we proceed with the interview?"
)

// Service проводит интервью: знакомство, подтверждение, цикл вопросов, оценка
type Service struct {
	cfg      *config.Config
	state    *session.State
	speaker  Speaker
	listener Listener
	editor   CodeEditor
	voice    proctoring.Comparator

	answers       []storage.Answer
	autoSubmitted bool
}

// New создает сервис проведения интервью
func New(cfg *config.Config, state *session.State, speaker Speaker, listener Listener, editor CodeEditor, voice proctoring.Comparator) *Service {
	return &Service{
		cfg:      cfg,
		state:    state,
		speaker:  speaker,
		listener: listener,
		editor:   editor,
		voice:    voice,
	}
}

// Run проводит интервью целиком и возвращает итоговый результат.
// Результат формируется на любом пути завершения, включая ранний отказ.
func (s *Service) Run(interviewID string, questions []questionbank.Question) *storage.InterviewResult {
	if s.handleIntroduction() {
		s.runQuestionLoop(questions)
	}
	return s.finish(interviewID)
}

// ask озвучивает вопрос; ошибки озвучивания не прерывают интервью
func (s *Service) ask(text string, index int) {
	if err := s.speaker.Speak(text, index); err != nil {
		log.Printf("⚠️ Ошибка озвучивания вопроса: %v", err)
	}
}

// listen записывает ответ; сбой записи равносилен отсутствию ответа
func (s *Service) listen() media.Capture {
	capture, err := s.listener.Listen()
	if err != nil {
		log.Printf("⚠️ Ошибка записи речи: %v", err)
		return media.Capture{Transcript: storage.NoResponse}
	}
	return capture
}

// handleIntroduction проводит знакомство и подтверждение.
// Возвращает true, если можно переходить к вопросам.
func (s *Service) handleIntroduction() bool {
	fmt.Println("\n🟢 Этап знакомства начат")

	s.ask(introQuestion, 0)
	fmt.Println("🎙️ Слушаем представление кандидата...")
	intro := s.listen()
	fmt.Println("Представление кандидата:", intro.Transcript)

	if storage.IsNoAnswer(intro.Transcript) {
		fmt.Println("❌ Кандидат не представился. Интервью остановлено.")
		return false
	}

	s.answers = append(s.answers, storage.Answer{
		Question: introQuestion,
		Answer:   intro.Transcript,
	})

	s.ask(confirmQuestion, 0)
	fmt.Println("🎙️ Ожидаем подтверждение...")
	confirm := s.listen()
	fmt.Println("Подтверждение кандидата:", confirm.Transcript)

	if !s.cfg.IsPositiveResponse(confirm.Transcript) {
		fmt.Println("❌ Кандидат не подтвердил участие. Интервью остановлено.")
		return false
	}

	fmt.Println("✅ Кандидат подтвердил участие. Начинаем интервью.")
	return true
}

// runQuestionLoop задает вопросы по порядку.
// Флаг отмены проверяется только между вопросами: начатая запись
// ответа или открытый редактор всегда завершаются.
func (s *Service) runQuestionLoop(questions []questionbank.Question) {
	fmt.Println("\n=== 🎤 ТЕХНИЧЕСКОЕ ИНТЕРВЬЮ НАЧАЛОСЬ ===")

	for i, q := range questions {
		if s.state.Cancelled() {
			fmt.Println("⛔ Интервью автоматически завершено")
			s.autoSubmitted = true
			break
		}

		index := i + 1
		fmt.Printf("\nВопрос %d: %s\n", index, q.Text)
		s.ask(q.Text, index)

		if s.cfg.IsCodingQuestion(q.Text) {
			fmt.Println("🧑‍💻 Обнаружен вопрос по программированию → открываем редактор")
			s.answers = append(s.answers, storage.Answer{
				Question: q.Text,
				Answer:   s.acquireCode(q.Text, index),
			})
			continue
		}

		fmt.Println("🎙️ Слушаем ответ...")
		capture := s.listen()
		fmt.Println("Ответ кандидата:", capture.Transcript)

		s.answers = append(s.answers, storage.Answer{
			Question: q.Text,
			Answer:   capture.Transcript,
		})

		if s.checkVoice(capture.Audio) {
			s.autoSubmitted = true
			break
		}
	}
}

// acquireCode получает решение из редактора кода
func (s *Service) acquireCode(question string, index int) string {
	code, err := s.editor.AcquireCode(question, index)
	if err != nil {
		log.Printf("⚠️ Ошибка получения кода: %v", err)
		return storage.NotSubmitted
	}
	return code
}

// checkVoice сравнивает голос ответа с предыдущим.
// Возвращает true, если речевые предупреждения исчерпали лимит.
func (s *Service) checkVoice(audio []byte) bool {
	signal := s.voice.Check(audio)
	if signal == "" {
		return false
	}

	w, tripped := s.state.AddWarning(session.CategorySpeech, signal)
	if w.ID != "" {
		fmt.Printf("⚠️ РЕЧЕВОЕ ПРЕДУПРЕЖДЕНИЕ %d/%d: %s\n",
			w.Index, s.state.MaxWarnings(), w.Message)
	}

	if tripped {
		fmt.Println("⛔ Интервью автоматически завершено из-за подмены голоса")
	}
	return tripped
}

// finish оценивает собранные ответы, печатает отчет и формирует результат
func (s *Service) finish(interviewID string) *storage.InterviewResult {
	fmt.Println("\n✅ Интервью завершено")
	fmt.Println("\n--- 📊 ОТЧЕТ ОБ ОЦЕНКЕ ---")

	report := evaluation.Evaluate(s.answers, s.cfg.IsCodingQuestion)
	for i, r := range report.Results {
		fmt.Printf("\nВопрос %d: %s\n", i+1, r.Question)
		fmt.Printf("Оценка: %.1f/10\n", r.Score)
		fmt.Printf("Комментарий: %s\n", r.Feedback)
	}
	fmt.Printf("\nИтоговая оценка интервью: %.1f/10\n", report.FinalScore)
	fmt.Printf("Общий вывод: %s\n", report.OverallFeedback)

	return &storage.InterviewResult{
		InterviewID:     interviewID,
		Timestamp:       time.Now().Format(time.RFC3339),
		AutoSubmitted:   s.autoSubmitted,
		Answers:         s.answers,
		Results:         report.Results,
		FinalScore:      report.FinalScore,
		OverallFeedback: report.OverallFeedback,
		Warnings:        s.state.Warnings(),
	}
}
