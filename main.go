package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"interview-proctoring-complete/internal/config"
	"interview-proctoring-complete/internal/interview"
	"interview-proctoring-complete/internal/media"
	"interview-proctoring-complete/internal/proctoring"
	"interview-proctoring-complete/internal/questionbank"
	"interview-proctoring-complete/internal/session"
	"interview-proctoring-complete/internal/storage"
	"interview-proctoring-complete/internal/vision"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("🚀 Запуск Interview Proctoring System...")

	if len(os.Args) < 2 {
		fmt.Println("❌ Не указан идентификатор интервью")
		fmt.Println("Использование: interview-proctoring-complete <interview_id>")
		os.Exit(1)
	}
	interviewID := os.Args[1]

	// Загружаем переменные окружения
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env файл не найден, используем переменные окружения")
	}

	appCfg := config.LoadAppConfig()

	// Загружаем конфигурацию прокторинга
	cfg, err := config.Load(appCfg.ConfigFile)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации прокторинга: %v", err)
	}

	// Вопросы ищем до запуска мониторинга: неизвестный ID фатален сразу
	bank := questionbank.New(appCfg.QuestionsFile)
	questions, err := bank.QuestionsFor(interviewID)
	if err != nil {
		if errors.Is(err, questionbank.ErrNotFound) {
			log.Fatalf("❌ Интервью %s не найдено", interviewID)
		}
		log.Fatalf("Ошибка загрузки вопросов: %v", err)
	}

	// Инициализируем сервисы
	fmt.Println("🔧 Инициализация сервисов...")

	gateway := media.NewClient(appCfg.GatewayURL, appCfg.TTSVoice, appCfg.SpeechLanguage, cfg.Speech)

	// Камера недоступна — сессия не начинается
	if err := gateway.OpenCamera(appCfg.CameraIndex); err != nil {
		log.Fatalf("❌ Камера недоступна: %v", err)
	}
	fmt.Println("✅ Камера открыта")

	state := session.NewState(cfg.Proctoring.MaxWarnings)

	// Поток предупреждений для отображения
	go func() {
		for w := range state.Events() {
			log.Printf("🔔 [%s] предупреждение %d/%d: %s",
				w.Category, w.Index, state.MaxWarnings(), w.Message)
		}
	}()

	classifier := &vision.Classifier{BlurThreshold: cfg.Proctoring.BlurThreshold}
	durations := map[vision.Kind]time.Duration{
		vision.KindNoFace:    cfg.FaceMissingTime(),
		vision.KindMultiFace: cfg.MultiFaceTime(),
		vision.KindBlurry:    cfg.BlurTime(),
	}

	videoMonitor := proctoring.NewVideoMonitor(gateway, classifier, state, gateway, durations)
	appMonitor := proctoring.NewAppMonitor(gateway, state, cfg.IsAllowedApp, cfg.AppPollInterval())

	go videoMonitor.Run()
	go appMonitor.Run()

	fmt.Println("\n📋 Конфигурация:")
	fmt.Printf("• Вопросов в интервью: %d\n", len(questions))
	fmt.Printf("• Лимит предупреждений на категорию: %d\n", cfg.Proctoring.MaxWarnings)

	comparator := proctoring.NewEnergyComparator(cfg.Proctoring.VoiceChangeRatio)
	service := interview.New(cfg, state, gateway, gateway, gateway, comparator)

	result := runInterview(service, state, interviewID, questions)

	store := storage.New("results")
	if err := store.SaveResult(result); err != nil {
		log.Fatalf("Ошибка сохранения результата: %v", err)
	}
	fmt.Printf("\n💾 Результат сохранен: results/interview_%s.json\n", interviewID)
}

// runInterview проводит интервью под границей восстановления:
// непредвиденная ошибка оркестратора не должна повредить мониторинг
func runInterview(service *interview.Service, state *session.State, interviewID string, questions []questionbank.Question) *storage.InterviewResult {
	defer func() {
		if r := recover(); r != nil {
			log.Fatalf("❌ Непредвиденная ошибка: %v", r)
		}
	}()
	defer state.Cancel() // останавливаем циклы мониторинга

	return service.Run(interviewID, questions)
}
