package storage

import (
	"strings"

	"interview-proctoring-complete/internal/session"
)

// Ответы-заглушки, которые подставляются вместо отсутствующего ответа
const (
	NoResponse       = "(No response)"
	SpeechNotClear   = "(Speech not clear)"
	NoSpeechDetected = "(No speech detected)"
	NotSubmitted     = "(Not submitted)"
)

// IsNoAnswer сообщает, является ли ответ одной из заглушек "нет ответа"
func IsNoAnswer(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "(no response)", "(speech not clear)", "(no speech detected)", "":
		return true
	}
	return false
}

// Answer представляет один вопрос и ответ кандидата
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuestionResult представляет оценку одного ответа
type QuestionResult struct {
	Question string  `json:"question"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// InterviewResult представляет итоговый результат интервью
type InterviewResult struct {
	InterviewID     string            `json:"interview_id"`
	Timestamp       string            `json:"timestamp"`
	AutoSubmitted   bool              `json:"auto_submitted"`
	Answers         []Answer          `json:"answers"`
	Results         []QuestionResult  `json:"results"`
	FinalScore      float64           `json:"final_score"`
	OverallFeedback string            `json:"overall_feedback"`
	Warnings        []session.Warning `json:"warnings,omitempty"`
}
