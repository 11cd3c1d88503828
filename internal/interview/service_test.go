package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-proctoring-complete/internal/config"
	"interview-proctoring-complete/internal/media"
	"interview-proctoring-complete/internal/questionbank"
	"interview-proctoring-complete/internal/session"
	"interview-proctoring-complete/internal/storage"
)

type fakeSpeaker struct {
	spoken []string
}

func (s *fakeSpeaker) Speak(text string, index int) error {
	s.spoken = append(s.spoken, text)
	return nil
}

type fakeListener struct {
	captures []media.Capture
}

func (l *fakeListener) Listen() (media.Capture, error) {
	if len(l.captures) == 0 {
		return media.Capture{Transcript: storage.NoResponse}, nil
	}
	c := l.captures[0]
	l.captures = l.captures[1:]
	return c, nil
}

type fakeEditor struct {
	code  string
	calls int
}

func (e *fakeEditor) AcquireCode(question string, index int) (string, error) {
	e.calls++
	return e.code, nil
}

type fakeComparator struct {
	signals []string
	calls   int
}

func (c *fakeComparator) Check(audio []byte) string {
	c.calls++
	if len(c.signals) == 0 {
		return ""
	}
	s := c.signals[0]
	c.signals = c.signals[1:]
	return s
}

func testConfig() *config.Config {
	return &config.Config{
		Proctoring: config.ProctoringConfig{MaxWarnings: 3},
		CodingKeywords: []string{"code", "program", "write", "implement",
			"function", "algorithm"},
		PositiveResponses: []string{"yes", "yeah", "yep", "ok", "okay", "sure",
			"ready", "proceed", "go ahead", "let's start", "start", "fine"},
	}
}

func spokenAnswer(wordCount int) media.Capture {
	return media.Capture{
		Transcript: strings.TrimSpace(strings.Repeat("word ", wordCount)),
		Audio:      []byte{1, 0, 2, 0},
	}
}

func TestRun_FullInterview(t *testing.T) {
	state := session.NewState(3)
	speaker := &fakeSpeaker{}
	editor := &fakeEditor{code: "func reverse(s string) string { return s }"}
	comparator := &fakeComparator{}
	listener := &fakeListener{captures: []media.Capture{
		{Transcript: "My name is Ivan, I am a backend engineer", Audio: []byte{1, 0}},
		{Transcript: "yes, let's start"},
		spokenAnswer(10),
	}}

	service := New(testConfig(), state, speaker, listener, editor, comparator)
	result := service.Run("demo", []questionbank.Question{
		{Text: "Explain the difference between a process and a thread.", Type: "technical"},
		{Text: "Write a function to reverse a string.", Type: "coding"},
	})

	require.Len(t, result.Answers, 3)
	assert.Equal(t, "Please introduce yourself.", result.Answers[0].Question)

	// mean(5.0, 4.0, 8.0) = 5.666... → 5.7
	assert.Equal(t, 5.7, result.FinalScore)
	assert.Equal(t, "Average performance.", result.OverallFeedback)
	assert.False(t, result.AutoSubmitted)
	assert.Equal(t, "demo", result.InterviewID)

	// Редактор открывался один раз, голос проверялся только на устном ответе
	assert.Equal(t, 1, editor.calls)
	assert.Equal(t, 1, comparator.calls)

	// Все вопросы были озвучены
	assert.Len(t, speaker.spoken, 4)
}

func TestRun_NoIntroductionEndsWithoutQuestions(t *testing.T) {
	state := session.NewState(3)
	listener := &fakeListener{captures: []media.Capture{
		{Transcript: storage.NoResponse},
	}}

	service := New(testConfig(), state, &fakeSpeaker{}, listener, &fakeEditor{}, &fakeComparator{})
	result := service.Run("demo", []questionbank.Question{
		{Text: "Explain goroutines.", Type: "technical"},
	})

	// Результат формируется даже при раннем отказе
	assert.Empty(t, result.Answers)
	assert.Equal(t, 0.0, result.FinalScore)
	assert.Equal(t, "Needs significant improvement.", result.OverallFeedback)
}

func TestRun_NegativeConfirmationEndsWithoutQuestions(t *testing.T) {
	state := session.NewState(3)
	speaker := &fakeSpeaker{}
	listener := &fakeListener{captures: []media.Capture{
		{Transcript: "My name is Ivan"},
		{Transcript: "no thanks"},
	}}

	service := New(testConfig(), state, speaker, listener, &fakeEditor{}, &fakeComparator{})
	result := service.Run("demo", []questionbank.Question{
		{Text: "Explain goroutines.", Type: "technical"},
	})

	// Записано только представление, вопросы не задавались
	require.Len(t, result.Answers, 1)
	assert.Len(t, speaker.spoken, 2)
}

func TestRun_CancellationStopsLoop(t *testing.T) {
	state := session.NewState(3)
	state.Cancel()

	listener := &fakeListener{captures: []media.Capture{
		{Transcript: "My name is Ivan"},
		{Transcript: "yes"},
	}}

	service := New(testConfig(), state, &fakeSpeaker{}, listener, &fakeEditor{}, &fakeComparator{})
	result := service.Run("demo", []questionbank.Question{
		{Text: "Explain goroutines.", Type: "technical"},
	})

	assert.True(t, result.AutoSubmitted)
	require.Len(t, result.Answers, 1) // только представление
}

func TestRun_SpeechFraudTripsCancellation(t *testing.T) {
	state := session.NewState(1)
	comparator := &fakeComparator{signals: []string{"Possible different speaker detected"}}
	listener := &fakeListener{captures: []media.Capture{
		{Transcript: "My name is Ivan"},
		{Transcript: "yes"},
		spokenAnswer(20),
		spokenAnswer(20),
	}}

	service := New(testConfig(), state, &fakeSpeaker{}, listener, &fakeEditor{}, comparator)
	result := service.Run("demo", []questionbank.Question{
		{Text: "Explain goroutines.", Type: "technical"},
		{Text: "Explain channels.", Type: "technical"},
	})

	assert.True(t, result.AutoSubmitted)
	assert.True(t, state.Cancelled())

	// Ответ на первый вопрос записан, второй вопрос не задавался
	require.Len(t, result.Answers, 2)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, session.CategorySpeech, result.Warnings[0].Category)
}

func TestRun_CodingQuestionSkipsVoiceCheck(t *testing.T) {
	state := session.NewState(3)
	comparator := &fakeComparator{}
	editor := &fakeEditor{code: storage.NotSubmitted}
	listener := &fakeListener{captures: []media.Capture{
		{Transcript: "My name is Ivan"},
		{Transcript: "okay"},
	}}

	service := New(testConfig(), state, &fakeSpeaker{}, listener, editor, comparator)
	result := service.Run("demo", []questionbank.Question{
		{Text: "Implement a stack using two queues.", Type: "coding"},
	})

	assert.Equal(t, 0, comparator.calls)
	require.Len(t, result.Answers, 2)
	assert.Equal(t, storage.NotSubmitted, result.Answers[1].Answer)
}
