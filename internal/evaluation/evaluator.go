package evaluation

import (
	"math"
	"strings"

	"interview-proctoring-complete/internal/storage"
)

// Report представляет результат оценки интервью
type Report struct {
	Results         []storage.QuestionResult
	FinalScore      float64
	OverallFeedback string
}

// Evaluate детерминированно оценивает собранные ответы.
// isCoding — табличный матчер вопросов по программированию; сама оценка
// не содержит случайности: одинаковые ответы дают одинаковый отчет.
func Evaluate(answers []storage.Answer, isCoding func(string) bool) Report {
	results := make([]storage.QuestionResult, 0, len(answers))
	total := 0.0

	for _, item := range answers {
		var score float64
		var feedback string

		switch {
		case strings.HasPrefix(strings.ToLower(item.Question), "please introduce"):
			score, feedback = 5.0, "Introduction recorded."

		case storage.IsNoAnswer(item.Answer):
			score, feedback = 0.0, "No answer provided."

		case isCoding(item.Question):
			if item.Answer != storage.NotSubmitted {
				score, feedback = 8.0, "Code submitted successfully."
			} else {
				score, feedback = 2.0, "Coding question not answered."
			}

		default:
			// Устный ответ оценивается по развернутости
			words := len(strings.Fields(item.Answer))
			switch {
			case words >= 30:
				score, feedback = 8.0, "Clear and detailed explanation."
			case words >= 15:
				score, feedback = 6.0, "Adequate explanation."
			case words >= 7:
				score, feedback = 4.0, "Short explanation."
			default:
				score, feedback = 2.0, "Very minimal explanation."
			}
		}

		results = append(results, storage.QuestionResult{
			Question: item.Question,
			Score:    score,
			Feedback: feedback,
		})
		total += score
	}

	report := Report{Results: results}
	if len(results) > 0 {
		report.FinalScore = math.Round(total/float64(len(results))*10) / 10
	}

	switch {
	case report.FinalScore >= 8:
		report.OverallFeedback = "Strong overall performance."
	case report.FinalScore >= 5:
		report.OverallFeedback = "Average performance."
	default:
		report.OverallFeedback = "Needs significant improvement."
	}

	return report
}
