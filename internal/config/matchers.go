package config

import "strings"

// IsAllowedApp проверяет имя активного приложения по списку разрешенных.
// Сравнение регистронезависимое, по вхождению подстроки.
func (c *Config) IsAllowedApp(name string) bool {
	name = strings.ToLower(name)
	for _, app := range c.AllowedApps {
		if strings.Contains(name, strings.ToLower(app)) {
			return true
		}
	}
	return false
}

// IsCodingQuestion проверяет, является ли вопрос вопросом по программированию
func (c *Config) IsCodingQuestion(question string) bool {
	question = strings.ToLower(question)
	for _, keyword := range c.CodingKeywords {
		if strings.Contains(question, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// IsPositiveResponse проверяет, содержит ли ответ кандидата подтверждение
func (c *Config) IsPositiveResponse(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return false
	}
	for _, word := range c.PositiveResponses {
		if strings.Contains(text, strings.ToLower(word)) {
			return true
		}
	}
	return false
}
