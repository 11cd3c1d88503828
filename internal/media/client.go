package media

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"interview-proctoring-complete/internal/config"
	"interview-proctoring-complete/internal/storage"
	"interview-proctoring-complete/internal/vision"
)

// Client представляет клиент локального медиашлюза.
// Шлюз владеет камерой, микрофоном, синтезом речи, активным окном
// и редактором кода; процесс общается с ним по HTTP на localhost.
type Client struct {
	baseURL  string
	voice    string
	language string
	speech   config.SpeechConfig
	client   *http.Client
}

// Capture представляет записанный устный ответ
type Capture struct {
	Transcript string
	Audio      []byte
}

// NewClient создает клиент медиашлюза
func NewClient(baseURL, voice, language string, speech config.SpeechConfig) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		voice:    voice,
		language: language,
		speech:   speech,
		client:   &http.Client{},
	}
}

// call выполняет запрос к шлюзу и разбирает JSON ответ
func (c *Client) call(method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("ошибка сериализации запроса: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP ошибка %d: %s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

// OpenCamera открывает камеру на шлюзе.
// Недоступная камера фатальна для всей сессии.
func (c *Client) OpenCamera(index int) error {
	request := struct {
		Index int `json:"index"`
	}{Index: index}

	return c.call("POST", "/camera/open", request, nil)
}

type frameResponse struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Gray   string `json:"gray"`
	Faces  int    `json:"faces"`
}

// Frame возвращает последний кадр с камеры вместе с числом лиц.
// Кадры не буферизуются: каждый вызов отдает самый свежий кадр.
func (c *Client) Frame() (vision.Frame, error) {
	var resp frameResponse
	if err := c.call("GET", "/camera/frame", nil, &resp); err != nil {
		return vision.Frame{}, err
	}

	gray, err := base64.StdEncoding.DecodeString(resp.Gray)
	if err != nil {
		return vision.Frame{}, fmt.Errorf("ошибка декодирования кадра: %w", err)
	}

	return vision.Frame{
		Gray:   gray,
		Width:  resp.Width,
		Height: resp.Height,
		Faces:  resp.Faces,
	}, nil
}

// Speak озвучивает текст вопроса. Вызов fire-and-forget:
// ошибку озвучивания вызывающий лишь логирует.
func (c *Client) Speak(text string, index int) error {
	request := struct {
		Text  string `json:"text"`
		Index int    `json:"index"`
		Voice string `json:"voice"`
	}{Text: text, Index: index, Voice: c.voice}

	return c.call("POST", "/speak", request, nil)
}

type listenResponse struct {
	Transcript string `json:"transcript"`
	Audio      string `json:"audio"`
	TimedOut   bool   `json:"timed_out"`
	Unclear    bool   `json:"unclear"`
}

// Listen записывает устный ответ кандидата.
// Таймаут и нераспознанная речь превращаются в ответы-заглушки.
func (c *Client) Listen() (Capture, error) {
	request := struct {
		TimeoutSeconds     float64 `json:"timeout_s"`
		PhraseLimitSeconds float64 `json:"phrase_limit_s"`
		AmbientSeconds     float64 `json:"ambient_s"`
		Language           string  `json:"language"`
	}{
		TimeoutSeconds:     c.speech.ListenTimeoutSeconds,
		PhraseLimitSeconds: c.speech.PhraseLimitSeconds,
		AmbientSeconds:     c.speech.AmbientNoiseSeconds,
		Language:           c.language,
	}

	var resp listenResponse
	if err := c.call("POST", "/listen", request, &resp); err != nil {
		return Capture{}, err
	}

	if resp.TimedOut {
		// Тишина: ответа нет, аудио для сравнения голоса тоже нет
		return Capture{Transcript: storage.NoResponse}, nil
	}

	audio, err := base64.StdEncoding.DecodeString(resp.Audio)
	if err != nil {
		return Capture{}, fmt.Errorf("ошибка декодирования аудио: %w", err)
	}

	if resp.Unclear {
		return Capture{Transcript: storage.SpeechNotClear, Audio: audio}, nil
	}

	return Capture{Transcript: resp.Transcript, Audio: audio}, nil
}

// ForegroundApp возвращает имя процесса активного окна в нижнем регистре
func (c *Client) ForegroundApp() (string, error) {
	var resp struct {
		Process string `json:"process"`
	}
	if err := c.call("GET", "/foreground", nil, &resp); err != nil {
		return "", err
	}

	return strings.ToLower(resp.Process), nil
}

// AcquireCode открывает редактор кода и блокируется до отправки решения.
// Таймаута нет: кандидат пишет столько, сколько нужно.
func (c *Client) AcquireCode(question string, index int) (string, error) {
	request := struct {
		Question string `json:"question"`
		Index    int    `json:"index"`
	}{Question: question, Index: index}

	var resp struct {
		Code      string `json:"code"`
		Submitted bool   `json:"submitted"`
	}
	if err := c.call("POST", "/editor", request, &resp); err != nil {
		return "", err
	}

	if !resp.Submitted || strings.TrimSpace(resp.Code) == "" {
		return storage.NotSubmitted, nil
	}

	return resp.Code, nil
}

// Beep подает звуковой сигнал на стороне кандидата
func (c *Client) Beep(frequencyHz, durationMs int) error {
	request := struct {
		FrequencyHz int `json:"frequency_hz"`
		DurationMs  int `json:"duration_ms"`
	}{FrequencyHz: frequencyHz, DurationMs: durationMs}

	return c.call("POST", "/beep", request, nil)
}
