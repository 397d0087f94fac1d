package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrChatAPIKeyMissing 在未配置 Gemini API Key 时返回
var ErrChatAPIKeyMissing = errors.New("gemini api key is not configured")

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-2.0-flash"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

var (
	chatMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	chatSanitizer = bluemonday.UGCPolicy()
)

// ChatService 封装 Dr. Veda 问诊对话，底层调用 Gemini generateContent 接口
type ChatService struct {
	apiKey  string
	baseURL string
	model   string
	http    httpDoer
}

// NewChatService 构造 ChatService
func NewChatService(apiKey string) *ChatService {
	return &ChatService{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: defaultGeminiBaseURL,
		model:   defaultGeminiModel,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// SetHTTPClient 允许在测试或特定场景下替换底层 HTTP 客户端
func (s *ChatService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.http = &http.Client{Timeout: 60 * time.Second}
		return
	}
	s.http = client
}

// SetBaseURL 覆盖接口地址（测试用）
func (s *ChatService) SetBaseURL(base string) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base != "" {
		s.baseURL = base
	}
}

// Ask 以阿育吠陀医师人设回答用户提问，dosha 为空时按 Tridoshic 处理。
func (s *ChatService) Ask(ctx context.Context, question, dosha string) (string, error) {
	if s.apiKey == "" {
		return "", ErrChatAPIKeyMissing
	}

	dosha = strings.TrimSpace(dosha)
	if dosha == "" {
		dosha = "Tridoshic"
	}

	prompt := fmt.Sprintf(`You are Dr. Veda, an Ayurvedic physician with 20+ years experience.

The user has DOSHA: %s.

Answer the question below in:
- 2-3 short sentences
- simple and comforting tone
- Ayurvedic accuracy
- include 1-2 food or lifestyle tips specifically for %s

USER QUESTION: %q`, strings.ToUpper(dosha), dosha, question)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	client := s.http
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}

	var payload geminiResponse
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := strings.TrimSpace(payload.Error.Message)
		if message == "" {
			message = resp.Status
		}
		return "", fmt.Errorf("gemini api returned error: %s", message)
	}

	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini api returned no candidates")
	}

	return strings.TrimSpace(payload.Candidates[0].Content.Parts[0].Text), nil
}

// RenderAnswerHTML 把模型的 markdown 回答渲染为可安全内嵌的 HTML
func RenderAnswerHTML(answer string) (string, error) {
	var buf bytes.Buffer
	if err := chatMarkdown.Convert([]byte(answer), &buf); err != nil {
		return "", fmt.Errorf("render chat answer: %w", err)
	}
	return string(chatSanitizer.SanitizeBytes(buf.Bytes())), nil
}
