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
)

// ErrModelUnavailable 在未配置模型服务地址时返回
var ErrModelUnavailable = errors.New("dosha model endpoint not configured")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type doshaModelRequest struct {
	Features []int `json:"features"`
}

type doshaModelResponse struct {
	Probabilities map[string]float64 `json:"probabilities"`
	Error         string             `json:"error"`
}

// HTTPDoshaModel 通过 HTTP 调用外部模型服务（训练好的随机森林，核心侧视为黑盒）
type HTTPDoshaModel struct {
	baseURL string
	http    httpDoer
}

// NewHTTPDoshaModel 构造 HTTPDoshaModel
func NewHTTPDoshaModel(baseURL string) *HTTPDoshaModel {
	return &HTTPDoshaModel{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetHTTPClient 允许在测试或特定场景下替换底层 HTTP 客户端
func (m *HTTPDoshaModel) SetHTTPClient(client httpDoer) {
	if client == nil {
		m.http = &http.Client{Timeout: 15 * time.Second}
		return
	}
	m.http = client
}

// PredictProbabilities 把特征向量发给模型服务并返回概率分布。
// 失败作为可区分的外部服务错误上抛，本层不重试、无需回滚的局部状态。
func (m *HTTPDoshaModel) PredictProbabilities(ctx context.Context, features []int) (map[string]float64, error) {
	if m.baseURL == "" {
		return nil, ErrModelUnavailable
	}

	body, err := json.Marshal(doshaModelRequest{Features: features})
	if err != nil {
		return nil, fmt.Errorf("encode model request: %w", err)
	}

	endpoint := m.baseURL + "/predict_proba"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create model request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := m.http
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call dosha model: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read model response: %w", err)
	}

	var payload doshaModelResponse
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("decode model response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := strings.TrimSpace(payload.Error)
		if message == "" {
			message = resp.Status
		}
		return nil, fmt.Errorf("dosha model returned error: %s", message)
	}

	if len(payload.Probabilities) == 0 {
		return nil, errors.New("dosha model returned no probabilities")
	}

	return payload.Probabilities, nil
}
