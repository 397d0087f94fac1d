package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
)

type stubDoer struct {
	status  int
	body    string
	err     error
	lastReq *http.Request
}

func (d *stubDoer) Do(req *http.Request) (*http.Response, error) {
	d.lastReq = req
	if d.err != nil {
		return nil, d.err
	}
	return &http.Response{
		StatusCode: d.status,
		Status:     http.StatusText(d.status),
		Body:       io.NopCloser(bytes.NewBufferString(d.body)),
	}, nil
}

func TestHTTPDoshaModelPredict(t *testing.T) {
	model := NewHTTPDoshaModel("http://model.local/")
	doer := &stubDoer{
		status: http.StatusOK,
		body:   `{"probabilities":{"Vata":0.5,"Pitta":0.3,"Kapha":0.2}}`,
	}
	model.SetHTTPClient(doer)

	probs, err := model.PredictProbabilities(context.Background(), []int{0, 1, 2, 0, 1, 2})
	if err != nil {
		t.Fatalf("PredictProbabilities returned error: %v", err)
	}

	if probs[DoshaVata] != 0.5 || probs[DoshaKapha] != 0.2 {
		t.Fatalf("unexpected probabilities: %v", probs)
	}

	if doer.lastReq.URL.String() != "http://model.local/predict_proba" {
		t.Fatalf("unexpected endpoint: %s", doer.lastReq.URL)
	}

	var payload doshaModelRequest
	body, _ := io.ReadAll(doer.lastReq.Body)
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("request body is not valid JSON: %v", err)
	}
	if len(payload.Features) != 6 {
		t.Fatalf("expected 6 features in request, got %d", len(payload.Features))
	}
}

func TestHTTPDoshaModelNotConfigured(t *testing.T) {
	model := NewHTTPDoshaModel("")

	_, err := model.PredictProbabilities(context.Background(), []int{0})
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestHTTPDoshaModelServerError(t *testing.T) {
	model := NewHTTPDoshaModel("http://model.local")
	model.SetHTTPClient(&stubDoer{
		status: http.StatusInternalServerError,
		body:   `{"error":"model not loaded"}`,
	})

	_, err := model.PredictProbabilities(context.Background(), []int{0})
	if err == nil {
		t.Fatal("expected error for server failure")
	}
}

func TestHTTPDoshaModelEmptyDistribution(t *testing.T) {
	model := NewHTTPDoshaModel("http://model.local")
	model.SetHTTPClient(&stubDoer{status: http.StatusOK, body: `{"probabilities":{}}`})

	if _, err := model.PredictProbabilities(context.Background(), []int{0}); err == nil {
		t.Fatal("expected error for empty distribution")
	}
}
