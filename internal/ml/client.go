// Package ml wraps the Hugging Face inference API calls used for issue
// classification. Payload and response shapes are fixed by that API and
// treated as opaque here.
package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Labels is the closed category set every classifier scores against.
var Labels = []string{
	"pothole",
	"drainage leakage",
	"fused streetlight",
	"sewage overflow",
	"garbage dump",
	"broken sidewalk",
	"water pipeline leakage",
	"other",
}

// Result is a single model's verdict: the top category, its score, and the
// full per-category score map where the model provides one.
type Result struct {
	Category string             `json:"category"`
	Score    float64            `json:"score"`
	Scores   map[string]float64 `json:"scores,omitempty"`
}

// Classifier is the inference surface consumed by the classification service.
type Classifier interface {
	SentenceSimilarity(ctx context.Context, description string) (*Result, error)
	ZeroShot(ctx context.Context, description string) (*Result, error)
	ClassifyImage(ctx context.Context, imageURL string) (*Result, error)
}

// Client calls the Hugging Face hosted inference endpoints.
type Client struct {
	httpClient    *http.Client
	apiKey        string
	similarityURL string
	zeroShotURL   string
	imageURL      string
}

// Ensure Client implements Classifier
var _ Classifier = (*Client)(nil)

// NewClient creates an inference client. The shared HTTP client timeout
// bounds every upstream call.
func NewClient(apiKey, similarityURL, zeroShotURL, imageURL string) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		apiKey:        apiKey,
		similarityURL: similarityURL,
		zeroShotURL:   zeroShotURL,
		imageURL:      imageURL,
	}
}

type similarityRequest struct {
	Inputs struct {
		SourceSentence string   `json:"source_sentence"`
		Sentences      []string `json:"sentences"`
	} `json:"inputs"`
}

// SentenceSimilarity scores the description against every category label and
// returns the best match plus the full score map.
func (c *Client) SentenceSimilarity(ctx context.Context, description string) (*Result, error) {
	var req similarityRequest
	req.Inputs.SourceSentence = description
	req.Inputs.Sentences = Labels

	var scores []float64
	if err := c.postJSON(ctx, c.similarityURL, req, &scores); err != nil {
		return nil, err
	}
	if len(scores) != len(Labels) {
		return nil, fmt.Errorf("similarity: got %d scores for %d labels", len(scores), len(Labels))
	}

	result := &Result{Scores: make(map[string]float64, len(Labels))}
	for i, label := range Labels {
		result.Scores[label] = scores[i]
		if scores[i] > result.Score || result.Category == "" {
			result.Category = label
			result.Score = scores[i]
		}
	}
	return result, nil
}

type zeroShotRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		CandidateLabels []string `json:"candidate_labels"`
	} `json:"parameters"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// ZeroShot classifies the description over the category labels. The API
// returns labels ranked best-first.
func (c *Client) ZeroShot(ctx context.Context, description string) (*Result, error) {
	req := zeroShotRequest{Inputs: description}
	req.Parameters.CandidateLabels = Labels

	var resp zeroShotResponse
	if err := c.postJSON(ctx, c.zeroShotURL, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Labels) == 0 || len(resp.Labels) != len(resp.Scores) {
		return nil, fmt.Errorf("zero-shot: malformed response")
	}

	result := &Result{
		Category: resp.Labels[0],
		Score:    resp.Scores[0],
		Scores:   make(map[string]float64, len(resp.Labels)),
	}
	for i, label := range resp.Labels {
		result.Scores[label] = resp.Scores[i]
	}
	return result, nil
}

type imageLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ClassifyImage downloads the image and sends its bytes to the image model,
// returning the top label.
func (c *Client) ClassifyImage(ctx context.Context, imageURL string) (*Result, error) {
	imgReq, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("image request: %w", err)
	}
	imgResp, err := c.httpClient.Do(imgReq)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer imgResp.Body.Close()
	if imgResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image: status %d", imgResp.StatusCode)
	}
	imgData, err := io.ReadAll(imgResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.imageURL, bytes.NewReader(imgData))
	if err != nil {
		return nil, fmt.Errorf("inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image inference: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image inference: status %d", resp.StatusCode)
	}

	var labels []imageLabel
	if err := json.NewDecoder(resp.Body).Decode(&labels); err != nil {
		return nil, fmt.Errorf("decode image response: %w", err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("image inference: empty response")
	}

	return &Result{Category: labels[0].Label, Score: labels[0].Score}, nil
}

func (c *Client) postJSON(ctx context.Context, url string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call inference api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inference api: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
