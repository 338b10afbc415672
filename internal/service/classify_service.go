package service

import (
	"context"
	"log"
	"sync"

	"github.com/Navin2k4/UrbanUplift-sub000/internal/errors"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/ml"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/model"
)

const (
	// CategoryUnknown replaces any verdict below the confidence floor.
	CategoryUnknown = "unknown"
	// CategoryFallback stands in for a failed classifier call.
	CategoryFallback = "other"

	confidenceFloor = 0.5
	highPriorityBar = 0.7
)

// highPriorityCategories escalate to HIGH above the confidence bar.
var highPriorityCategories = map[string]bool{
	"sewage overflow":        true,
	"water pipeline leakage": true,
	"drainage leakage":       true,
}

// mediumPriorityCategories are MEDIUM regardless of confidence.
var mediumPriorityCategories = map[string]bool{
	"pothole":           true,
	"fused streetlight": true,
	"broken sidewalk":   true,
}

// ClassificationResult is the consensus verdict returned to the client.
// Per-model breakdowns are included for observability; nothing is persisted.
type ClassificationResult struct {
	Category   string         `json:"category"`
	Confidence float64        `json:"confidence"`
	Priority   model.Priority `json:"priority"`

	Similarity *ml.Result `json:"similarity,omitempty"`
	ZeroShot   *ml.Result `json:"zero_shot,omitempty"`
	Image      *ml.Result `json:"image,omitempty"`
}

// ClassifyService reconciles independent classifier verdicts into one
// category, confidence and priority.
type ClassifyService interface {
	Classify(ctx context.Context, description, imageURL string) (*ClassificationResult, error)
}

type classifyService struct {
	classifier ml.Classifier
}

// NewClassifyService creates a new classification service.
func NewClassifyService(classifier ml.Classifier) ClassifyService {
	return &classifyService{classifier: classifier}
}

// Classify runs the text classifiers (and the image classifier when an image
// is given) concurrently and merges their verdicts. Upstream failures degrade
// to a zero-score fallback; this method only errors on empty input.
func (s *classifyService) Classify(ctx context.Context, description, imageURL string) (*ClassificationResult, error) {
	if description == "" && imageURL == "" {
		return nil, errors.ErrEmptyClassifyInput
	}

	var (
		wg         sync.WaitGroup
		similarity *ml.Result
		zeroShot   *ml.Result
		image      *ml.Result
	)

	if description != "" {
		wg.Add(2)
		go func() {
			defer wg.Done()
			similarity = s.callOrFallback("similarity", func() (*ml.Result, error) {
				return s.classifier.SentenceSimilarity(ctx, description)
			})
		}()
		go func() {
			defer wg.Done()
			zeroShot = s.callOrFallback("zero-shot", func() (*ml.Result, error) {
				return s.classifier.ZeroShot(ctx, description)
			})
		}()
	}
	if imageURL != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			image = s.callOrFallback("image", func() (*ml.Result, error) {
				return s.classifier.ClassifyImage(ctx, imageURL)
			})
		}()
	}
	wg.Wait()

	result := &ClassificationResult{
		Similarity: similarity,
		ZeroShot:   zeroShot,
		Image:      image,
	}

	switch {
	case similarity != nil && zeroShot != nil:
		result.Category, result.Confidence = mergeTextVerdicts(similarity, zeroShot)
	case image != nil:
		// Image-only request: adopt the image verdict.
		result.Category = image.Category
		result.Confidence = image.Score
	}

	if result.Confidence < confidenceFloor {
		result.Category = CategoryUnknown
	}
	result.Priority = DerivePriority(result.Category, result.Confidence)

	return result, nil
}

// callOrFallback absorbs an upstream failure into the lowest-confidence
// default so classification never fails the parent request.
func (s *classifyService) callOrFallback(name string, call func() (*ml.Result, error)) *ml.Result {
	res, err := call()
	if err != nil {
		log.Printf("classifier %s failed, using fallback: %v", name, err)
		return &ml.Result{Category: CategoryFallback, Score: 0}
	}
	return res
}

// mergeTextVerdicts reconciles the two text classifiers: agreement takes the
// shared label with the max score, disagreement takes the higher-scoring
// model's label and score.
func mergeTextVerdicts(similarity, zeroShot *ml.Result) (string, float64) {
	if similarity.Category == zeroShot.Category {
		score := similarity.Score
		if zeroShot.Score > score {
			score = zeroShot.Score
		}
		return similarity.Category, score
	}
	if similarity.Score >= zeroShot.Score {
		return similarity.Category, similarity.Score
	}
	return zeroShot.Category, zeroShot.Score
}

// DerivePriority maps a category and confidence to a triage tier.
func DerivePriority(category string, confidence float64) model.Priority {
	if highPriorityCategories[category] && confidence > highPriorityBar {
		return model.PriorityHigh
	}
	if mediumPriorityCategories[category] || confidence > confidenceFloor {
		return model.PriorityMedium
	}
	return model.PriorityLow
}
