package advisor

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/logger"
	"github.com/ougirez/kisan/internal/pkg/store"
)

// Service produces the mocked disease-analysis results. There is no real
// inference here: the disease is drawn at random from the family known
// for the crop and the confidence is synthesized. Kept so the app works
// end to end without a model behind it.
type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

var diseasesByCrop = map[string][]string{
	"tomato": {"Early Blight", "Late Blight", "Leaf Mold", "Septoria Leaf Spot"},
	"rice":   {"Blast", "Brown Spot", "Bacterial Blight", "Sheath Blight"},
	"wheat":  {"Rust", "Powdery Mildew", "Leaf Blight", "Smut"},
	"cotton": {"Leaf Curl", "Wilt", "Boll Rot", "Root Rot"},
}

var treatments = map[string]string{
	"Early Blight": "Apply copper-based fungicide every 7-10 days. Remove infected leaves.",
	"Blast":        "Use Tricyclazole fungicide. Maintain proper water management.",
	"Rust":         "Apply Propiconazole. Ensure good air circulation.",
	"Leaf Curl":    "Use Imidacloprid. Control whitefly population.",
}

const defaultTreatment = "Consult agricultural expert for treatment plan."

// Analyze fills in synthesized disease, confidence and treatment for the
// uploaded image and persists the detection.
func (svc *Service) Analyze(ctx context.Context, insert domain.InsertDiseaseDetection) (*domain.DiseaseDetection, error) {
	pool := diseasesByCrop["tomato"]
	if insert.CropID != nil {
		if crop, err := svc.store.GetCrop(ctx, *insert.CropID); err == nil {
			if cropPool, ok := diseasesByCrop[strings.ToLower(crop.Name)]; ok {
				pool = cropPool
			}
		}
	}

	disease := pool[rand.Intn(len(pool))]
	confidence := decimal.NewFromFloat(75 + rand.Float64()*20).Round(2).InexactFloat64()

	treatment, ok := treatments[disease]
	if !ok {
		treatment = defaultTreatment
	}

	insert.DetectedDisease = &disease
	insert.Confidence = &confidence
	insert.Treatment = &treatment

	detection, err := svc.store.CreateDiseaseDetection(ctx, insert)
	if err != nil {
		return nil, fmt.Errorf("store.CreateDiseaseDetection: %w", err)
	}

	logger.Debugf(ctx, "synthesized detection %s for user %s", detection.ID, detection.UserID)
	return detection, nil
}

func (svc *Service) History(ctx context.Context, userID string) ([]*domain.DiseaseDetection, error) {
	return svc.store.GetUserDiseaseDetections(ctx, userID)
}
