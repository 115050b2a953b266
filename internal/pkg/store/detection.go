package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/store/xpgx"
)

var detectionColumns = []string{"id", "user_id", "crop_id", "image_url", "detected_disease", "confidence", "treatment", "detected_at"}

func (s *pgStore) CreateDiseaseDetection(ctx context.Context, insert domain.InsertDiseaseDetection) (*domain.DiseaseDetection, error) {
	detection := &domain.DiseaseDetection{
		ID:              uuid.NewString(),
		UserID:          insert.UserID,
		CropID:          insert.CropID,
		ImageURL:        insert.ImageURL,
		DetectedDisease: insert.DetectedDisease,
		Confidence:      insert.Confidence,
		Treatment:       insert.Treatment,
		DetectedAt:      time.Now().UTC(),
	}

	query := builder().Insert(tableDetections).
		Columns(detectionColumns...).
		Values(detection.ID, detection.UserID, detection.CropID, detection.ImageURL,
			detection.DetectedDisease, detection.Confidence, detection.Treatment, detection.DetectedAt)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	return detection, nil
}

func (s *pgStore) GetUserDiseaseDetections(ctx context.Context, userID string) ([]*domain.DiseaseDetection, error) {
	query := builder().Select(detectionColumns...).
		From(tableDetections).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("detected_at desc")

	detections, err := xpgx.Selectx[domain.DiseaseDetection](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return detections, nil
}
