package advisor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/store"
)

func TestAnalyzeSynthesizesAndPersists(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st)
	ctx := context.Background()

	detection, err := svc.Analyze(ctx, domain.InsertDiseaseDetection{
		UserID:   "u1",
		ImageURL: "https://img.example/leaf.jpg",
	})
	require.NoError(t, err)

	require.NotNil(t, detection.DetectedDisease)
	require.NotNil(t, detection.Confidence)
	require.NotNil(t, detection.Treatment)
	require.GreaterOrEqual(t, *detection.Confidence, 75.0)
	require.LessOrEqual(t, *detection.Confidence, 95.0)
	require.NotEmpty(t, *detection.Treatment)

	history, err := svc.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, detection.ID, history[0].ID)
}

func TestAnalyzeUsesCropFamily(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st)
	ctx := context.Background()

	crops, err := st.GetAllCrops(ctx)
	require.NoError(t, err)

	var riceID string
	for _, crop := range crops {
		if crop.Name == "Rice" {
			riceID = crop.ID
		}
	}
	require.NotEmpty(t, riceID)

	for i := 0; i < 10; i++ {
		detection, err := svc.Analyze(ctx, domain.InsertDiseaseDetection{
			UserID:   "u1",
			CropID:   &riceID,
			ImageURL: "https://img.example/paddy.jpg",
		})
		require.NoError(t, err)
		require.Contains(t, diseasesByCrop["rice"], *detection.DetectedDisease)
	}
}
