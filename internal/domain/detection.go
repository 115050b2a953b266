package domain

import "time"

type DiseaseDetection struct {
	ID              string    `json:"_id" db:"id"`
	UserID          string    `json:"userId" db:"user_id"`
	CropID          *string   `json:"cropId" db:"crop_id"`
	ImageURL        string    `json:"imageUrl" db:"image_url"`
	DetectedDisease *string   `json:"detectedDisease" db:"detected_disease"`
	Confidence      *float64  `json:"confidence" db:"confidence"`
	Treatment       *string   `json:"treatment" db:"treatment"`
	DetectedAt      time.Time `json:"detectedAt" db:"detected_at"`
}

type InsertDiseaseDetection struct {
	UserID          string   `json:"userId" validate:"required"`
	CropID          *string  `json:"cropId"`
	ImageURL        string   `json:"imageUrl" validate:"required"`
	DetectedDisease *string  `json:"detectedDisease"`
	Confidence      *float64 `json:"confidence"`
	Treatment       *string  `json:"treatment"`
}
