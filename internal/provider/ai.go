package provider

import (
	"context"
	"io"
)

// Transcriber converts farmer voice recordings to text. The real
// implementation calls a speech-to-text model; the core only consumes the
// resulting text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

// StaticTranscriber returns a canned transcription for demo mode.
type StaticTranscriber struct{}

func (StaticTranscriber) Transcribe(_ context.Context, audio io.Reader, _ string) (string, error) {
	// Drain so multipart uploads are fully consumed.
	if _, err := io.Copy(io.Discard, audio); err != nil {
		return "", err
	}
	return "My tomato leaves are curling and turning yellow", nil
}

// Diagnosis is a crop-vision result.
type Diagnosis struct {
	Diagnosis  string `json:"diagnosis"`
	Confidence int    `json:"confidence"`
	Remedy     string `json:"remedy"`
}

// CropVision classifies crop diseases from a photo.
type CropVision interface {
	Diagnose(ctx context.Context, image io.Reader) (Diagnosis, error)
}

// StaticVision picks deterministically from a small catalog so the UI flow
// works without model credentials.
type StaticVision struct{}

var visionCatalog = []Diagnosis{
	{Diagnosis: "Leaf Blight", Confidence: 92, Remedy: "Apply copper-based fungicides. Improve air circulation."},
	{Diagnosis: "Powdery Mildew", Confidence: 88, Remedy: "Use sulphur-based organic fungicides. Avoid overhead watering."},
	{Diagnosis: "Healthy Crop", Confidence: 95, Remedy: "Continue good irrigation and monitoring practices."},
}

func (StaticVision) Diagnose(_ context.Context, image io.Reader) (Diagnosis, error) {
	n, err := io.Copy(io.Discard, image)
	if err != nil {
		return Diagnosis{}, err
	}
	return visionCatalog[n%int64(len(visionCatalog))], nil
}
