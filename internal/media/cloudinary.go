package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// Uploader stores journal audio and returns a public URL for it.
type Uploader interface {
	UploadAudio(ctx context.Context, audio io.Reader, filename, patientID, entryID string) (string, error)
}

type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

// NewCloudinaryUploader creates an Uploader backed by Cloudinary.
func NewCloudinaryUploader(cloudName, apiKey, apiSecret string, logger *zap.Logger) (Uploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary client: %w", err)
	}
	return &cloudinaryUploader{cld: cld, logger: logger}, nil
}

// UploadAudio uploads an audio blob, foldered per patient and entry.
// Cloudinary stores audio under the "video" resource type.
func (u *cloudinaryUploader) UploadAudio(ctx context.Context, audio io.Reader, filename, patientID, entryID string) (string, error) {
	folder := fmt.Sprintf("journal/%s", patientID)
	if entryID != "" {
		folder = fmt.Sprintf("journal/%s/%s", patientID, entryID)
	}

	result, err := u.cld.Upload.Upload(ctx, audio, uploader.UploadParams{
		ResourceType:     "video",
		Folder:           folder,
		FilenameOverride: filename,
		UseFilename:      api.Bool(true),
		UniqueFilename:   api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload audio: %w", err)
	}
	if result.Error.Message != "" {
		return "", errors.New(result.Error.Message)
	}

	url := result.SecureURL
	if url == "" {
		url = result.URL
	}
	u.logger.Info("Uploaded journal audio",
		zap.String("patient_id", patientID), zap.String("url", url))
	return url, nil
}
