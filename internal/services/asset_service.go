package services

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/models"
	"fashion-marketplace-backend/internal/supabase"
)

// AssetService uploads project assets to storage and records them. Storage
// writes are retried with backoff; the database row is only written after
// the upload succeeded.
type AssetService struct {
	dbClient      *database.Client
	storageClient *supabase.StorageClient
}

func NewAssetService(dbClient *database.Client, storageClient *supabase.StorageClient) *AssetService {
	return &AssetService{
		dbClient:      dbClient,
		storageClient: storageClient,
	}
}

var assetTypeByExtension = map[string]models.AssetType{
	".jpg":  models.AssetImage,
	".jpeg": models.AssetImage,
	".png":  models.AssetImage,
	".webp": models.AssetImage,
	".gif":  models.AssetImage,
	".mp4":  models.AssetVideo,
	".mov":  models.AssetVideo,
	".pdf":  models.AssetDocument,
	".glb":  models.Asset3DModel,
	".gltf": models.Asset3DModel,
	".obj":  models.Asset3DModel,
}

// AssetTypeForFilename classifies an upload by extension.
func AssetTypeForFilename(filename string) models.AssetType {
	ext := strings.ToLower(filepath.Ext(filename))
	if t, ok := assetTypeByExtension[ext]; ok {
		return t
	}
	return models.AssetOther
}

// Upload pushes the file to storage and records the asset row.
func (s *AssetService) Upload(project *models.Project, filename, contentType string, data []byte, displayOrder int) (*models.ProjectAsset, error) {
	var storagePath, publicURL string
	err := retryWithBackoff(func() error {
		var err error
		storagePath, publicURL, err = s.storageClient.UploadAsset(project.DesignerID, project.ID, filename, contentType, data)
		return err
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("storage upload failed: %w", err)
	}

	assetType := AssetTypeForFilename(filename)
	thumbnailURL := ""
	if assetType == models.AssetImage {
		thumbnailURL = publicURL
	}

	asset, err := s.dbClient.CreateAsset(&models.ProjectAsset{
		ProjectID:    project.ID,
		DesignerID:   project.DesignerID,
		Name:         filename,
		AssetType:    assetType,
		URL:          publicURL,
		ThumbnailURL: thumbnailURL,
		DisplayOrder: displayOrder,
	})
	if err != nil {
		// Orphaned storage object; remove it so a retry starts clean.
		if cleanupErr := s.storageClient.DeleteFile(storagePath); cleanupErr != nil {
			log.Warn().Err(cleanupErr).Str("path", storagePath).Msg("failed to clean up orphaned upload")
		}
		return nil, err
	}

	return asset, nil
}

// CleanupProject removes every stored file for a project. Best effort.
func (s *AssetService) CleanupProject(designerID, projectID uuid.UUID) {
	if err := s.storageClient.DeleteProjectFiles(designerID, projectID); err != nil {
		log.Warn().Err(err).Str("project_id", projectID.String()).Msg("failed to delete project files from storage")
	}
}

func retryWithBackoff(fn func() error, maxRetries int) error {
	backoffs := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if i < len(backoffs) {
			time.Sleep(backoffs[i])
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}
