package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/models"
	"fashion-marketplace-backend/internal/services"
)

const maxAssetSize = 50 << 20 // 50 MB

type AssetsHandler struct {
	dbClient     *database.Client
	assetService *services.AssetService
}

func NewAssetsHandler(dbClient *database.Client, assetService *services.AssetService) *AssetsHandler {
	return &AssetsHandler{
		dbClient:     dbClient,
		assetService: assetService,
	}
}

// Upload accepts multipart files and stores them as project assets.
func (h *AssetsHandler) Upload(c *gin.Context) {
	designerID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "project_id")
	if !ok {
		return
	}

	project, err := h.dbClient.GetProject(projectID)
	if err != nil {
		respondError(c, "upload asset", err)
		return
	}
	if project.DesignerID != designerID {
		respondError(c, "upload asset", database.ErrUnauthorized)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid multipart form", Message: err.Error()})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no files provided"})
		return
	}

	displayOrder := 0
	if v := c.PostForm("display_order"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			displayOrder = n
		}
	}

	var uploaded []models.AssetResponse
	for i, fileHeader := range files {
		if fileHeader.Size > maxAssetSize {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "file too large",
				Message: fileHeader.Filename,
			})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open file", Message: err.Error()})
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file", Message: err.Error()})
			return
		}

		asset, err := h.assetService.Upload(project, fileHeader.Filename,
			fileHeader.Header.Get("Content-Type"), data, displayOrder+i)
		if err != nil {
			respondError(c, "upload asset", err)
			return
		}
		uploaded = append(uploaded, toAssetResponse(asset))
	}

	c.JSON(http.StatusOK, models.AssetListResponse{Assets: uploaded})
}

func (h *AssetsHandler) ListAssets(c *gin.Context) {
	designerID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "project_id")
	if !ok {
		return
	}

	project, err := h.dbClient.GetProject(projectID)
	if err != nil {
		respondError(c, "list assets", err)
		return
	}
	if project.DesignerID != designerID {
		respondError(c, "list assets", database.ErrUnauthorized)
		return
	}

	assets, err := h.dbClient.ListAssets(projectID)
	if err != nil {
		respondError(c, "list assets", err)
		return
	}

	resp := models.AssetListResponse{Assets: make([]models.AssetResponse, len(assets))}
	for i := range assets {
		resp.Assets[i] = toAssetResponse(&assets[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AssetsHandler) DeleteAsset(c *gin.Context) {
	designerID, ok := currentUserID(c)
	if !ok {
		return
	}
	assetID, ok := parseUUIDParam(c, "asset_id")
	if !ok {
		return
	}

	if err := h.dbClient.DeleteAsset(assetID, designerID); err != nil {
		respondError(c, "delete asset", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "asset deleted successfully"})
}
