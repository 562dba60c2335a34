package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/models"
)

type CollectionsHandler struct {
	dbClient *database.Client
}

func NewCollectionsHandler(dbClient *database.Client) *CollectionsHandler {
	return &CollectionsHandler{dbClient: dbClient}
}

func (h *CollectionsHandler) ListCollections(c *gin.Context) {
	collections, err := h.dbClient.ListCollections()
	if err != nil {
		respondError(c, "list collections", err)
		return
	}

	resp := models.CollectionListResponse{Collections: make([]models.CollectionResponse, len(collections))}
	for i := range collections {
		resp.Collections[i] = toCollectionResponse(&collections[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CollectionsHandler) CreateCollection(c *gin.Context) {
	var req models.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	designerID, err := uuid.Parse(req.DesignerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid designer_id"})
		return
	}

	collection, err := h.dbClient.CreateCollection(designerID, &req)
	if err != nil {
		respondError(c, "create collection", err)
		return
	}

	c.JSON(http.StatusOK, toCollectionResponse(collection))
}

func (h *CollectionsHandler) UpdateCollection(c *gin.Context) {
	collectionID, ok := parseUUIDParam(c, "collection_id")
	if !ok {
		return
	}

	var req models.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	collection, err := h.dbClient.UpdateCollection(collectionID, &req)
	if err != nil {
		respondError(c, "update collection", err)
		return
	}

	c.JSON(http.StatusOK, toCollectionResponse(collection))
}

func (h *CollectionsHandler) DeleteCollection(c *gin.Context) {
	collectionID, ok := parseUUIDParam(c, "collection_id")
	if !ok {
		return
	}

	if err := h.dbClient.DeleteCollection(collectionID); err != nil {
		respondError(c, "delete collection", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "collection deleted successfully"})
}

func (h *CollectionsHandler) AddProduct(c *gin.Context) {
	collectionID, ok := parseUUIDParam(c, "collection_id")
	if !ok {
		return
	}
	productID, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}

	if err := h.dbClient.AddProductToCollection(collectionID, productID); err != nil {
		respondError(c, "add product to collection", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product added to collection"})
}

func (h *CollectionsHandler) RemoveProduct(c *gin.Context) {
	collectionID, ok := parseUUIDParam(c, "collection_id")
	if !ok {
		return
	}
	productID, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}

	if err := h.dbClient.RemoveProductFromCollection(collectionID, productID); err != nil {
		respondError(c, "remove product from collection", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product removed from collection"})
}
