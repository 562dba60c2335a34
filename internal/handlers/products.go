package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fashion-marketplace-backend/internal/models"
)

// ProductStore is the slice of the database this handler needs.
// *database.Client satisfies it; tests supply a fake.
type ProductStore interface {
	ListProducts(status string, designerID uuid.NullUUID) ([]models.Product, error)
	GetProduct(productID uuid.UUID) (*models.Product, error)
	CreateProduct(designerID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(productID uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(productID uuid.UUID) error
	DeleteDraft(designerID uuid.UUID, entityType models.DraftEntityType) error
}

type ProductsHandler struct {
	store ProductStore
}

func NewProductsHandler(store ProductStore) *ProductsHandler {
	return &ProductsHandler{store: store}
}

func (h *ProductsHandler) ListProducts(c *gin.Context) {
	var designerID uuid.NullUUID
	if v := c.Query("designer_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid designer_id"})
			return
		}
		designerID = uuid.NullUUID{UUID: id, Valid: true}
	}

	products, err := h.store.ListProducts(c.Query("status"), designerID)
	if err != nil {
		respondError(c, "list products", err)
		return
	}

	resp := models.ProductListResponse{Products: make([]models.ProductResponse, len(products))}
	for i := range products {
		resp.Products[i] = toProductResponse(&products[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) GetProduct(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}

	product, err := h.store.GetProduct(productID)
	if err != nil {
		respondError(c, "get product", err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// CreateProduct is the admin's manual path onto the catalog; conversion
// from an approved publication request is the other.
func (h *ProductsHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	designerID, err := uuid.Parse(req.DesignerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid designer_id"})
		return
	}

	product, err := h.store.CreateProduct(designerID, &req)
	if err != nil {
		respondError(c, "create product", err)
		return
	}

	// A successful create invalidates the designer's auto-saved form.
	_ = h.store.DeleteDraft(designerID, models.DraftProduct)

	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductsHandler) UpdateProduct(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = string(models.ProductDraft)
	}

	product, err := h.store.UpdateProduct(productID, &req)
	if err != nil {
		respondError(c, "update product", err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductsHandler) DeleteProduct(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}

	if err := h.store.DeleteProduct(productID); err != nil {
		respondError(c, "delete product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}
