package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/models"
	"fashion-marketplace-backend/internal/publication"
	"fashion-marketplace-backend/internal/services"
)

type ProjectsHandler struct {
	dbClient     *database.Client
	assetService *services.AssetService
	pubService   *publication.Service
}

func NewProjectsHandler(dbClient *database.Client, assetService *services.AssetService, pubService *publication.Service) *ProjectsHandler {
	return &ProjectsHandler{
		dbClient:     dbClient,
		assetService: assetService,
		pubService:   pubService,
	}
}

func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	designerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	project, err := h.dbClient.CreateProject(designerID, &req)
	if err != nil {
		respondError(c, "create project", err)
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	designerID, ok := currentUserID(c)
	if !ok {
		return
	}

	projects, err := h.dbClient.ListProjects(designerID, c.Query("status"), c.Query("category"))
	if err != nil {
		respondError(c, "list projects", err)
		return
	}

	resp := models.ProjectListResponse{Projects: make([]models.ProjectResponse, len(projects))}
	for i := range projects {
		resp.Projects[i] = toProjectResponse(&projects[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectsHandler) GetProject(c *gin.Context) {
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
		respondError(c, "get project", err)
		return
	}
	if project.DesignerID != designerID {
		respondError(c, "get project", database.ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	designerID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "project_id")
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	project, err := h.dbClient.UpdateProject(projectID, designerID, &req)
	if err != nil {
		respondError(c, "update project", err)
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	designerID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "project_id")
	if !ok {
		return
	}

	if err := h.dbClient.DeleteProject(projectID, designerID); err != nil {
		respondError(c, "delete project", err)
		return
	}

	// Storage cleanup after the row is gone; best effort.
	h.assetService.CleanupProject(designerID, projectID)

	c.JSON(http.StatusOK, gin.H{"message": "project deleted successfully"})
}

// SubmitForPublication turns a draft project into a pending publication
// request through the pipeline service.
func (h *ProjectsHandler) SubmitForPublication(c *gin.Context) {
	designerID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID, ok := parseUUIDParam(c, "project_id")
	if !ok {
		return
	}

	var req models.SubmitPublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Body is optional; defaults come from the project itself.
		req = models.SubmitPublicationRequest{}
	}

	request, err := h.pubService.Submit(projectID, designerID, &req)
	if err != nil {
		respondError(c, "submit publication request", err)
		return
	}

	c.JSON(http.StatusOK, toPublicationResponse(request))
}
