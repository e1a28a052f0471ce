package handler

import (
	"fmt"
	"net/http"

	appbrief "github.com/alvarosc2000/BriefNest-Local/internal/application/brief"
	"github.com/alvarosc2000/BriefNest-Local/internal/infrastructure/printing"
	"github.com/alvarosc2000/BriefNest-Local/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BriefHandler handles brief project HTTP requests
type BriefHandler struct {
	BaseHandler
	briefService *appbrief.BriefService
	renderer     printing.PDFRenderer
	template     *printing.BriefTemplate
}

// NewBriefHandler creates a new brief handler
func NewBriefHandler(briefService *appbrief.BriefService, renderer printing.PDFRenderer, template *printing.BriefTemplate) *BriefHandler {
	return &BriefHandler{
		briefService: briefService,
		renderer:     renderer,
		template:     template,
	}
}

// Generate consumes a credit and generates a new brief from the questionnaire
func (h *BriefHandler) Generate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req GenerateBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.briefService.Generate(c.Request.Context(), appbrief.GenerateBriefInput{
		UserID: userID,
		Form:   req.toForm(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns a page of the user's projects, newest first
func (h *BriefHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	listReq := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.briefService.List(c.Request.Context(), appbrief.ListProjectsInput{
		UserID:   userID,
		Page:     listReq.Page,
		PageSize: listReq.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Projects, result.TotalCount, result.Page, result.PageSize)
}

// Get returns one of the user's projects with the full questionnaire and brief
func (h *BriefHandler) Get(c *gin.Context) {
	userID, projectID, ok := h.briefIDs(c)
	if !ok {
		return
	}

	result, err := h.briefService.Get(c.Request.Context(), userID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes one of the user's projects
func (h *BriefHandler) Delete(c *gin.Context) {
	userID, projectID, ok := h.briefIDs(c)
	if !ok {
		return
	}

	if err := h.briefService.Delete(c.Request.Context(), userID, projectID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// DownloadPDF renders the brief as a styled PDF and streams it to the client
func (h *BriefHandler) DownloadPDF(c *gin.Context) {
	userID, projectID, ok := h.briefIDs(c)
	if !ok {
		return
	}

	project, err := h.briefService.GetDomain(c.Request.Context(), userID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	html, err := h.template.RenderHTML(project)
	if err != nil {
		h.InternalError(c, "Failed to prepare brief document")
		return
	}

	result, err := h.renderer.Render(c.Request.Context(), &printing.RenderRequest{
		HTML:  html,
		Title: project.Form.ProjectName,
	})
	if err != nil {
		h.InternalError(c, "Failed to render brief PDF")
		return
	}

	filename := printing.BriefFilename(project.Form.ProjectName)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", result.PDFData)
}

// briefIDs extracts the authenticated user ID and the project ID path parameter
func (h *BriefHandler) briefIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return uuid.Nil, uuid.Nil, false
	}

	return userID, projectID, true
}
