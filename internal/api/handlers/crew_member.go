package handlers

import (
	"net/http"
	"strconv"

	"fleetops-backend/internal/database/models"
	"fleetops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CrewMemberHandler handles HTTP requests for the crew member catalog
type CrewMemberHandler struct {
	crewService service.CrewMemberServiceInterface
}

// NewCrewMemberHandler creates a new crew member handler
func NewCrewMemberHandler(crewService service.CrewMemberServiceInterface) *CrewMemberHandler {
	return &CrewMemberHandler{
		crewService: crewService,
	}
}

// CreateCrewMember creates a new crew member
func (h *CrewMemberHandler) CreateCrewMember(c *gin.Context) {
	var req service.CreateCrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.crewService.CreateCrewMember(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetCrewMember retrieves a crew member by ID
func (h *CrewMemberHandler) GetCrewMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid crew member ID"})
		return
	}

	member, err := h.crewService.GetCrewMemberByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListCrewMembers lists crew members with optional status filter and pagination
func (h *CrewMemberHandler) ListCrewMembers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	status := models.CrewStatus(c.Query("status"))

	members, err := h.crewService.ListCrewMembers(status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateCrewMember updates a crew member
func (h *CrewMemberHandler) UpdateCrewMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid crew member ID"})
		return
	}

	var req service.UpdateCrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.crewService.UpdateCrewMember(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteCrewMember deletes a crew member
func (h *CrewMemberHandler) DeleteCrewMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid crew member ID"})
		return
	}

	if err := h.crewService.DeleteCrewMember(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
