package handlers

import (
	"net/http"

	"fleetops-backend/internal/database/models"
	"fleetops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RosterHandler handles HTTP requests for the assignment engine: team
// shift blocks, individual shifts and leave records
type RosterHandler struct {
	rosterService service.RosterServiceInterface
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterService service.RosterServiceInterface) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
	}
}

// AssignTeamShift applies a shift block to a team for a list of dates.
// Occupied dates are skipped; the response reports which dates were applied.
func (h *RosterHandler) AssignTeamShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	var req service.AssignTeamShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.rosterService.AssignTeamShift(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetTeamRoster returns a team's roster rows for a date range
func (h *RosterHandler) GetTeamRoster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}

	rosters, err := h.rosterService.GetTeamRoster(id, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"team_rosters": rosters, "total": len(rosters)})
}

// RemoveTeamShift deletes a team roster row and the member entries it
// expanded to. Removing an unknown id is a no-op.
func (h *RosterHandler) RemoveTeamShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team roster ID"})
		return
	}

	if err := h.rosterService.RemoveTeamShift(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetTeamRosterStatusRequest carries a team roster status change
type SetTeamRosterStatusRequest struct {
	Status models.TeamRosterStatus `json:"status" binding:"required"`
}

// SetTeamRosterStatus updates the status of a team roster row
func (h *RosterHandler) SetTeamRosterStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team roster ID"})
		return
	}

	var req SetTeamRosterStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roster, err := h.rosterService.SetTeamRosterStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, roster)
}

// GetMemberRoster returns a member's roster entries for a date range
func (h *RosterHandler) GetMemberRoster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid crew member ID"})
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}

	entries, err := h.rosterService.GetMemberRoster(id, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roster_entries": entries, "total": len(entries)})
}

// AddLeave records a leave entry for a member; rejected when the date is
// already occupied
func (h *RosterHandler) AddLeave(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid crew member ID"})
		return
	}

	var req service.AddLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.rosterService.AddIndividualLeave(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// AddShift assigns a shift directly to a member for one date
func (h *RosterHandler) AddShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid crew member ID"})
		return
	}

	var req service.AddShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.rosterService.AssignMemberShift(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// RemoveLeave deletes a leave entry; unknown ids and non-leave entries are
// ignored
func (h *RosterHandler) RemoveLeave(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roster entry ID"})
		return
	}

	if err := h.rosterService.RemoveLeave(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveRosterEntry deletes any roster entry by id; removal is idempotent
func (h *RosterHandler) RemoveRosterEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roster entry ID"})
		return
	}

	if err := h.rosterService.RemoveRosterEntry(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
