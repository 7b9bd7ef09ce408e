package routes

import (
	"fleetops-backend/internal/api/handlers"
	"fleetops-backend/internal/api/middleware"
	"fleetops-backend/internal/config"
	"fleetops-backend/internal/repository"
	"fleetops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	memberRepo := repository.NewCrewMemberRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	rosterRepo := repository.NewRosterEntryRepository(db)
	teamRosterRepo := repository.NewTeamRosterRepository(db)
	overrideRepo := repository.NewTeamDayOverrideRepository(db)

	// Initialize services
	crewService := service.NewCrewMemberService(memberRepo, validator)
	teamService := service.NewTeamService(teamRepo, memberRepo, overrideRepo, validator)
	rosterService := service.NewRosterService(rosterRepo, teamRosterRepo, teamRepo, memberRepo, overrideRepo, validator)
	conflictService := service.NewConflictService(rosterRepo, teamRosterRepo, teamRepo, memberRepo, overrideRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	crewHandler := handlers.NewCrewMemberHandler(crewService)
	teamHandler := handlers.NewTeamHandler(teamService, conflictService)
	rosterHandler := handlers.NewRosterHandler(rosterService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Crew member catalog and individual roster routes
		crewMembers := v1.Group("/crew-members")
		{
			crewMembers.GET("", crewHandler.ListCrewMembers)
			crewMembers.POST("", crewHandler.CreateCrewMember)
			crewMembers.GET("/:id", crewHandler.GetCrewMember)
			crewMembers.PUT("/:id", crewHandler.UpdateCrewMember)
			crewMembers.DELETE("/:id", crewHandler.DeleteCrewMember)
			crewMembers.GET("/:id/roster", rosterHandler.GetMemberRoster)
			crewMembers.POST("/:id/leaves", rosterHandler.AddLeave)
			crewMembers.POST("/:id/shifts", rosterHandler.AddShift)
		}

		// Team catalog, team roster and conflict routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.POST("/:id/roster", rosterHandler.AssignTeamShift)
			teams.GET("/:id/roster", rosterHandler.GetTeamRoster)
			teams.GET("/:id/conflicts", teamHandler.GetConflicts)
			teams.GET("/:id/days/:date", teamHandler.GetDayComposition)
			teams.PUT("/:id/days/:date", teamHandler.UpdateTeamForDay)
		}

		// Direct store routes
		v1.DELETE("/team-rosters/:id", rosterHandler.RemoveTeamShift)
		v1.PUT("/team-rosters/:id/status", rosterHandler.SetTeamRosterStatus)
		v1.DELETE("/roster-entries/:id", rosterHandler.RemoveRosterEntry)
		v1.DELETE("/leaves/:id", rosterHandler.RemoveLeave)
	}

	return router
}
