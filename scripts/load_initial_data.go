package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"fleetops-backend/internal/config"
	"fleetops-backend/internal/database"
	"fleetops-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CrewDocumentData struct {
	Type       string `yaml:"type"`
	Number     string `yaml:"number"`
	ExpiryDate string `yaml:"expiry_date,omitempty"`
}

type CrewMemberData struct {
	StaffID          string             `yaml:"staff_id"`
	FullName         string             `yaml:"full_name"`
	Role             string             `yaml:"role"`
	Status           string             `yaml:"status,omitempty"`
	Phone            string             `yaml:"phone,omitempty"`
	Email            string             `yaml:"email,omitempty"`
	JoinedDate       string             `yaml:"joined_date,omitempty"`
	ArmoredCertified bool               `yaml:"armored_certified,omitempty"`
	Skills           []string           `yaml:"skills,omitempty"`
	Documents        []CrewDocumentData `yaml:"documents,omitempty"`
}

type TeamData struct {
	Name           string   `yaml:"name"`
	LeaderStaffID  string   `yaml:"leader_staff_id,omitempty"`
	DriverStaffID  string   `yaml:"driver_staff_id,omitempty"`
	GuardStaffIDs  []string `yaml:"guard_staff_ids,omitempty"`
	DefaultTruckID string   `yaml:"default_truck_id,omitempty"`
	Status         string   `yaml:"status,omitempty"`
}

// File structures
type CrewMembersFile struct {
	CrewMembers []CrewMemberData `yaml:"crew_members"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseType, cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dbType, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dbType, dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	members, err := loadCrewMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load crew members: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	// Create crew members first; teams reference them by staff id
	memberMap := make(map[string]*models.CrewMember)
	memberCreated := 0
	for _, memberData := range members {
		member, created, err := createCrewMember(db, memberData)
		if err != nil {
			return fmt.Errorf("failed to create crew member %s: %w", memberData.StaffID, err)
		}
		memberMap[memberData.StaffID] = member
		if created {
			memberCreated++
		}
	}
	log.Printf("📋 Crew members: %d created, %d total", memberCreated, len(members))

	teamCreated := 0
	for _, teamData := range teams {
		_, created, err := createTeam(db, teamData, memberMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	return nil
}

func loadCrewMembers(dataDir string) ([]CrewMemberData, error) {
	var allMembers []CrewMemberData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "crew_members") {
			var file CrewMembersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMembers = append(allMembers, file.CrewMembers...)
		}
		return nil
	})

	return allMembers, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func createCrewMember(db *gorm.DB, memberData CrewMemberData) (*models.CrewMember, bool, error) {
	var member models.CrewMember
	if err := db.Where("staff_id = ?", memberData.StaffID).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.CrewStatusActive
			if memberData.Status != "" {
				status = models.CrewStatus(memberData.Status)
			}

			member = models.CrewMember{
				StaffID:          memberData.StaffID,
				FullName:         memberData.FullName,
				Role:             models.CrewRole(memberData.Role),
				Status:           status,
				Phone:            memberData.Phone,
				Email:            memberData.Email,
				JoinedDate:       memberData.JoinedDate,
				ArmoredCertified: memberData.ArmoredCertified,
			}
			if len(memberData.Skills) > 0 {
				skillsJSON, _ := json.Marshal(memberData.Skills)
				member.Skills = skillsJSON
			}
			for _, doc := range memberData.Documents {
				member.Documents = append(member.Documents, models.CrewDocument{
					Type:       doc.Type,
					Number:     doc.Number,
					ExpiryDate: doc.ExpiryDate,
				})
			}

			if err := db.Create(&member).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create crew member: %w", err)
			}
			return &member, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query crew member: %w", err)
		}
	}

	return &member, false, nil // created = false (existing)
}

func createTeam(db *gorm.DB, teamData TeamData, memberMap map[string]*models.CrewMember) (*models.Team, bool, error) {
	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.TeamStatusActive
			if teamData.Status != "" {
				status = models.TeamStatus(teamData.Status)
			}

			team = models.Team{
				Name:           teamData.Name,
				DefaultTruckID: teamData.DefaultTruckID,
				Status:         status,
			}
			if teamData.LeaderStaffID != "" {
				if leader := memberMap[teamData.LeaderStaffID]; leader != nil {
					team.LeaderID = &leader.ID
				} else {
					log.Printf("⚠️  Warning: leader %s not found for team %s", teamData.LeaderStaffID, teamData.Name)
				}
			}
			if teamData.DriverStaffID != "" {
				if driver := memberMap[teamData.DriverStaffID]; driver != nil {
					team.DriverID = &driver.ID
				} else {
					log.Printf("⚠️  Warning: driver %s not found for team %s", teamData.DriverStaffID, teamData.Name)
				}
			}
			for _, staffID := range teamData.GuardStaffIDs {
				if guard := memberMap[staffID]; guard != nil {
					team.Guards = append(team.Guards, *guard)
				} else {
					log.Printf("⚠️  Warning: guard %s not found for team %s", staffID, teamData.Name)
				}
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	return &team, false, nil // created = false (existing)
}
