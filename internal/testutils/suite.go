package testutils

import (
	"path/filepath"
	"testing"

	"fleetops-backend/internal/config"
	"fleetops-backend/internal/database"

	"gorm.io/gorm"
)

// BaseTestSuite bundles the resources shared by repository and service
// tests: a migrated database and a test configuration. The default setup
// opens an embedded SQLite database so plain `go test ./...` needs no
// external services; the integration build tag swaps in a real Postgres
// container (see docker.go).
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite opens a fresh migrated database for one suite.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	t.Helper()
	return &BaseTestSuite{
		DB:     NewTestDB(t),
		Config: NewTestConfig(),
	}
}

// NewTestDB opens a file-backed SQLite database under the test's temp
// directory and runs migrations. The file is removed by the testing
// package when the test finishes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "fleetops_test.db")
	db, err := database.Initialize("sqlite", dsn, &database.Options{AutoMigrate: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

// NewTestConfig returns a configuration suitable for tests.
func NewTestConfig() *config.Config {
	return &config.Config{
		Environment:  "test",
		Port:         "7010",
		LogLevel:     "debug",
		DatabaseType: "sqlite",
		DatabaseName: "fleetops_test",
	}
}

// SetupTest and TearDownTest reset table contents between tests so suites
// can share one database handle.
func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite is per suite, not per process. Only the rows are
// cleaned; any shared container persists across suites for speed.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties known tables if they exist. Safe even if the schema
// changes. Child tables are listed before their parents so row deletion
// works without disabling constraints on SQLite.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := []string{
		"roster_entries",
		"team_rosters",
		"team_day_overrides",
		"team_guards",
		"crew_documents",
		"crew_members",
		"teams",
	}
	m := s.DB.Migrator()
	if s.DB.Dialector.Name() == "postgres" {
		s.DB.Exec(`SET session_replication_role = replica;`)
		for _, tbl := range tables {
			if m.HasTable(tbl) {
				s.DB.Exec(`TRUNCATE TABLE "` + tbl + `" RESTART IDENTITY CASCADE;`)
			}
		}
		s.DB.Exec(`SET session_replication_role = DEFAULT;`)
		return
	}
	for _, tbl := range tables {
		if m.HasTable(tbl) {
			s.DB.Exec(`DELETE FROM "` + tbl + `";`)
		}
	}
}
