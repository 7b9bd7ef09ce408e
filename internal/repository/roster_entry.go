package repository

import (
	"fleetops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterEntryRepository is the store for individual-level schedule records,
// keyed by (member, date)
type RosterEntryRepository struct {
	db *gorm.DB
}

// NewRosterEntryRepository creates a new roster entry repository
func NewRosterEntryRepository(db *gorm.DB) *RosterEntryRepository {
	return &RosterEntryRepository{db: db}
}

// Create inserts a new roster entry. Callers are expected to have checked
// the (member, date) key first; the unique index rejects races.
func (r *RosterEntryRepository) Create(entry *models.RosterEntry) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a roster entry by ID
func (r *RosterEntryRepository) GetByID(id uuid.UUID) (*models.RosterEntry, error) {
	var entry models.RosterEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ExistsForMemberAndDate reports whether the member already holds any entry
// on the given date
func (r *RosterEntryRepository) ExistsForMemberAndDate(memberID uuid.UUID, date string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RosterEntry{}).
		Where("member_id = ? AND date = ?", memberID, date).
		Count(&count).Error
	return count > 0, err
}

// FindByMemberAndDate retrieves the member's entry for one date
func (r *RosterEntryRepository) FindByMemberAndDate(memberID uuid.UUID, date string) (*models.RosterEntry, error) {
	var entry models.RosterEntry
	err := r.db.First(&entry, "member_id = ? AND date = ?", memberID, date).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindByMemberDateRange retrieves all of the member's entries with from <= date <= to
func (r *RosterEntryRepository) FindByMemberDateRange(memberID uuid.UUID, from, to string) ([]models.RosterEntry, error) {
	var entries []models.RosterEntry
	err := r.db.Where("member_id = ? AND date >= ? AND date <= ?", memberID, from, to).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// FindLeaves retrieves leave entries for any of the given members in the
// date range, used by conflict detection
func (r *RosterEntryRepository) FindLeaves(memberIDs []uuid.UUID, from, to string) ([]models.RosterEntry, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}
	var entries []models.RosterEntry
	err := r.db.Where("member_id IN ? AND date >= ? AND date <= ? AND source = ?",
		memberIDs, from, to, models.EntrySourceLeave).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// Delete removes a roster entry by id. Deleting a non-existent id is a
// no-op, not an error.
func (r *RosterEntryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RosterEntry{}, "id = ?", id).Error
}

// DeleteTeamSourced removes the entries a team assignment expanded to for
// one date. Matching is by the exact (team id, date, source=team) key, not
// by (member, date), so differently-sourced entries sharing the date are
// never touched.
func (r *RosterEntryRepository) DeleteTeamSourced(teamID uuid.UUID, date string) error {
	return r.db.Delete(&models.RosterEntry{},
		"team_id = ? AND date = ? AND source = ?", teamID, date, models.EntrySourceTeam).Error
}

// CountForMemberAndDate returns the number of entries the member holds on
// the date. Under the uniqueness invariant this is always 0 or 1.
func (r *RosterEntryRepository) CountForMemberAndDate(memberID uuid.UUID, date string) (int64, error) {
	var count int64
	err := r.db.Model(&models.RosterEntry{}).
		Where("member_id = ? AND date = ?", memberID, date).
		Count(&count).Error
	return count, err
}
