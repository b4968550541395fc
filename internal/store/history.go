package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SearchHistory is one logged search: which session looked up which canonical
// city, and when. Rows are append-only; nothing updates or deletes them.
type SearchHistory struct {
	ID        uint      `gorm:"primaryKey"`
	SessionID string    `gorm:"column:session_id;index"`
	City      string    `gorm:"index"`
	Timestamp time.Time `gorm:"index"`
}

// TableName specifies the table name for SearchHistory.
func (SearchHistory) TableName() string {
	return "search_history"
}

// CityCount is one aggregated history row.
type CityCount struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

// AppendOutcome says whether a history append actually happened.
type AppendOutcome int

const (
	Appended AppendOutcome = iota
	AppendFailed
)

// AppendResult carries the append outcome and, when it failed, the cause.
// Appends are best effort: callers log the failure and carry on.
type AppendResult struct {
	Outcome AppendOutcome
	Err     error
}

// HistoryStore persists search history rows via GORM.
type HistoryStore struct {
	db *gorm.DB
}

// Open opens (creating if needed) the sqlite database at path and migrates
// the history schema.
func Open(path string) (*HistoryStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}
	return New(db)
}

// New wraps an existing GORM handle and migrates the history schema.
func New(db *gorm.DB) (*HistoryStore, error) {
	if err := db.AutoMigrate(&SearchHistory{}); err != nil {
		return nil, fmt.Errorf("migrate search_history: %w", err)
	}
	return &HistoryStore{db: db}, nil
}

// Append inserts one history record with a store-assigned UTC timestamp.
func (s *HistoryStore) Append(sessionID, city string) AppendResult {
	rec := SearchHistory{
		SessionID: sessionID,
		City:      city,
		Timestamp: time.Now().UTC(),
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return AppendResult{Outcome: AppendFailed, Err: err}
	}
	return AppendResult{Outcome: Appended}
}

// LatestCity returns the most recently searched city for a session, or ""
// when the session has no history.
func (s *HistoryStore) LatestCity(sessionID string) (string, error) {
	var rec SearchHistory
	err := s.db.Where("session_id = ?", sessionID).
		Order("timestamp DESC, id DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return rec.City, nil
}

// CountsBySession groups one session's records by city, most searched first.
func (s *HistoryStore) CountsBySession(sessionID string) ([]CityCount, error) {
	return s.counts(s.db.Where("session_id = ?", sessionID))
}

// CountsGlobal groups all records by city, most searched first.
func (s *HistoryStore) CountsGlobal() ([]CityCount, error) {
	return s.counts(s.db)
}

func (s *HistoryStore) counts(tx *gorm.DB) ([]CityCount, error) {
	var rows []CityCount
	err := tx.Model(&SearchHistory{}).
		Select("city, COUNT(id) AS count").
		Group("city").
		Order("count DESC, city ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
