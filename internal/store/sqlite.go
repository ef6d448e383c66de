package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nag3003/agrisaarthii/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS farmers (
		farmer_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT,
		district TEXT,
		state TEXT,
		raw_location TEXT,
		lat REAL,
		lon REAL,
		crops_json TEXT NOT NULL,
		land_size REAL NOT NULL DEFAULT 0,
		soil_type TEXT,
		water_access TEXT,
		risk_tolerance TEXT,
		language TEXT,
		history_json TEXT,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS advice_log (
		advice_id TEXT PRIMARY KEY,
		farmer_id TEXT NOT NULL,
		advice_text TEXT NOT NULL,
		confidence REAL NOT NULL,
		urgency TEXT NOT NULL,
		reasoning TEXT,
		intent TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_advice_farmer ON advice_log(farmer_id, created_at);

	CREATE TABLE IF NOT EXISTS feedback (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		farmer_id TEXT NOT NULL,
		advice_id TEXT NOT NULL,
		action_taken INTEGER NOT NULL,
		outcome TEXT,
		recorded_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_feedback_farmer ON feedback(farmer_id, recorded_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetProfile retrieves a farmer profile by ID.
func (s *SQLiteStore) GetProfile(ctx context.Context, farmerID string) (*domain.FarmerProfile, error) {
	query := `
		SELECT farmer_id, name, phone, district, state, raw_location, lat, lon,
		       crops_json, land_size, soil_type, water_access, risk_tolerance,
		       language, history_json, created_at, updated_at
		FROM farmers WHERE farmer_id = ?`

	row := s.db.QueryRowContext(ctx, query, farmerID)

	var p domain.FarmerProfile
	var phone, district, state, rawLoc, soil, water, risk, lang, historyJSON sql.NullString
	var cropsJSON string
	var lat, lon sql.NullFloat64
	var createdAt, updatedAt int64

	err := row.Scan(
		&p.ID, &p.Name, &phone, &district, &state, &rawLoc, &lat, &lon,
		&cropsJSON, &p.LandSizeAcres, &soil, &water, &risk, &lang, &historyJSON,
		&createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan farmer row: %w", err)
	}

	p.Phone = phone.String
	p.Location = domain.Location{
		District: district.String,
		State:    state.String,
		Raw:      rawLoc.String,
		Lat:      lat.Float64,
		Lon:      lon.Float64,
	}
	p.SoilType = soil.String
	p.WaterAccess = water.String
	p.RiskTolerance = domain.RiskTolerance(risk.String)
	p.Language = lang.String
	p.CreatedAt = time.Unix(createdAt, 0)
	p.UpdatedAt = time.Unix(updatedAt, 0)

	if err := json.Unmarshal([]byte(cropsJSON), &p.PrimaryCrops); err != nil {
		return nil, fmt.Errorf("decode crops for %s: %w", farmerID, err)
	}
	if historyJSON.Valid && historyJSON.String != "" {
		if err := json.Unmarshal([]byte(historyJSON.String), &p.CropHistory); err != nil {
			return nil, fmt.Errorf("decode crop history for %s: %w", farmerID, err)
		}
	}

	return &p, nil
}

// UpsertProfile creates or updates a farmer profile.
func (s *SQLiteStore) UpsertProfile(ctx context.Context, profile *domain.FarmerProfile) error {
	cropsJSON, err := json.Marshal(profile.PrimaryCrops)
	if err != nil {
		return fmt.Errorf("encode crops: %w", err)
	}
	historyJSON, err := json.Marshal(profile.CropHistory)
	if err != nil {
		return fmt.Errorf("encode crop history: %w", err)
	}

	query := `
	INSERT INTO farmers (farmer_id, name, phone, district, state, raw_location, lat, lon,
		crops_json, land_size, soil_type, water_access, risk_tolerance, language,
		history_json, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(farmer_id) DO UPDATE SET
		name = excluded.name,
		phone = excluded.phone,
		district = excluded.district,
		state = excluded.state,
		raw_location = excluded.raw_location,
		lat = excluded.lat,
		lon = excluded.lon,
		crops_json = excluded.crops_json,
		land_size = excluded.land_size,
		soil_type = excluded.soil_type,
		water_access = excluded.water_access,
		risk_tolerance = excluded.risk_tolerance,
		language = excluded.language,
		history_json = excluded.history_json,
		updated_at = excluded.updated_at`

	_, err = s.db.ExecContext(ctx, query,
		profile.ID, profile.Name, profile.Phone,
		profile.Location.District, profile.Location.State, profile.Location.Raw,
		profile.Location.Lat, profile.Location.Lon,
		string(cropsJSON), profile.LandSizeAcres, profile.SoilType,
		profile.WaterAccess, string(profile.RiskTolerance), profile.Language,
		string(historyJSON),
		profile.CreatedAt.Unix(), profile.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert farmer: %w", err)
	}
	return nil
}

// SaveAdvice appends an issued advisory to the advice log.
func (s *SQLiteStore) SaveAdvice(ctx context.Context, farmerID string, advice *domain.Advice) error {
	query := `
	INSERT INTO advice_log (advice_id, farmer_id, advice_text, confidence, urgency, reasoning, intent, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		advice.ID, farmerID, advice.Text, advice.Confidence,
		string(advice.Urgency), advice.Reasoning, string(advice.Intent),
		advice.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert advice: %w", err)
	}
	return nil
}

// RecentAdvice returns the newest advisories for a farmer.
func (s *SQLiteStore) RecentAdvice(ctx context.Context, farmerID string, limit int) ([]*domain.Advice, error) {
	query := `
		SELECT advice_id, advice_text, confidence, urgency, reasoning, intent, created_at
		FROM advice_log WHERE farmer_id = ?
		ORDER BY created_at DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, farmerID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent advice: %w", err)
	}
	defer rows.Close()

	var out []*domain.Advice
	for rows.Next() {
		var a domain.Advice
		var urgency, intent string
		var createdAt int64
		if err := rows.Scan(&a.ID, &a.Text, &a.Confidence, &urgency, &a.Reasoning, &intent, &createdAt); err != nil {
			return nil, fmt.Errorf("scan advice row: %w", err)
		}
		a.Urgency = domain.Urgency(urgency)
		a.Intent = domain.Intent(intent)
		a.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, &a)
	}
	return out, rows.Err()
}

// SaveFeedback stores a farmer-reported outcome record.
func (s *SQLiteStore) SaveFeedback(ctx context.Context, record *domain.FeedbackRecord) error {
	query := `
	INSERT INTO feedback (farmer_id, advice_id, action_taken, outcome, recorded_at)
	VALUES (?, ?, ?, ?, ?)`

	actionTaken := 0
	if record.ActionTaken {
		actionTaken = 1
	}

	_, err := s.db.ExecContext(ctx, query,
		record.FarmerID, record.AdviceID, actionTaken, record.Outcome, record.RecordedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// LearningStats counts advisories and followed outcomes for a farmer.
func (s *SQLiteStore) LearningStats(ctx context.Context, farmerID string) (domain.LearningStats, error) {
	var stats domain.LearningStats

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM advice_log WHERE farmer_id = ?`, farmerID,
	).Scan(&stats.TotalAdvisories)
	if err != nil {
		return stats, fmt.Errorf("count advisories: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM feedback WHERE farmer_id = ? AND action_taken = 1`, farmerID,
	).Scan(&stats.ActionsFollowed)
	if err != nil {
		return stats, fmt.Errorf("count followed outcomes: %w", err)
	}

	return stats, nil
}

// PurgeOlderThan deletes advice-log and feedback rows created before the cutoff.
func (s *SQLiteStore) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM advice_log WHERE created_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, 0, fmt.Errorf("purge advice log: %w", err)
	}
	adviceDeleted, _ := res.RowsAffected()

	res, err = s.db.ExecContext(ctx, `DELETE FROM feedback WHERE recorded_at < ?`, cutoff.Unix())
	if err != nil {
		return adviceDeleted, 0, fmt.Errorf("purge feedback: %w", err)
	}
	feedbackDeleted, _ := res.RowsAffected()

	return adviceDeleted, feedbackDeleted, nil
}
