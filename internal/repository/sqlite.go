package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	_ "github.com/mattn/go-sqlite3"

	"github.com/xiaot623/wallboard/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection so every request sees the same agents.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS agents (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			code TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			status TEXT NOT NULL,
			extension TEXT,
			skills TEXT,
			last_login DATETIME,
			login_time DATETIME,
			last_status_change DATETIME
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

const agentColumns = `code, name, status, extension, skills, last_login, login_time, last_status_change`

func (s *SQLiteStore) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+agentColumns+` FROM agents ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []domain.Agent
	for rows.Next() {
		agent, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, *agent)
	}
	return agents, rows.Err()
}

func (s *SQLiteStore) GetAgent(ctx context.Context, code string) (*domain.Agent, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+agentColumns+` FROM agents WHERE code = ?`, code)
	agent, err := scanAgent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *SQLiteStore) CountAgents(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM agents`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *SQLiteStore) SaveAgent(ctx context.Context, agent *domain.Agent) error {
	if agent == nil || agent.Code == "" {
		return fmt.Errorf("agent code is required")
	}

	var skills sql.NullString
	if len(agent.Skills) > 0 {
		encoded, err := sonic.MarshalString(agent.Skills)
		if err != nil {
			return fmt.Errorf("failed to encode skills: %w", err)
		}
		skills = sql.NullString{String: encoded, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO agents (`+agentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			name = excluded.name,
			status = excluded.status,
			extension = excluded.extension,
			skills = excluded.skills,
			last_login = excluded.last_login,
			login_time = excluded.login_time,
			last_status_change = excluded.last_status_change
	`, agent.Code, agent.Name, string(agent.Status), nullString(agent.Extension), skills,
		nullTime(agent.LastLogin), nullTime(agent.LoginTime), nullTime(agent.LastStatusChange))
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAgent(row rowScanner) (*domain.Agent, error) {
	var (
		agent            domain.Agent
		status           string
		extension        sql.NullString
		skills           sql.NullString
		lastLogin        sql.NullTime
		loginTime        sql.NullTime
		lastStatusChange sql.NullTime
	)
	if err := row.Scan(&agent.Code, &agent.Name, &status, &extension, &skills, &lastLogin, &loginTime, &lastStatusChange); err != nil {
		return nil, err
	}

	agent.Status = domain.AgentStatus(status)
	agent.Extension = extension.String
	if skills.Valid && skills.String != "" {
		if err := sonic.UnmarshalString(skills.String, &agent.Skills); err != nil {
			return nil, fmt.Errorf("failed to decode skills for %s: %w", agent.Code, err)
		}
	}
	agent.LastLogin = timePtr(lastLogin)
	agent.LoginTime = timePtr(loginTime)
	agent.LastStatusChange = timePtr(lastStatusChange)
	return &agent, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
