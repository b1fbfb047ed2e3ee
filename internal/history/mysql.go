package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"wpts/internal/config"
	"wpts/internal/domain"
)

// MySQLStore keeps run summaries in a MySQL table
type MySQLStore struct {
	config *config.Config
}

// NewMySQLStore creates a new MySQLStore
func NewMySQLStore(cfg *config.Config) *MySQLStore {
	return &MySQLStore{config: cfg}
}

// connect opens a connection using settings from the environment.
func (ms *MySQLStore) connect() (*sql.DB, error) {
	// Load .env file from project directory
	envPath := filepath.Join(ms.config.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	// Get database connection info from environment or use defaults
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_DATABASE")
	if dbName == "" {
		dbName = "wpts"
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", dbUser, dbPassword, dbHost, dbPort, dbName)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}

	return db, nil
}

// ensureTable creates the history table if it does not exist
func (ms *MySQLStore) ensureTable(db *sql.DB) error {
	table := ms.config.HistoryTable
	if !isValidTableName(table) {
		return fmt.Errorf("invalid history table name: %s", table)
	}

	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS `+"`%s`"+` (
		id INT AUTO_INCREMENT PRIMARY KEY,
		timestamp VARCHAR(64) NOT NULL,
		input_path VARCHAR(512) NOT NULL,
		output_path VARCHAR(512) NOT NULL,
		total_records INT NOT NULL,
		total_paths INT NOT NULL,
		total_cases INT NOT NULL,
		zero_case_records INT NOT NULL,
		duration_seconds DOUBLE NOT NULL
	)`, table)
	_, err := db.Exec(query)
	return err
}

// Record stores the summary of a finished run
func (ms *MySQLStore) Record(meta domain.RunMeta) error {
	db, err := ms.connect()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := ms.ensureTable(db); err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}

	query := fmt.Sprintf("INSERT INTO `%s` (timestamp, input_path, output_path, total_records, total_paths, total_cases, zero_case_records, duration_seconds) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", ms.config.HistoryTable)
	_, err = db.Exec(query,
		meta.Timestamp,
		meta.InputPath,
		meta.OutputPath,
		meta.TotalRecords,
		meta.TotalPaths,
		meta.TotalCases,
		meta.ZeroCaseRecords,
		meta.DurationSeconds,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// List returns the most recent run summaries, newest first
func (ms *MySQLStore) List(limit int) ([]domain.RunMeta, error) {
	db, err := ms.connect()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := ms.ensureTable(db); err != nil {
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}

	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}

	query := fmt.Sprintf("SELECT timestamp, input_path, output_path, total_records, total_paths, total_cases, zero_case_records, duration_seconds FROM `%s` ORDER BY id DESC LIMIT ?", ms.config.HistoryTable)
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query run history: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunMeta
	for rows.Next() {
		var meta domain.RunMeta
		if err := rows.Scan(
			&meta.Timestamp,
			&meta.InputPath,
			&meta.OutputPath,
			&meta.TotalRecords,
			&meta.TotalPaths,
			&meta.TotalCases,
			&meta.ZeroCaseRecords,
			&meta.DurationSeconds,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run history row: %w", err)
		}
		runs = append(runs, meta)
	}
	return runs, rows.Err()
}

// isValidTableName validates the table name (basic check)
func isValidTableName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return !strings.HasPrefix(name, "_")
}
