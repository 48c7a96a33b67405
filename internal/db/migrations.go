package db

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"

	embeddedmigrations "github.com/terraincognita07/myfit/migrations"
	"gorm.io/gorm"
)

var migrationFilePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)

type migration struct {
	Version string
	Order   int
	Name    string
	SQL     string
}

// applyEmbeddedMigrations runs every pending migration in version order and
// returns the file names it applied.
func applyEmbeddedMigrations(database *gorm.DB) ([]string, error) {
	const createTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(createTableSQL).Error; err != nil {
		return nil, fmt.Errorf("create schema_migrations table: %w", err)
	}

	pending, err := loadEmbeddedMigrations(embeddedmigrations.Files)
	if err != nil {
		return nil, err
	}

	var appliedVersions []string
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&appliedVersions).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}
	done := make(map[string]bool, len(appliedVersions))
	for _, version := range appliedVersions {
		done[version] = true
	}

	applied := make([]string, 0)
	for _, next := range pending {
		if done[next.Version] {
			continue
		}
		if err := runMigration(database, next); err != nil {
			return applied, err
		}
		applied = append(applied, next.Name)
	}
	return applied, nil
}

func loadEmbeddedMigrations(files fs.FS) ([]migration, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	result := make([]migration, 0, len(entries))
	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := migrationFilePattern.FindStringSubmatch(entry.Name())
		if len(matches) != 2 {
			continue
		}

		version := matches[1]
		order, err := strconv.Atoi(version)
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", entry.Name(), err)
		}
		if existing, exists := seen[version]; exists {
			return nil, fmt.Errorf("duplicate migration version %s in %s and %s", version, existing, entry.Name())
		}
		seen[version] = entry.Name()

		raw, err := fs.ReadFile(files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		result = append(result, migration{Version: version, Order: order, Name: entry.Name(), SQL: string(raw)})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	return result, nil
}

func runMigration(database *gorm.DB, next migration) error {
	statements := splitSQLStatements(next.SQL)
	if len(statements) == 0 {
		return fmt.Errorf("migration %s: %w", next.Name, errors.New("no SQL statements"))
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range statements {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute migration %s statement %q: %w", next.Name, statement, err)
			}
		}
		if err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`, next.Version, next.Name).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", next.Name, err)
		}
		return nil
	})
}

func splitSQLStatements(sqlText string) []string {
	statements := make([]string, 0)
	for _, part := range strings.Split(sqlText, ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
