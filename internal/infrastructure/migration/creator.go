package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"
)

const migrationUpTemplate = `-- Migration: {{.Name}}
-- Created: {{.Timestamp}}

-- Write your UP migration SQL here

`

const migrationDownTemplate = `-- Migration: {{.Name}} (Rollback)
-- Created: {{.Timestamp}}

-- Write your DOWN migration SQL here

`

// MigrationFile represents a migration file pair
type MigrationFile struct {
	Version   string
	Name      string
	Timestamp string
	UpPath    string
	DownPath  string
}

// CreateMigration creates a new migration file pair
func CreateMigration(migrationsDir, name string) (*MigrationFile, error) {
	if err := os.MkdirAll(migrationsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	// Version timestamps sort lexically (YYYYMMDDHHMMSS)
	now := time.Now()
	version := now.Format("20060102150405")

	baseName := fmt.Sprintf("%s_%s", version, sanitizeName(name))
	upPath := filepath.Join(migrationsDir, baseName+".up.sql")
	downPath := filepath.Join(migrationsDir, baseName+".down.sql")

	mf := &MigrationFile{
		Version:   version,
		Name:      name,
		Timestamp: now.Format(time.RFC3339),
		UpPath:    upPath,
		DownPath:  downPath,
	}

	if err := createMigrationFile(upPath, migrationUpTemplate, mf); err != nil {
		return nil, fmt.Errorf("failed to create up migration: %w", err)
	}

	if err := createMigrationFile(downPath, migrationDownTemplate, mf); err != nil {
		_ = os.Remove(upPath)
		return nil, fmt.Errorf("failed to create down migration: %w", err)
	}

	return mf, nil
}

func createMigrationFile(path, tmplContent string, data *MigrationFile) error {
	tmpl, err := template.New("migration").Parse(tmplContent)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return nil
}

// sanitizeName converts a migration name to a safe file name format
func sanitizeName(name string) string {
	result := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
			result = append(result, c)
		case c >= 'A' && c <= 'Z':
			result = append(result, c+'a'-'A')
		case c >= '0' && c <= '9':
			result = append(result, c)
		case c == ' ' || c == '-' || c == '_':
			if len(result) > 0 && result[len(result)-1] != '_' {
				result = append(result, '_')
			}
		}
	}
	if len(result) > 0 && result[len(result)-1] == '_' {
		result = result[:len(result)-1]
	}
	return string(result)
}
