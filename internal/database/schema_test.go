package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const migrationsDir = "../../migrations"

func readMigration(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(migrationsDir, name))
	if err != nil {
		t.Fatalf("Failed to read migration %s: %v", name, err)
	}
	return string(content)
}

func TestMigrationFilesHaveUpAndDown(t *testing.T) {
	files, err := os.ReadDir(migrationsDir)
	if err != nil {
		t.Fatalf("Failed to read migrations directory: %v", err)
	}

	sqlFileCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		sqlFileCount++
		contentStr := readMigration(t, file.Name())

		for _, directive := range []string{
			"-- +goose Up",
			"-- +goose Down",
			"-- +goose StatementBegin",
			"-- +goose StatementEnd",
		} {
			if !strings.Contains(contentStr, directive) {
				t.Errorf("Migration file %s missing '%s' directive", file.Name(), directive)
			}
		}
	}

	if sqlFileCount == 0 {
		t.Error("No SQL migration files found")
	}
}

func TestMigrationFilesCreateExpectedTables(t *testing.T) {
	expectedTables := map[string]string{
		"categories": "00001_create_categories_table.sql",
		"banners":    "00002_create_banners_table.sql",
	}

	for tableName, migrationFile := range expectedTables {
		contentStr := readMigration(t, migrationFile)

		if !strings.Contains(contentStr, "CREATE TABLE IF NOT EXISTS "+tableName) {
			t.Errorf("Migration file %s does not create table %s", migrationFile, tableName)
		}
		if !strings.Contains(contentStr, "DROP TABLE IF EXISTS "+tableName) {
			t.Errorf("Migration file %s does not drop table %s in down section", migrationFile, tableName)
		}
	}
}

func TestCategoriesTableHasUniqueName(t *testing.T) {
	contentStr := readMigration(t, "00001_create_categories_table.sql")

	for _, column := range []string{
		"id UUID PRIMARY KEY",
		"name VARCHAR(100)",
		"image TEXT",
		"banner TEXT",
		"created_at TIMESTAMPTZ",
		"updated_at TIMESTAMPTZ",
	} {
		if !strings.Contains(contentStr, column) {
			t.Errorf("Categories table missing column definition: %s", column)
		}
	}

	if !strings.Contains(contentStr, "UNIQUE (name)") {
		t.Error("Categories table missing unique constraint on name")
	}
}

func TestBannersTableHasLengthLimits(t *testing.T) {
	contentStr := readMigration(t, "00002_create_banners_table.sql")

	for _, column := range []string{
		"title VARCHAR(200)",
		"description VARCHAR(500)",
		"is_active BOOLEAN",
	} {
		if !strings.Contains(contentStr, column) {
			t.Errorf("Banners table missing column definition: %s", column)
		}
	}
}
