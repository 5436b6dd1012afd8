package checks

import (
	"fmt"
	"strings"
	"sync"

	"room-finder/core/database"
	"room-finder/feature/rooms/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SchemaReport strictly types the result of a schema integrity check.
type SchemaReport struct {
	Dialect        string   `json:"dialect"`
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Errors         []string `json:"errors"`
}

// CheckSchema verifies the rooms table against models.RoomRow.
// Columns with an explicit gorm type are also compared by type.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	table := models.RoomRow{}.TableName()
	report := &SchemaReport{
		Dialect:        db.Dialector.Name(),
		Table:          table,
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Errors:         []string{},
	}

	s, err := schema.Parse(&models.RoomRow{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse room row schema: %w", err)
	}

	actual, err := database.GetTableColumns(db, table)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
		report.Matched = false
		return report, nil
	}

	byName := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		byName[col.Field] = col
	}

	for _, field := range s.Fields {
		if field.DBName == "" {
			continue
		}

		col, ok := byName[field.DBName]
		if !ok {
			report.MissingColumns = append(report.MissingColumns, field.DBName)
			report.Matched = false
			continue
		}

		expType := strings.ToLower(field.TagSettings["TYPE"])
		if expType != "" && !strings.Contains(col.Type, expType) {
			report.TypeMismatches = append(report.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", field.DBName, expType, col.Type))
			report.Matched = false
		}
	}

	return report, nil
}

// FixSchema creates the rooms table or migrates it to match models.RoomRow.
func FixSchema(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(&models.RoomRow{}); err != nil {
		logger.Error("Failed to migrate rooms table", zap.Error(err))
		return fmt.Errorf("failed to migrate rooms table: %w", err)
	}
	logger.Info("Migrated rooms table")
	return nil
}
