package dancer

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dancedir/internal/pkg/apperr"
)

const (
	maxNameLen      = 20
	maxInstagramLen = 50
)

// UpsertRow is one raw record from a bulk upload.
type UpsertRow struct {
	Name      string
	Instagram string
	Genre     string
}

// RowError records a single failed row without aborting the batch.
type RowError struct {
	Row       int    `json:"row"`
	Name      string `json:"name"`
	Instagram string `json:"instagram"`
	Error     string `json:"error"`
}

// BulkUpsert merges a batch of raw records into the dancer table, keyed by
// instagram handle. The first occurrence of a handle in the batch decides
// which dancer later same-handle rows merge into; rows without a handle
// always create a new dancer. The whole batch commits atomically.
func (r *Repository) BulkUpsert(ctx context.Context, rows []UpsertRow) (int, []RowError, error) {
	successCount := 0
	rowErrors := []RowError{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Handles already resolved within this batch. Later rows with the
		// same handle merge without re-querying storage.
		processed := map[string]*Dancer{}

		for i, row := range rows {
			rowNum := i + 1
			name := strings.TrimSpace(row.Name)
			instagram := strings.TrimSpace(row.Instagram)
			genre := strings.TrimSpace(row.Genre)

			fail := func(msg string) {
				rowErrors = append(rowErrors, RowError{
					Row: rowNum, Name: name, Instagram: instagram, Error: msg,
				})
			}

			if name == "" {
				fail("Name is required and cannot be empty")
				continue
			}
			if len([]rune(name)) > maxNameLen {
				fail("Name exceeds maximum length (20 characters)")
				continue
			}
			if instagram != "" && len([]rune(instagram)) > maxInstagramLen {
				fail("Instagram ID exceeds maximum length (50 characters)")
				continue
			}

			// Genre is only consulted when a new dancer is created, so an
			// unknown genre on a merge row does not fail the row.
			parseRowGenre := func() (*Genre, bool) {
				if genre == "" {
					return nil, true
				}
				g, ok := ParseGenre(genre)
				if !ok {
					fail("invalid genre: " + genre)
					return nil, false
				}
				return &g, true
			}

			if instagram == "" {
				genrePtr, ok := parseRowGenre()
				if !ok {
					continue
				}
				d := Dancer{
					ID:       uuid.NewString(),
					MainName: name,
					Names:    []string{name},
					Genre:    genrePtr,
				}
				if err := tx.Create(&d).Error; err != nil {
					fail(err.Error())
					continue
				}
				successCount++
				continue
			}

			if existing, ok := processed[instagram]; ok {
				if !containsName(existing.Names, name) {
					existing.Names = append(existing.Names, name)
					if err := tx.Model(existing).Update("names", existing.Names).Error; err != nil {
						fail(err.Error())
						continue
					}
				}
				successCount++
				continue
			}

			var existing Dancer
			err := tx.Where("instagram = ?", instagram).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Legacy compatibility: fall back to an exact display-name
				// match when the handle is unknown.
				err = tx.Where("main_name = ?", name).First(&existing).Error
			}

			switch {
			case err == nil:
				updates := map[string]any{}
				if existing.Instagram == nil {
					handle := instagram
					existing.Instagram = &handle
					updates["instagram"] = handle
				}
				if !containsName(existing.Names, name) {
					existing.Names = append(existing.Names, name)
					updates["names"] = existing.Names
				}
				if len(updates) > 0 {
					if err := tx.Model(&existing).Updates(updates).Error; err != nil {
						fail(err.Error())
						continue
					}
				}
				processed[instagram] = &existing
				successCount++

			case errors.Is(err, gorm.ErrRecordNotFound):
				genrePtr, ok := parseRowGenre()
				if !ok {
					continue
				}
				handle := instagram
				d := Dancer{
					ID:        uuid.NewString(),
					MainName:  name,
					Names:     []string{name},
					Instagram: &handle,
					Genre:     genrePtr,
				}
				if err := tx.Create(&d).Error; err != nil {
					fail(err.Error())
					continue
				}
				processed[instagram] = &d
				successCount++

			default:
				fail(err.Error())
			}
		}
		return nil
	})
	if err != nil {
		return 0, nil, apperr.Wrap("dancer bulk upload", err)
	}
	return successCount, rowErrors, nil
}
