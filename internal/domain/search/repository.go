package search

import (
	"context"

	"gorm.io/gorm"
)

// Result is one lightweight hit, tagged with its entity type.
type Result struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Instagram *string `json:"instagram,omitempty"`
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Search runs a case-sensitive prefix match against studio names and dancer
// display names. Studios come first; no ranking, no pagination.
func (r *Repository) Search(ctx context.Context, keyword string) ([]Result, error) {
	pattern := keyword + "%"

	type row struct {
		ID        string
		Name      string
		Instagram *string
	}

	var studioRows []row
	err := r.db.WithContext(ctx).
		Table("studios").
		Select("studio_id AS id, name, instagram").
		Where("name LIKE ?", pattern).
		Scan(&studioRows).Error
	if err != nil {
		return nil, err
	}

	var dancerRows []row
	err = r.db.WithContext(ctx).
		Table("dancers").
		Select("dancer_id AS id, main_name AS name, instagram").
		Where("main_name LIKE ?", pattern).
		Scan(&dancerRows).Error
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(studioRows)+len(dancerRows))
	for _, s := range studioRows {
		results = append(results, Result{ID: s.ID, Name: s.Name, Type: "STUDIO", Instagram: s.Instagram})
	}
	for _, d := range dancerRows {
		results = append(results, Result{ID: d.ID, Name: d.Name, Type: "DANCER", Instagram: d.Instagram})
	}
	return results, nil
}
