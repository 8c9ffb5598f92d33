package dancer

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Response, error) {
	d, err := s.repo.Create(ctx, CreateParams{
		Name:      req.Name,
		Instagram: req.Instagram,
		Genre:     req.Genre,
		UserID:    req.UserID,
	})
	if err != nil {
		return Response{}, err
	}
	return toResponse(d), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Response, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Response{}, err
	}
	return toResponse(d), nil
}

func (s *Service) GetByInstagram(ctx context.Context, instagram string) (Response, error) {
	d, err := s.repo.GetByInstagram(ctx, instagram)
	if err != nil {
		return Response{}, err
	}
	return toResponse(d), nil
}

func (s *Service) Edit(ctx context.Context, id string, req EditRequest) (Response, error) {
	d, err := s.repo.Edit(ctx, id, EditParams{
		Names:      req.Names,
		MainName:   req.MainName,
		Instagram:  req.Instagram,
		Genre:      req.Genre,
		IsVerified: req.IsVerified,
	})
	if err != nil {
		return Response{}, err
	}
	return toResponse(d), nil
}

func (s *Service) AddName(ctx context.Context, id string, name string) (Response, error) {
	d, err := s.repo.AddName(ctx, id, name)
	if err != nil {
		return Response{}, err
	}
	return toResponse(d), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// BulkUpload parses a CSV stream of name[,instagram[,genre]] rows and merges
// them through the repository upsert. A leading header row is skipped.
func (s *Service) BulkUpload(ctx context.Context, file io.Reader) (BulkUploadResponse, error) {
	rows, err := parseCSV(file)
	if err != nil {
		return BulkUploadResponse{}, err
	}

	successCount, rowErrors, err := s.repo.BulkUpsert(ctx, rows)
	if err != nil {
		return BulkUploadResponse{}, err
	}
	return BulkUploadResponse{
		SuccessCount: successCount,
		ErrorCount:   len(rowErrors),
		Errors:       rowErrors,
	}, nil
}

func parseCSV(file io.Reader) ([]UpsertRow, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.New("invalid CSV file: " + err.Error())
	}
	if len(records) > 0 && isHeaderRow(records[0]) {
		records = records[1:]
	}

	rows := make([]UpsertRow, 0, len(records))
	for _, rec := range records {
		var row UpsertRow
		if len(rec) > 0 {
			row.Name = rec[0]
		}
		if len(rec) > 1 {
			row.Instagram = rec[1]
		}
		if len(rec) > 2 {
			row.Genre = rec[2]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isHeaderRow(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "name")
}
