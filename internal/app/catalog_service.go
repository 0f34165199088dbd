package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/croft/internal/ports/primary"
	"github.com/example/croft/internal/ports/secondary"
)

// CatalogServiceImpl implements the CatalogService interface over the
// vaccine and disease lookup repositories.
type CatalogServiceImpl struct {
	vaccineRepo secondary.LookupRepository
	diseaseRepo secondary.LookupRepository
	log         *zap.Logger
}

// NewCatalogService creates a new CatalogService with injected dependencies.
func NewCatalogService(
	vaccineRepo secondary.LookupRepository,
	diseaseRepo secondary.LookupRepository,
	log *zap.Logger,
) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		vaccineRepo: vaccineRepo,
		diseaseRepo: diseaseRepo,
		log:         log,
	}
}

// AddVaccine registers a new vaccine name.
func (s *CatalogServiceImpl) AddVaccine(ctx context.Context, name string) (*primary.CatalogEntry, error) {
	entry, err := s.addEntry(ctx, s.vaccineRepo, name)
	if err != nil {
		return nil, err
	}
	s.log.Info("registered vaccine", zap.Int64("id", entry.ID), zap.String("name", name))
	return entry, nil
}

// ListVaccines retrieves all vaccines with the count of goats linked to each.
func (s *CatalogServiceImpl) ListVaccines(ctx context.Context) ([]*primary.CatalogEntry, error) {
	return s.listEntries(ctx, s.vaccineRepo)
}

// DeleteVaccine removes a vaccine by name; links to goats cascade away.
func (s *CatalogServiceImpl) DeleteVaccine(ctx context.Context, name string) error {
	if err := s.deleteEntry(ctx, s.vaccineRepo, name); err != nil {
		return err
	}
	s.log.Info("deleted vaccine", zap.String("name", name))
	return nil
}

// AddDisease registers a new disease name.
func (s *CatalogServiceImpl) AddDisease(ctx context.Context, name string) (*primary.CatalogEntry, error) {
	entry, err := s.addEntry(ctx, s.diseaseRepo, name)
	if err != nil {
		return nil, err
	}
	s.log.Info("registered disease", zap.Int64("id", entry.ID), zap.String("name", name))
	return entry, nil
}

// ListDiseases retrieves all diseases with the count of goats linked to each.
func (s *CatalogServiceImpl) ListDiseases(ctx context.Context) ([]*primary.CatalogEntry, error) {
	return s.listEntries(ctx, s.diseaseRepo)
}

// DeleteDisease removes a disease by name; links to goats cascade away.
func (s *CatalogServiceImpl) DeleteDisease(ctx context.Context, name string) error {
	if err := s.deleteEntry(ctx, s.diseaseRepo, name); err != nil {
		return err
	}
	s.log.Info("deleted disease", zap.String("name", name))
	return nil
}

func (s *CatalogServiceImpl) addEntry(ctx context.Context, repo secondary.LookupRepository, name string) (*primary.CatalogEntry, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	id, err := repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	record, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created entry: %w", err)
	}
	return &primary.CatalogEntry{
		ID:        record.ID,
		Name:      record.Name,
		CreatedAt: record.CreatedAt,
	}, nil
}

func (s *CatalogServiceImpl) listEntries(ctx context.Context, repo secondary.LookupRepository) ([]*primary.CatalogEntry, error) {
	records, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*primary.CatalogEntry, len(records))
	for i, r := range records {
		goats, err := repo.GoatsWith(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count goats for %s: %w", r.Name, err)
		}
		entries[i] = &primary.CatalogEntry{
			ID:        r.ID,
			Name:      r.Name,
			CreatedAt: r.CreatedAt,
			GoatCount: len(goats),
		}
	}
	return entries, nil
}

func (s *CatalogServiceImpl) deleteEntry(ctx context.Context, repo secondary.LookupRepository, name string) error {
	record, err := repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, record.ID)
}

// Ensure CatalogServiceImpl implements the interface.
var _ primary.CatalogService = (*CatalogServiceImpl)(nil)
