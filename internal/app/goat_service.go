// Package app contains the application services implementing the primary ports.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/croft/internal/core/goat"
	"github.com/example/croft/internal/ports/primary"
	"github.com/example/croft/internal/ports/secondary"
)

// GoatServiceImpl implements the GoatService interface.
type GoatServiceImpl struct {
	goatRepo    secondary.GoatRepository
	vaccineRepo secondary.LookupRepository
	diseaseRepo secondary.LookupRepository
	log         *zap.Logger
}

// NewGoatService creates a new GoatService with injected dependencies.
func NewGoatService(
	goatRepo secondary.GoatRepository,
	vaccineRepo secondary.LookupRepository,
	diseaseRepo secondary.LookupRepository,
	log *zap.Logger,
) *GoatServiceImpl {
	return &GoatServiceImpl{
		goatRepo:    goatRepo,
		vaccineRepo: vaccineRepo,
		diseaseRepo: diseaseRepo,
		log:         log,
	}
}

// CreateGoat registers a new goat with its vaccination and disease links.
func (s *GoatServiceImpl) CreateGoat(ctx context.Context, req primary.CreateGoatRequest) (*primary.Goat, error) {
	guard := goat.CanCreateGoat(goat.CreateGoatContext{
		Name:      req.Name,
		Breed:     req.Breed,
		Gender:    req.Gender,
		Offspring: req.Offspring,
		Cost:      req.Cost,
		Weight:    req.Weight,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	id, err := s.goatRepo.Create(ctx, recordFromRequest(0, req))
	if err != nil {
		return nil, fmt.Errorf("failed to create goat: %w", err)
	}

	s.log.Info("registered goat",
		zap.Int64("id", id),
		zap.String("name", req.Name),
		zap.String("breed", req.Breed),
		zap.Int("vaccinations", len(req.Vaccinations)),
	)

	created, err := s.goatRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created goat: %w", err)
	}

	return goatFromRecord(created), nil
}

// GetGoat retrieves a goat by ID.
func (s *GoatServiceImpl) GetGoat(ctx context.Context, id int64) (*primary.Goat, error) {
	record, err := s.goatRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return goatFromRecord(record), nil
}

// ListGoats retrieves all goats.
func (s *GoatServiceImpl) ListGoats(ctx context.Context) ([]*primary.Goat, error) {
	records, err := s.goatRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goats: %w", err)
	}

	goats := make([]*primary.Goat, len(records))
	for i, r := range records {
		goats[i] = goatFromRecord(r)
	}
	return goats, nil
}

// UpdateGoat rewrites a goat's fields and association links.
func (s *GoatServiceImpl) UpdateGoat(ctx context.Context, req primary.UpdateGoatRequest) (*primary.Goat, error) {
	guard := goat.CanCreateGoat(goat.CreateGoatContext{
		Name:      req.Name,
		Breed:     req.Breed,
		Gender:    req.Gender,
		Offspring: req.Offspring,
		Cost:      req.Cost,
		Weight:    req.Weight,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	if err := s.goatRepo.Update(ctx, recordFromRequest(req.ID, req.CreateGoatRequest)); err != nil {
		return nil, err
	}

	s.log.Info("updated goat", zap.Int64("id", req.ID))

	updated, err := s.goatRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated goat: %w", err)
	}
	return goatFromRecord(updated), nil
}

// DeleteGoat removes a goat; its association rows cascade away.
func (s *GoatServiceImpl) DeleteGoat(ctx context.Context, id int64) error {
	if err := s.goatRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted goat", zap.Int64("id", id))
	return nil
}

// Vaccinate links the named vaccine to a goat, registering the vaccine
// first if it is new.
func (s *GoatServiceImpl) Vaccinate(ctx context.Context, goatID int64, vaccineName string) error {
	vaccineID, err := s.getOrCreate(ctx, s.vaccineRepo, vaccineName)
	if err != nil {
		return err
	}
	if err := s.goatRepo.AddVaccination(ctx, goatID, vaccineID); err != nil {
		return err
	}
	s.log.Info("vaccinated goat", zap.Int64("goat_id", goatID), zap.String("vaccine", vaccineName))
	return nil
}

// Unvaccinate unlinks the named vaccine from a goat.
func (s *GoatServiceImpl) Unvaccinate(ctx context.Context, goatID int64, vaccineName string) error {
	record, err := s.vaccineRepo.GetByName(ctx, vaccineName)
	if err != nil {
		return err
	}
	return s.goatRepo.RemoveVaccination(ctx, goatID, record.ID)
}

// Diagnose links the named disease to a goat, registering the disease
// first if it is new.
func (s *GoatServiceImpl) Diagnose(ctx context.Context, goatID int64, diseaseName string) error {
	diseaseID, err := s.getOrCreate(ctx, s.diseaseRepo, diseaseName)
	if err != nil {
		return err
	}
	if err := s.goatRepo.AddDiagnosis(ctx, goatID, diseaseID); err != nil {
		return err
	}
	s.log.Info("recorded diagnosis", zap.Int64("goat_id", goatID), zap.String("disease", diseaseName))
	return nil
}

// ClearDiagnosis unlinks the named disease from a goat.
func (s *GoatServiceImpl) ClearDiagnosis(ctx context.Context, goatID int64, diseaseName string) error {
	record, err := s.diseaseRepo.GetByName(ctx, diseaseName)
	if err != nil {
		return err
	}
	return s.goatRepo.RemoveDiagnosis(ctx, goatID, record.ID)
}

// getOrCreate resolves a lookup name to its id, creating the entry if new.
func (s *GoatServiceImpl) getOrCreate(ctx context.Context, repo secondary.LookupRepository, name string) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}
	if record, err := repo.GetByName(ctx, name); err == nil {
		return record.ID, nil
	}
	return repo.Create(ctx, name)
}

// Helper mappers

func recordFromRequest(id int64, req primary.CreateGoatRequest) *secondary.GoatRecord {
	record := &secondary.GoatRecord{
		ID:           id,
		Breed:        req.Breed,
		Name:         req.Name,
		Gender:       req.Gender,
		Offspring:    req.Offspring,
		Cost:         req.Cost,
		Weight:       req.Weight,
		CurrentPrice: req.CurrentPrice,
		Diet:         req.Diet,
		LastBred:     req.LastBred,
		HealthStatus: req.HealthStatus,
	}
	for _, v := range req.Vaccinations {
		record.Vaccinations = append(record.Vaccinations, secondary.NameRef{Name: v})
	}
	for _, d := range req.Diseases {
		record.Diseases = append(record.Diseases, secondary.NameRef{Name: d})
	}
	return record
}

func goatFromRecord(r *secondary.GoatRecord) *primary.Goat {
	g := &primary.Goat{
		ID:           r.ID,
		Breed:        r.Breed,
		Name:         r.Name,
		Gender:       r.Gender,
		Offspring:    r.Offspring,
		Cost:         r.Cost,
		Weight:       r.Weight,
		CurrentPrice: r.CurrentPrice,
		Diet:         r.Diet,
		LastBred:     r.LastBred,
		HealthStatus: r.HealthStatus,
		CreatedAt:    r.CreatedAt,
	}
	for _, v := range r.Vaccinations {
		g.Vaccinations = append(g.Vaccinations, v.Name)
	}
	for _, d := range r.Diseases {
		g.Diseases = append(g.Diseases, d.Name)
	}
	return g
}

// Ensure GoatServiceImpl implements the interface.
var _ primary.GoatService = (*GoatServiceImpl)(nil)
