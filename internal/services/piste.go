package services

import (
	"context"

	"github.com/snowpeak/skistation/internal/models"
)

type PisteService struct {
	pistes PisteStore
}

func NewPisteService(pistes PisteStore) *PisteService {
	return &PisteService{pistes: pistes}
}

func (s *PisteService) AddPiste(ctx context.Context, p *models.Piste) (*models.Piste, error) {
	if err := s.pistes.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PisteService) UpdatePiste(ctx context.Context, p *models.Piste) (*models.Piste, error) {
	return s.AddPiste(ctx, p)
}

func (s *PisteService) RetrievePiste(ctx context.Context, id uint) (*models.Piste, error) {
	return s.pistes.FindByID(ctx, id)
}

func (s *PisteService) RetrieveAllPistes(ctx context.Context) ([]models.Piste, error) {
	return s.pistes.FindAll(ctx)
}

func (s *PisteService) RemovePiste(ctx context.Context, id uint) error {
	return s.pistes.DeleteByID(ctx, id)
}
