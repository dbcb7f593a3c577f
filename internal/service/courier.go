package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/logger"
	"moto-rental-backend/internal/repository"
)

type courierService struct {
	courierRepo repository.CourierRepository
}

func NewCourierService(courierRepo repository.CourierRepository) CourierService {
	return &courierService{courierRepo: courierRepo}
}

func (s *courierService) Create(ctx context.Context, courier *domain.Courier) (*domain.Courier, error) {
	// ID, CNPJ and CNH number must each be unique.
	if _, err := s.courierRepo.GetByID(ctx, courier.ID); err == nil {
		return nil, domain.ErrCourierAlreadyExists
	} else if !errors.Is(err, domain.ErrCourierNotFound) {
		return nil, err
	}
	if _, err := s.courierRepo.GetByCNPJ(ctx, courier.CNPJ); err == nil {
		return nil, domain.ErrCourierAlreadyExists
	} else if !errors.Is(err, domain.ErrCourierNotFound) {
		return nil, err
	}
	if _, err := s.courierRepo.GetByCNHNumber(ctx, courier.CNHNumber); err == nil {
		return nil, domain.ErrCourierAlreadyExists
	} else if !errors.Is(err, domain.ErrCourierNotFound) {
		return nil, err
	}

	if err := s.courierRepo.Create(ctx, courier); err != nil {
		return nil, err
	}
	logger.Info("Courier created", "courier_id", courier.ID, "cnh_type", courier.CNHType)
	return courier, nil
}

func (s *courierService) GetByID(ctx context.Context, id string) (*domain.Courier, error) {
	return s.courierRepo.GetByID(ctx, id)
}

func (s *courierService) List(ctx context.Context) ([]domain.Courier, error) {
	return s.courierRepo.List(ctx)
}

func (s *courierService) UpdateCNHImage(ctx context.Context, id, imageURL string) (*domain.Courier, error) {
	courier, err := s.courierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isValidCNHImageURL(imageURL) {
		return nil, domain.ErrInvalidImageFormat
	}

	if err := s.courierRepo.UpdateCNHImage(ctx, id, imageURL); err != nil {
		return nil, err
	}
	courier.CNHImageURL = &imageURL
	logger.Info("Courier CNH image updated", "courier_id", id)
	return courier, nil
}

// isValidCNHImageURL accepts only absolute http(s) URLs pointing to a png or
// bmp image.
func isValidCNHImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	lower := strings.ToLower(u.Path)
	return strings.HasSuffix(lower, ".png") || strings.HasSuffix(lower, ".bmp")
}
