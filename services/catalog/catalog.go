// Package catalog wraps the service-listing surface of the backend. Every
// call goes straight to the backend: the client keeps no authoritative copy
// and each view re-fetches on load or filter change.
package catalog

import (
	"context"

	"servizo/api"
	"servizo/models"
)

// CatalogService exposes browse and provider CRUD over listings.
type CatalogService interface {
	List(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, token string, draft models.ServiceDraft) (*models.Service, error)
	Update(ctx context.Context, token, id string, draft models.ServiceDraft) (*models.Service, error)
	Delete(ctx context.Context, token, id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	API *api.Client
}

func (s *DefaultCatalogService) List(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error) {
	return s.API.ListServices(ctx, filter)
}

func (s *DefaultCatalogService) Get(ctx context.Context, id string) (*models.Service, error) {
	return s.API.GetService(ctx, id)
}

func (s *DefaultCatalogService) Create(ctx context.Context, token string, draft models.ServiceDraft) (*models.Service, error) {
	return s.API.CreateService(ctx, token, draft)
}

func (s *DefaultCatalogService) Update(ctx context.Context, token, id string, draft models.ServiceDraft) (*models.Service, error) {
	return s.API.UpdateService(ctx, token, id, draft)
}

func (s *DefaultCatalogService) Delete(ctx context.Context, token, id string) error {
	return s.API.DeleteService(ctx, token, id)
}
