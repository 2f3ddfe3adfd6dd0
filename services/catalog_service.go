package services

import (
	"context"
	"sort"

	apperrors "github.com/oghenejabor/Firebaseadmin/errors"
	"github.com/oghenejabor/Firebaseadmin/models"
	"github.com/oghenejabor/Firebaseadmin/repository"

	"github.com/google/uuid"
)

// ShopCategorySummary is the list-view projection of a shop category.
type ShopCategorySummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image,omitempty"`
	ItemCount int    `json:"itemCount"`
}

// HomeCollectionSummary is the list-view projection of a home collection.
type HomeCollectionSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	ItemCount int    `json:"itemCount"`
}

// CategoryCreateRequest creates an empty shop category.
type CategoryCreateRequest struct {
	Title string `json:"title" validate:"required"`
	Image string `json:"image"`
}

// CollectionCreateRequest creates an empty home collection.
type CollectionCreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}

// CatalogService provides the minimum collection CRUD the import screen
// needs: listing targets and creating or removing named groups. Every
// mutation reads the whole snapshot and writes it back in one set.
type CatalogService struct {
	repo repository.CatalogRepo
}

func NewCatalogService(repo repository.CatalogRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListShopCategories(ctx context.Context) ([]ShopCategorySummary, error) {
	categories, err := s.repo.GetShopCategories(ctx)
	if err != nil {
		return nil, apperrors.NewStoreRead(err)
	}
	summaries := make([]ShopCategorySummary, 0, len(categories))
	for id, cat := range categories {
		summaries = append(summaries, ShopCategorySummary{
			ID:        id,
			Title:     cat.Title,
			Image:     cat.Image,
			ItemCount: len(cat.Items),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Title < summaries[j].Title })
	return summaries, nil
}

func (s *CatalogService) CreateShopCategory(ctx context.Context, req CategoryCreateRequest) (string, error) {
	categories, err := s.repo.GetShopCategories(ctx)
	if err != nil {
		return "", apperrors.NewStoreRead(err)
	}
	for _, cat := range categories {
		if cat.Title == req.Title {
			return "", apperrors.NewValidation("A category with this title already exists")
		}
	}
	id := uuid.New().String()
	categories[id] = models.ShopCategory{Title: req.Title, Image: req.Image}
	if err := s.repo.SetShopCategories(ctx, categories); err != nil {
		return "", apperrors.NewStoreWrite(err)
	}
	return id, nil
}

func (s *CatalogService) DeleteShopCategory(ctx context.Context, id string) error {
	categories, err := s.repo.GetShopCategories(ctx)
	if err != nil {
		return apperrors.NewStoreRead(err)
	}
	if _, ok := categories[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(categories, id)
	if err := s.repo.SetShopCategories(ctx, categories); err != nil {
		return apperrors.NewStoreWrite(err)
	}
	return nil
}

func (s *CatalogService) ListHomeCollections(ctx context.Context) ([]HomeCollectionSummary, error) {
	collections, err := s.repo.GetHomeCollections(ctx)
	if err != nil {
		return nil, apperrors.NewStoreRead(err)
	}
	summaries := make([]HomeCollectionSummary, 0, len(collections))
	for id, col := range collections {
		summaries = append(summaries, HomeCollectionSummary{
			ID:        id,
			Name:      col.Name,
			Image:     col.Image,
			ItemCount: len(col.Items),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries, nil
}

func (s *CatalogService) CreateHomeCollection(ctx context.Context, req CollectionCreateRequest) (string, error) {
	collections, err := s.repo.GetHomeCollections(ctx)
	if err != nil {
		return "", apperrors.NewStoreRead(err)
	}
	for _, col := range collections {
		if col.Name == req.Name {
			return "", apperrors.NewValidation("A collection with this name already exists")
		}
	}
	id := uuid.New().String()
	collections[id] = models.HomeCollection{Name: req.Name, Image: req.Image}
	if err := s.repo.SetHomeCollections(ctx, collections); err != nil {
		return "", apperrors.NewStoreWrite(err)
	}
	return id, nil
}

func (s *CatalogService) DeleteHomeCollection(ctx context.Context, id string) error {
	collections, err := s.repo.GetHomeCollections(ctx)
	if err != nil {
		return apperrors.NewStoreRead(err)
	}
	if _, ok := collections[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(collections, id)
	if err := s.repo.SetHomeCollections(ctx, collections); err != nil {
		return apperrors.NewStoreWrite(err)
	}
	return nil
}
