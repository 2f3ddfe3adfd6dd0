package services

import (
	"context"
	"time"

	apperrors "github.com/oghenejabor/Firebaseadmin/errors"
	"github.com/oghenejabor/Firebaseadmin/importer"
	"github.com/oghenejabor/Firebaseadmin/models"
	"github.com/oghenejabor/Firebaseadmin/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportPreview is the outcome of one validate/duplicate-check pass. The
// caller holds the candidate list between calls; row removal happens on the
// client and the check is simply rerun.
type ImportPreview struct {
	Destination models.Destination          `json:"destination"`
	Candidates  []importer.Candidate        `json:"candidates"`
	Result      models.DuplicateCheckResult `json:"result"`
}

// ImportRequest carries the reviewed candidate list back for the final
// write. Exactly one of the item slices is consulted, per Destination.
type ImportRequest struct {
	Destination    models.Destination             `json:"destination" validate:"required"`
	CategoryID     string                         `json:"categoryId"`
	CategoryName   string                         `json:"categoryName"`
	SkipDuplicates bool                           `json:"skipDuplicates"`
	StoreItems     []models.StoreProductCandidate `json:"storeItems,omitempty"`
	WebsiteItems   []models.WebsiteLinkCandidate  `json:"websiteItems,omitempty"`
}

// ImportService runs the spreadsheet import workflow against the catalog
// repository. All candidate state lives with the caller; the service itself
// is stateless between calls.
type ImportService struct {
	repo repository.CatalogRepo
}

func NewImportService(repo repository.CatalogRepo) *ImportService {
	return &ImportService{repo: repo}
}

// ValidateImport parses the file text, normalizes every row for the
// destination, and flags candidates whose URLs already exist in the
// persisted corpus.
func (s *ImportService) ValidateImport(ctx context.Context, dest models.Destination, fileText string) (*ImportPreview, error) {
	if !dest.Valid() {
		return nil, apperrors.NewValidation("Unknown import destination")
	}

	rows, err := importer.Parse(fileText)
	if err != nil {
		return nil, apperrors.NewParse(err)
	}
	candidates := importer.NormalizeAll(rows, dest)

	index, err := s.buildIndex(ctx, dest)
	if err != nil {
		return nil, apperrors.NewStoreRead(err)
	}

	annotated, result := importer.CheckDuplicates(candidates, index)
	zap.L().Info("Import file validated",
		zap.String("destination", string(dest)),
		zap.Int("total", result.Total),
		zap.Int("duplicates", result.Duplicates),
	)
	return &ImportPreview{Destination: dest, Candidates: annotated, Result: result}, nil
}

// ProcessImport merges the reviewed candidates into the target category and
// performs exactly one write of the whole updated collection. Validation
// failures and write failures leave the store and the caller's candidate
// state untouched.
func (s *ImportService) ProcessImport(ctx context.Context, req ImportRequest) (*models.ImportResult, error) {
	if !req.Destination.Valid() {
		return nil, apperrors.NewValidation("Unknown import destination")
	}
	if req.CategoryID == "" && req.CategoryName == "" {
		return nil, apperrors.NewValidation("A target category must be selected or named")
	}

	var result *models.ImportResult
	var err error
	switch req.Destination {
	case models.DestinationStoreProducts:
		result, err = s.importStoreProducts(ctx, req)
	case models.DestinationWebsiteLinks:
		result, err = s.importWebsiteLinks(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	zap.L().Info("Import completed",
		zap.String("destination", string(req.Destination)),
		zap.String("category_id", result.CategoryID),
		zap.Int("imported", result.ImportedCount),
		zap.Int("skipped_duplicates", result.SkippedDuplicates),
	)
	return result, nil
}

func (s *ImportService) importStoreProducts(ctx context.Context, req ImportRequest) (*models.ImportResult, error) {
	items, skipped := importer.FilterStoreCandidates(req.StoreItems, req.SkipDuplicates)
	if len(items) == 0 {
		return nil, apperrors.NewValidation("No rows to import")
	}

	existing, err := s.repo.GetShopCategories(ctx)
	if err != nil {
		return nil, apperrors.NewStoreRead(err)
	}

	updated, targetID := importer.MergeStoreProducts(existing, req.CategoryID, req.CategoryName, uuid.New().String(), items, time.Now().UTC())
	if err := s.repo.SetShopCategories(ctx, updated); err != nil {
		return nil, apperrors.NewStoreWrite(err)
	}

	return &models.ImportResult{
		ImportedCount:     len(items),
		SkippedDuplicates: skipped,
		CategoryID:        targetID,
		CategoryName:      updated[targetID].Title,
	}, nil
}

func (s *ImportService) importWebsiteLinks(ctx context.Context, req ImportRequest) (*models.ImportResult, error) {
	items, skipped := importer.FilterWebsiteCandidates(req.WebsiteItems, req.SkipDuplicates)
	if len(items) == 0 {
		return nil, apperrors.NewValidation("No rows to import")
	}

	existing, err := s.repo.GetHomeCollections(ctx)
	if err != nil {
		return nil, apperrors.NewStoreRead(err)
	}

	updated, targetID := importer.MergeWebsiteLinks(existing, req.CategoryID, req.CategoryName, uuid.New().String(), items, time.Now().UTC())
	if err := s.repo.SetHomeCollections(ctx, updated); err != nil {
		return nil, apperrors.NewStoreWrite(err)
	}

	return &models.ImportResult{
		ImportedCount:     len(items),
		SkippedDuplicates: skipped,
		CategoryID:        targetID,
		CategoryName:      updated[targetID].Name,
	}, nil
}

func (s *ImportService) buildIndex(ctx context.Context, dest models.Destination) (importer.URLIndex, error) {
	if dest == models.DestinationWebsiteLinks {
		collections, err := s.repo.GetHomeCollections(ctx)
		if err != nil {
			return nil, err
		}
		return importer.BuildWebsiteURLIndex(collections), nil
	}
	categories, err := s.repo.GetShopCategories(ctx)
	if err != nil {
		return nil, err
	}
	return importer.BuildStoreURLIndex(categories), nil
}
