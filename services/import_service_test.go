package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/oghenejabor/Firebaseadmin/errors"
	"github.com/oghenejabor/Firebaseadmin/models"
	"github.com/oghenejabor/Firebaseadmin/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Repository ---

type mockCatalogRepo struct {
	shop map[string]models.ShopCategory
	home map[string]models.HomeCollection

	shopWrites int
	homeWrites int

	failRead  error
	failWrite error
}

func newMockRepo() *mockCatalogRepo {
	return &mockCatalogRepo{
		shop: make(map[string]models.ShopCategory),
		home: make(map[string]models.HomeCollection),
	}
}

func (m *mockCatalogRepo) GetShopCategories(_ context.Context) (map[string]models.ShopCategory, error) {
	if m.failRead != nil {
		return nil, m.failRead
	}
	return m.shop, nil
}

func (m *mockCatalogRepo) SetShopCategories(_ context.Context, categories map[string]models.ShopCategory) error {
	if m.failWrite != nil {
		return m.failWrite
	}
	m.shop = categories
	m.shopWrites++
	return nil
}

func (m *mockCatalogRepo) GetHomeCollections(_ context.Context) (map[string]models.HomeCollection, error) {
	if m.failRead != nil {
		return nil, m.failRead
	}
	return m.home, nil
}

func (m *mockCatalogRepo) SetHomeCollections(_ context.Context, collections map[string]models.HomeCollection) error {
	if m.failWrite != nil {
		return m.failWrite
	}
	m.home = collections
	m.homeWrites++
	return nil
}

// --- Helpers ---

func withElectronics(repo *mockCatalogRepo, urls ...string) {
	items := make(map[string]models.StoreProduct, len(urls))
	for i, u := range urls {
		items[string(rune('a'+i))] = models.StoreProduct{Title: "existing", LinkURL: u}
	}
	repo.shop["cat-1"] = models.ShopCategory{Title: "Electronics", Items: items}
}

func storeItems(flags []bool) []models.StoreProductCandidate {
	out := make([]models.StoreProductCandidate, len(flags))
	for i, dup := range flags {
		out[i] = models.StoreProductCandidate{
			StoreProduct: models.StoreProduct{Title: "item", LinkURL: "https://x.com/item"},
			Duplicate:    dup,
		}
	}
	return out
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

// --- ValidateImport ---

func TestValidateImportCleanFile(t *testing.T) {
	repo := newMockRepo()
	svc := services.NewImportService(repo)

	csv := "Name,ClickUrl\n" +
		"a,https://x.com/a\n" +
		"b,https://x.com/b\n" +
		"c,https://x.com/c\n"

	preview, err := svc.ValidateImport(context.Background(), models.DestinationStoreProducts, csv)
	require.NoError(t, err)

	assert.Equal(t, 3, preview.Result.Total)
	assert.Equal(t, 0, preview.Result.Duplicates)
	assert.Equal(t, 3, preview.Result.New)
	assert.Len(t, preview.Candidates, 3)
}

func TestValidateImportFullOverlap(t *testing.T) {
	repo := newMockRepo()
	withElectronics(repo, "https://x.com/a", "https://x.com/b")
	svc := services.NewImportService(repo)

	csv := "Name,ClickUrl\n" +
		"a,https://x.com/a\n" +
		"b,HTTPS://X.COM/B/\n"

	preview, err := svc.ValidateImport(context.Background(), models.DestinationStoreProducts, csv)
	require.NoError(t, err)

	assert.Equal(t, 2, preview.Result.Duplicates)
	assert.Equal(t, 0, preview.Result.New)
	for _, d := range preview.Result.Details {
		assert.Equal(t, "Electronics", d.FoundInCategory)
	}
}

func TestValidateImportParseError(t *testing.T) {
	svc := services.NewImportService(newMockRepo())

	_, err := svc.ValidateImport(context.Background(), models.DestinationStoreProducts, "Name,ClickUrl\n")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
}

func TestValidateImportUnknownDestination(t *testing.T) {
	svc := services.NewImportService(newMockRepo())

	_, err := svc.ValidateImport(context.Background(), models.Destination("bogus"), "Name\nvalue\n")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
}

func TestValidateImportWebsiteDestination(t *testing.T) {
	repo := newMockRepo()
	repo.home["col-1"] = models.HomeCollection{
		Name:  "Favorites",
		Items: map[string]models.WebsiteLink{"k": {Name: "site", LinkURL: "https://y.com/q"}},
	}
	svc := services.NewImportService(repo)

	csv := "Title,Link\nsite,https://Y.com/Q/\n"
	preview, err := svc.ValidateImport(context.Background(), models.DestinationWebsiteLinks, csv)
	require.NoError(t, err)

	assert.Equal(t, 1, preview.Result.Duplicates)
	require.NotNil(t, preview.Candidates[0].Website)
	assert.Equal(t, "Favorites", preview.Candidates[0].Website.DuplicateSource)
}

// --- ProcessImport ---

func TestProcessImportSkipDuplicates(t *testing.T) {
	repo := newMockRepo()
	svc := services.NewImportService(repo)

	result, err := svc.ProcessImport(context.Background(), services.ImportRequest{
		Destination:    models.DestinationStoreProducts,
		CategoryName:   "Deals",
		SkipDuplicates: true,
		StoreItems:     storeItems([]bool{false, true, false, true, false}),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.ImportedCount)
	assert.Equal(t, 2, result.SkippedDuplicates)
	assert.Equal(t, "Deals", result.CategoryName)
	assert.Equal(t, 1, repo.shopWrites, "import must perform exactly one write")
	assert.Len(t, repo.shop[result.CategoryID].Items, 3)
}

func TestProcessImportAllKeepsDuplicates(t *testing.T) {
	repo := newMockRepo()
	svc := services.NewImportService(repo)

	result, err := svc.ProcessImport(context.Background(), services.ImportRequest{
		Destination:  models.DestinationStoreProducts,
		CategoryName: "Deals",
		StoreItems:   storeItems([]bool{false, true, false, true, false}),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.ImportedCount)
	assert.Zero(t, result.SkippedDuplicates)
	assert.Len(t, repo.shop[result.CategoryID].Items, 5)
}

func TestProcessImportRejectsEmptyFilteredSet(t *testing.T) {
	repo := newMockRepo()
	svc := services.NewImportService(repo)

	_, err := svc.ProcessImport(context.Background(), services.ImportRequest{
		Destination:    models.DestinationStoreProducts,
		CategoryName:   "Deals",
		SkipDuplicates: true,
		StoreItems:     storeItems([]bool{true, true}),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
	assert.Zero(t, repo.shopWrites, "rejected import must not write")
}

func TestProcessImportRequiresTargetCategory(t *testing.T) {
	repo := newMockRepo()
	svc := services.NewImportService(repo)

	_, err := svc.ProcessImport(context.Background(), services.ImportRequest{
		Destination: models.DestinationStoreProducts,
		StoreItems:  storeItems([]bool{false}),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
	assert.Zero(t, repo.shopWrites)
}

func TestProcessImportIntoExistingCategory(t *testing.T) {
	repo := newMockRepo()
	withElectronics(repo, "https://x.com/old")
	svc := services.NewImportService(repo)

	result, err := svc.ProcessImport(context.Background(), services.ImportRequest{
		Destination: models.DestinationStoreProducts,
		CategoryID:  "cat-1",
		StoreItems:  storeItems([]bool{false, false}),
	})
	require.NoError(t, err)

	assert.Equal(t, "cat-1", result.CategoryID)
	assert.Equal(t, "Electronics", result.CategoryName)
	assert.Len(t, repo.shop["cat-1"].Items, 3)
}

func TestProcessImportWriteFailureLeavesStateUntouched(t *testing.T) {
	repo := newMockRepo()
	withElectronics(repo, "https://x.com/old")
	repo.failWrite = errors.New("network down")
	svc := services.NewImportService(repo)

	_, err := svc.ProcessImport(context.Background(), services.ImportRequest{
		Destination: models.DestinationStoreProducts,
		CategoryID:  "cat-1",
		StoreItems:  storeItems([]bool{false}),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, appErrCode(t, err))
	assert.Len(t, repo.shop["cat-1"].Items, 1, "failed write must not mutate the snapshot")
}

func TestProcessImportWebsiteLinks(t *testing.T) {
	repo := newMockRepo()
	svc := services.NewImportService(repo)

	result, err := svc.ProcessImport(context.Background(), services.ImportRequest{
		Destination:  models.DestinationWebsiteLinks,
		CategoryName: "Favorites",
		WebsiteItems: []models.WebsiteLinkCandidate{
			{WebsiteLink: models.WebsiteLink{Name: "site", LinkURL: "https://y.com/q"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.ImportedCount)
	assert.Equal(t, 1, repo.homeWrites)
	assert.Len(t, repo.home[result.CategoryID].Items, 1)
}
