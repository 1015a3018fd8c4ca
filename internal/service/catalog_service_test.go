package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swim-shop-api/internal/constant"
	"swim-shop-api/internal/dto"
	"swim-shop-api/internal/logger"
	catalogmodel "swim-shop-api/internal/model/catalog"
	"swim-shop-api/internal/testutil"
)

func ids(list []catalogmodel.Product) []uint64 {
	out := make([]uint64, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestCatalog_ListAndCache(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.SeedProducts(t, db)
	cache := &fakeCache{}
	svc := NewCatalogService(db, cache, logger.Discard())
	ctx := context.Background()

	list, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, ids(list))
	assert.Equal(t, 1, cache.sets)

	// served from cache on the second call
	cache.list = cache.list[:1]
	list, err = svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, ids(list))
	assert.Equal(t, 1, cache.sets)

	svc.Invalidate(ctx)
	assert.Equal(t, 1, cache.invalidated)
	list, err = svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestCatalog_CacheErrorFallsBack(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.SeedProducts(t, db)
	svc := NewCatalogService(db, &fakeCache{getErr: errDown}, logger.Discard())

	list, err := svc.List(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestCatalog_FilterAndSearch(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.SeedProducts(t, db)
	svc := NewCatalogService(db, nil, logger.Discard())
	ctx := context.Background()

	list, err := svc.List(ctx, "Bikinis", "")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, ids(list))

	list, err = svc.List(ctx, "", "BIKINI")
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, uint64(1), list[0].ID)

	list, err = svc.List(ctx, "", "beach")
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, uint64(3), list[0].ID)

	list, err = svc.List(ctx, "", "zzzz")
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = svc.List(ctx, "one-piece", "beach")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalog_GetWithReviews(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.SeedProducts(t, db)
	catalog := NewCatalogService(db, nil, logger.Discard())
	reviews := NewReviewService(db, catalog, fixedIDs(501), logger.Discard())

	_, err := reviews.Create(context.Background(), dto.CreateReviewReq{
		ProductID: 2,
		Review:    &dto.ReviewBody{UserID: "u1", UserName: "Lerato", Rating: 5, Comment: "Fits perfectly"},
	})
	require.NoError(t, err)

	detail, err := catalog.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "Midnight One-Piece", detail.Name)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, uint64(501), detail.Reviews[0].ID)
	assert.Equal(t, 1, detail.ReviewCount)

	_, err = catalog.Get(99)
	assert.Equal(t, constant.CodeProductNotFound, constant.CodeOf(err))
}
