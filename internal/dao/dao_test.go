package dao

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogmodel "swim-shop-api/internal/model/catalog"
	paymentmodel "swim-shop-api/internal/model/payment"
	"swim-shop-api/internal/testutil"
)

func TestProductDao(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.SeedProducts(t, db)
	d := NewProductDao(db)

	all, err := d.List("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, uint64(1), all[0].ID)
	assert.Equal(t, []string{"S", "M", "L"}, all[0].Sizes)

	bikinis, err := d.List("bikinis")
	require.NoError(t, err)
	require.Len(t, bikinis, 1)
	assert.Equal(t, "Coral Bikini Set", bikinis[0].Name)

	p, err := d.GetByID(2)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "599.99", p.Price.StringFixed(2))

	missing, err := d.GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byID, err := d.GetByIDs([]uint64{1, 3, 42})
	require.NoError(t, err)
	assert.Len(t, byID, 2)
	assert.Contains(t, byID, uint64(3))
}

func TestReviewDao_CreateAndAggregate(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.SeedProducts(t, db)
	d := NewReviewDao(db)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, rating := range []int{5, 4, 4} {
		require.NoError(t, d.CreateAndAggregate(&catalogmodel.Review{
			ID:        uint64(100 + i),
			ProductID: 1,
			UserID:    "u",
			Rating:    rating,
			Comment:   "nice",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	list, err := d.ListByProduct(1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, uint64(102), list[0].ID)

	p, err := NewProductDao(db).GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 3, p.ReviewCount)
	assert.Equal(t, "4.33", p.AverageRating.StringFixed(2))

	empty, err := d.ListByProduct(2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func newAttempt(id uint64) *paymentmodel.PaymentAttempt {
	return &paymentmodel.PaymentAttempt{
		MPaymentID: id,
		Amount:     decimal.RequireFromString("500.00"),
		Currency:   "ZAR",
		ItemName:   "Order 1",
		Status:     paymentmodel.AttemptInitiated,
	}
}

func TestPaymentDao_Transition(t *testing.T) {
	db := testutil.OpenDB(t)
	d := NewPaymentDao(db)
	require.NoError(t, d.Insert(newAttempt(1)))

	fee := decimal.RequireFromString("-11.50")
	now := time.Now()
	ok, err := d.Transition(1, paymentmodel.AttemptInitiated, paymentmodel.AttemptCompleted, GatewayUpdate{
		GatewayStatus: "COMPLETE",
		PfPaymentID:   "1089250",
		AmountFee:     &fee,
		NotifiedAt:    now,
	})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Transition(1, paymentmodel.AttemptInitiated, paymentmodel.AttemptFailed, GatewayUpdate{GatewayStatus: "FAILED", NotifiedAt: now})
	require.NoError(t, err)
	assert.False(t, ok, "terminal attempts must not move")

	a, err := d.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, paymentmodel.AttemptCompleted, a.Status)
	assert.Equal(t, "1089250", a.PfPaymentID)
	require.NotNil(t, a.AmountFee)
	assert.Equal(t, "-11.50", a.AmountFee.StringFixed(2))

	none, err := d.GetByID(2)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestPaymentDao_MarkConfirmedOnce(t *testing.T) {
	db := testutil.OpenDB(t)
	d := NewPaymentDao(db)
	a := newAttempt(5)
	a.Status = paymentmodel.AttemptCompleted
	require.NoError(t, d.Insert(a))

	ok, err := d.MarkConfirmed(5, time.Now())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.MarkConfirmed(5, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPaymentDao_MarkConfirmedDeductsStock(t *testing.T) {
	db := testutil.OpenDB(t)
	testutil.SeedProducts(t, db)
	d := NewPaymentDao(db)
	a := newAttempt(6)
	a.Status = paymentmodel.AttemptCompleted
	a.Items = `[{"product_id":1,"quantity":3},{"product_id":2,"quantity":5}]`
	require.NoError(t, d.Insert(a))

	ok, err := d.MarkConfirmed(6, time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	products := NewProductDao(db)
	p1, err := products.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 7, p1.Stock)
	p2, err := products.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, 0, p2.Stock, "oversold stock floors at zero")

	// a redelivered confirmation must not deduct twice
	ok, err = d.MarkConfirmed(6, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)
	p1, err = products.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 7, p1.Stock)
}

func TestPaymentDao_MarkConfirmedRollsBackOnBadItems(t *testing.T) {
	db := testutil.OpenDB(t)
	d := NewPaymentDao(db)
	a := newAttempt(8)
	a.Status = paymentmodel.AttemptCompleted
	a.Items = "{broken"
	require.NoError(t, d.Insert(a))

	ok, err := d.MarkConfirmed(8, time.Now())
	require.Error(t, err)
	assert.False(t, ok)

	got, err := d.GetByID(8)
	require.NoError(t, err)
	assert.Nil(t, got.ConfirmedAt)
}

func TestSubscriberDao_Idempotent(t *testing.T) {
	db := testutil.OpenDB(t)
	d := NewSubscriberDao(db)

	created, err := d.Subscribe("sun@example.com")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = d.Subscribe("sun@example.com")
	require.NoError(t, err)
	assert.False(t, created)

	var n int64
	db.Model(&catalogmodel.Subscriber{}).Count(&n)
	assert.Equal(t, int64(1), n)
}
