package services

import (
	"context"
	"testing"
	"time"

	"github.com/glkeru/kvote/internal/mocks"
	model "github.com/glkeru/kvote/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestVerifyPurchase(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	tests := []struct {
		Name      string
		ProductID string
		Balance   int64 // баланс до покупки
		Granted   int64
	}{
		{"Базовый пакет", "com.kpopvote.points.330", 100, 300},
		{"Старший пакет", "com.kpopvote.points.5500", 0, 6500},
		{"Промо x2", "com.kpopvote.points.330.promo", 0, 600},
		{"Промо старший", "com.kpopvote.points.3300.promo", 500, 7600},
	}

	for _, ts := range tests {
		ts := ts
		t.Run(ts.Name, func(t *testing.T) {
			db := mocks.NewMockLedgerStorage(cont)
			cache := mocks.NewMockCacheStorage(cont)
			verifier := mocks.NewMockReceiptVerifier(cont)

			db.EXPECT().
				PurchaseExists(gomock.Any(), "tnx-1001").
				Return(false, nil)
			verifier.EXPECT().
				VerifyReceipt(gomock.Any(), "receipt-data").
				Return(true, nil)
			db.EXPECT().
				GrantPurchase(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p model.Purchase, reason string) (int64, error) {
					require.Equal(t, p.UserID, "user-1")
					require.Equal(t, p.ProductID, ts.ProductID)
					require.Equal(t, p.TransactionID, "tnx-1001")
					require.Equal(t, p.Points, ts.Granted)
					require.Contains(t, reason, ts.ProductID)
					return ts.Balance + ts.Granted, nil
				})
			cache.EXPECT().
				InvalidateBalance(gomock.Any(), "user-1").
				Return(nil)

			serv := NewIAPService(zap.NewNop(), db, cache, verifier, model.DefaultCatalog())
			granted, newBalance, err := serv.VerifyPurchase(context.Background(), "user-1", "receipt-data", ts.ProductID, "tnx-1001")
			require.NoError(t, err)
			require.Equal(t, granted, ts.Granted)
			require.Equal(t, newBalance, ts.Balance+ts.Granted)
		})
	}
}

// дубль transactionId отсекается до обращения к App Store
func TestVerifyPurchaseDuplicate(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	verifier := mocks.NewMockReceiptVerifier(cont)

	db.EXPECT().
		PurchaseExists(gomock.Any(), "tnx-dup").
		Return(true, nil)

	serv := NewIAPService(zap.NewNop(), db, nil, verifier, model.DefaultCatalog())
	_, _, err := serv.VerifyPurchase(context.Background(), "user-1", "receipt-data", "com.kpopvote.points.330", "tnx-dup")
	require.ErrorIs(t, err, model.ErrDuplicate)
}

func TestVerifyPurchaseInvalidReceipt(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	verifier := mocks.NewMockReceiptVerifier(cont)

	db.EXPECT().
		PurchaseExists(gomock.Any(), "tnx-1").
		Return(false, nil)
	verifier.EXPECT().
		VerifyReceipt(gomock.Any(), "bad-receipt").
		Return(false, nil)

	// GrantPurchase не вызывается
	serv := NewIAPService(zap.NewNop(), db, nil, verifier, model.DefaultCatalog())
	_, _, err := serv.VerifyPurchase(context.Background(), "user-1", "bad-receipt", "com.kpopvote.points.330", "tnx-1")
	require.ErrorIs(t, err, model.ErrInvalidReceipt)
}

func TestVerifyPurchaseUnknownProduct(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	verifier := mocks.NewMockReceiptVerifier(cont)

	db.EXPECT().
		PurchaseExists(gomock.Any(), "tnx-1").
		Return(false, nil)
	verifier.EXPECT().
		VerifyReceipt(gomock.Any(), "receipt-data").
		Return(true, nil)

	serv := NewIAPService(zap.NewNop(), db, nil, verifier, model.DefaultCatalog())
	_, _, err := serv.VerifyPurchase(context.Background(), "user-1", "receipt-data", "com.kpopvote.points.999", "tnx-1")
	require.ErrorIs(t, err, model.ErrUnknownProduct)
}

// гонка двух запросов: уникальный индекс внутри GrantPurchase возвращает дубль
func TestVerifyPurchaseRaceDuplicate(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	verifier := mocks.NewMockReceiptVerifier(cont)

	db.EXPECT().
		PurchaseExists(gomock.Any(), "tnx-race").
		Return(false, nil)
	verifier.EXPECT().
		VerifyReceipt(gomock.Any(), "receipt-data").
		Return(true, nil)
	db.EXPECT().
		GrantPurchase(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), model.ErrDuplicate)

	serv := NewIAPService(zap.NewNop(), db, nil, verifier, model.DefaultCatalog())
	_, _, err := serv.VerifyPurchase(context.Background(), "user-1", "receipt-data", "com.kpopvote.points.330", "tnx-race")
	require.ErrorIs(t, err, model.ErrDuplicate)
}

func TestVerifySubscriptionFirstMonth(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	cache := mocks.NewMockCacheStorage(cont)
	verifier := mocks.NewMockReceiptVerifier(cont)
	expires := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second)

	db.EXPECT().
		RenewalExists(gomock.Any(), "user-1", "tnx-sub-1").
		Return(false, nil)
	verifier.EXPECT().
		VerifyReceipt(gomock.Any(), "receipt-data").
		Return(true, nil)
	verifier.EXPECT().
		SubscriptionExpiry(gomock.Any(), "receipt-data", "com.kpopvote.premium.monthly").
		Return(expires, nil)
	db.EXPECT().
		GetSubscription(gomock.Any(), "user-1", "com.kpopvote.premium.monthly").
		Return(model.Subscription{}, model.ErrNotFound)
	db.EXPECT().
		GrantSubscription(gomock.Any(), gomock.Any(), int64(1200), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub model.Subscription, points int64, reason string) (int64, error) {
			require.True(t, sub.FirstMonth)
			require.Equal(t, sub.TransactionID, "tnx-sub-1")
			require.Equal(t, sub.ExpiresAt, expires)
			return int64(1200), nil
		})
	cache.EXPECT().
		InvalidateBalance(gomock.Any(), "user-1").
		Return(nil)

	serv := NewIAPService(zap.NewNop(), db, cache, verifier, model.DefaultCatalog())
	grant, err := serv.VerifySubscription(context.Background(), "user-1", "receipt-data", "com.kpopvote.premium.monthly", "tnx-sub-1")
	require.NoError(t, err)
	require.True(t, grant.Premium)
	require.True(t, grant.FirstMonth)
	require.Equal(t, grant.Points, int64(1200))
	require.Equal(t, grant.ExpiresAt, expires)
	require.Equal(t, grant.NewBalance, int64(1200))
}

func TestVerifySubscriptionRenewal(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	cache := mocks.NewMockCacheStorage(cont)
	verifier := mocks.NewMockReceiptVerifier(cont)
	expires := time.Now().Add(30 * 24 * time.Hour)

	db.EXPECT().
		RenewalExists(gomock.Any(), "user-1", "tnx-sub-2").
		Return(false, nil)
	verifier.EXPECT().
		VerifyReceipt(gomock.Any(), "receipt-data").
		Return(true, nil)
	verifier.EXPECT().
		SubscriptionExpiry(gomock.Any(), "receipt-data", "com.kpopvote.premium.monthly").
		Return(expires, nil)
	db.EXPECT().
		GetSubscription(gomock.Any(), "user-1", "com.kpopvote.premium.monthly").
		Return(model.Subscription{UserID: "user-1", ProductID: "com.kpopvote.premium.monthly"}, nil)
	db.EXPECT().
		GrantSubscription(gomock.Any(), gomock.Any(), int64(600), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub model.Subscription, points int64, reason string) (int64, error) {
			require.False(t, sub.FirstMonth)
			return int64(1800), nil
		})
	cache.EXPECT().
		InvalidateBalance(gomock.Any(), "user-1").
		Return(nil)

	serv := NewIAPService(zap.NewNop(), db, cache, verifier, model.DefaultCatalog())
	grant, err := serv.VerifySubscription(context.Background(), "user-1", "receipt-data", "com.kpopvote.premium.monthly", "tnx-sub-2")
	require.NoError(t, err)
	require.False(t, grant.FirstMonth)
	require.Equal(t, grant.Points, int64(600))
	require.Equal(t, grant.NewBalance, int64(1800))
}

func TestVerifySubscriptionWrongProduct(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	serv := NewIAPService(zap.NewNop(), mocks.NewMockLedgerStorage(cont), nil, mocks.NewMockReceiptVerifier(cont), model.DefaultCatalog())
	_, err := serv.VerifySubscription(context.Background(), "user-1", "receipt-data", "com.kpopvote.points.330", "tnx-1")
	require.ErrorIs(t, err, model.ErrUnknownProduct)
}

func TestVerifySubscriptionDuplicateRenewal(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	db.EXPECT().
		RenewalExists(gomock.Any(), "user-1", "tnx-sub-dup").
		Return(true, nil)

	serv := NewIAPService(zap.NewNop(), db, nil, mocks.NewMockReceiptVerifier(cont), model.DefaultCatalog())
	_, err := serv.VerifySubscription(context.Background(), "user-1", "receipt-data", "com.kpopvote.premium.monthly", "tnx-sub-dup")
	require.ErrorIs(t, err, model.ErrDuplicate)
}
