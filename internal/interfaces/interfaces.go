package interfaces

import (
	"context"
	"time"

	model "github.com/glkeru/kvote/internal/models"
	"github.com/google/uuid"
)

type LedgerStorage interface {
	// быстрая проверка идемпотентности, корректность гарантирует уникальный индекс внутри GrantPurchase
	PurchaseExists(ctx context.Context, transactionID string) (bool, error)
	RenewalExists(ctx context.Context, userID string, transactionID string) (bool, error)
	GrantPurchase(ctx context.Context, purchase model.Purchase, reason string) (newBalance int64, err error)
	GrantSubscription(ctx context.Context, sub model.Subscription, points int64, reason string) (newBalance int64, err error)
	GetSubscription(ctx context.Context, userID string, productID string) (model.Subscription, error)
	GrantPoints(ctx context.Context, userID string, points int64, typeTnx string, reason string) (newBalance int64, err error)
	GetBalance(ctx context.Context, userID string) (points int64, premium bool, err error)
	GetTnx(ctx context.Context, userID string, limit int, offset int) (tnxs []model.PointTransaction, total int64, err error)
	GetUserUUID(ctx context.Context, userID string) (account uuid.UUID, err error)
}

type CacheStorage interface {
	GetBalance(ctx context.Context, user string) (points int64, premium bool, err error)
	SetBalance(ctx context.Context, user string, points int64, premium bool) (err error)
	InvalidateBalance(ctx context.Context, user string) error
}

type ReceiptVerifier interface {
	VerifyReceipt(ctx context.Context, receiptData string) (bool, error)
	SubscriptionExpiry(ctx context.Context, receiptData string, productID string) (time.Time, error)
}

type MasterStorage interface {
	ListIdols(ctx context.Context) ([]model.Idol, error)
	SaveIdol(ctx context.Context, idol model.Idol) (model.Idol, error)
	DeleteIdol(ctx context.Context, id uuid.UUID) error
	ListGroups(ctx context.Context) ([]model.Group, error)
	SaveGroup(ctx context.Context, group model.Group) (model.Group, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error
	ListApps(ctx context.Context) ([]model.ExternalApp, error)
	SaveApp(ctx context.Context, app model.ExternalApp) (model.ExternalApp, error)
	DeleteApp(ctx context.Context, id uuid.UUID) error
}
