package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicate      = errors.New("already processed")
	ErrInvalidReceipt = errors.New("invalid receipt")
	ErrUnknownProduct = errors.New("unknown product")
	ErrInsufficient   = errors.New("not enough points")
)

// категории транзакций
const (
	TypePurchase            = "purchase"
	TypeSubscriptionFirst   = "subscription_first"
	TypeSubscriptionMonthly = "subscription_monthly"
	TypeGrant               = "grant"
	TypeDeduct              = "deduct"
	TypeVote                = "vote"
)

// статусы покупки
const (
	StatusCompleted = "completed"
)

// Пользователь - баланс и премиум-флаг, остальное живет у identity-коллаборатора
type User struct {
	UUID      uuid.UUID
	UserID    string // внешний ID пользователя
	Balance   int64  // баланс баллов, >= 0
	Premium   bool
	Suspended bool
	UpdatedAt time.Time
}

// Покупка - append-only, одна на transactionId
type Purchase struct {
	UUID          uuid.UUID
	UserID        string
	ProductID     string
	TransactionID string // ключ идемпотентности
	Points        int64
	ReceiptData   string // исходный чек, храним для разбора споров
	Status        string
	CreatedAt     time.Time
}

// Подписка - одна запись на пользователя и продукт, обновляется при продлении
type Subscription struct {
	UUID          uuid.UUID
	UserID        string
	ProductID     string
	TransactionID string // транзакция последнего продления
	ExpiresAt     time.Time
	FirstMonth    bool
	TotalPoints   int64 // всего начислено по подписке
	AutoRenewing  bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// активность подписки наблюдаем при чтении, фонового процесса нет
func (s Subscription) Active(now time.Time) bool {
	return s.ExpiresAt.After(now)
}

// Транзакция баллов - append-only журнал
type PointTransaction struct {
	UUID      uuid.UUID
	UserID    string
	Points    int64 // со знаком
	TypeTnx   string
	Reason    string
	CreatedAt time.Time
}
