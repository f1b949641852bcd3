package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	interf "github.com/glkeru/kvote/internal/interfaces"
	model "github.com/glkeru/kvote/internal/models"
	"go.uber.org/zap"
)

// Покупки и подписки: проверка чека, каталог, атомарное начисление
type IAPService struct {
	logger   *zap.Logger
	db       interf.LedgerStorage
	cache    interf.CacheStorage
	verifier interf.ReceiptVerifier
	catalog  model.Catalog
}

func NewIAPService(logger *zap.Logger, db interf.LedgerStorage, cache interf.CacheStorage, verifier interf.ReceiptVerifier, catalog model.Catalog) *IAPService {
	return &IAPService{logger, db, cache, verifier, catalog}
}

func (s *IAPService) Log(err error) {
	s.logger.Error(err.Error())
}

// Разовая покупка баллов
func (s *IAPService) VerifyPurchase(ctx context.Context, userID string, receiptData string, productID string, transactionID string) (granted int64, newBalance int64, err error) {
	// быстрый отказ по дублю, настоящую защиту дает уникальный индекс в GrantPurchase
	exists, err := s.db.PurchaseExists(ctx, transactionID)
	if err != nil {
		return 0, 0, err
	}
	if exists {
		return 0, 0, fmt.Errorf("transaction %s %w", transactionID, model.ErrDuplicate)
	}

	valid, err := s.verifier.VerifyReceipt(ctx, receiptData)
	if err != nil {
		// сетевая ошибка = невалидный чек, клиент повторит с тем же transactionId
		s.Log(err)
		return 0, 0, fmt.Errorf("%w: %v", model.ErrInvalidReceipt, err)
	}
	if !valid {
		return 0, 0, model.ErrInvalidReceipt
	}

	points, ok := s.catalog.Points(productID)
	if !ok {
		return 0, 0, fmt.Errorf("%s %w", productID, model.ErrUnknownProduct)
	}

	purchase := model.Purchase{
		UserID:        userID,
		ProductID:     productID,
		TransactionID: transactionID,
		Points:        points,
		ReceiptData:   receiptData,
	}
	newBalance, err = s.db.GrantPurchase(ctx, purchase, fmt.Sprintf("ポイント購入 (%s)", productID))
	if err != nil {
		return 0, 0, err
	}

	if s.cache != nil {
		err = s.cache.InvalidateBalance(ctx, userID)
		if err != nil {
			s.Log(err)
		}
	}

	s.logger.Info("points granted",
		zap.String("user", userID),
		zap.String("product", productID),
		zap.Int64("points", points),
	)
	return points, newBalance, nil
}

// Результат обработки подписки
type SubscriptionGrant struct {
	Premium    bool
	ExpiresAt  time.Time
	ProductID  string
	Points     int64
	FirstMonth bool
	NewBalance int64
}

// Подписка: первый месяц создает запись, продление обновляет ее
func (s *IAPService) VerifySubscription(ctx context.Context, userID string, receiptData string, productID string, transactionID string) (grant SubscriptionGrant, err error) {
	if productID != s.catalog.SubscriptionID() {
		return grant, fmt.Errorf("%s %w", productID, model.ErrUnknownProduct)
	}

	exists, err := s.db.RenewalExists(ctx, userID, transactionID)
	if err != nil {
		return grant, err
	}
	if exists {
		return grant, fmt.Errorf("transaction %s %w", transactionID, model.ErrDuplicate)
	}

	valid, err := s.verifier.VerifyReceipt(ctx, receiptData)
	if err != nil {
		s.Log(err)
		return grant, fmt.Errorf("%w: %v", model.ErrInvalidReceipt, err)
	}
	if !valid {
		return grant, model.ErrInvalidReceipt
	}

	expiresAt, err := s.verifier.SubscriptionExpiry(ctx, receiptData, productID)
	if err != nil {
		s.Log(err)
		return grant, fmt.Errorf("%w: %v", model.ErrInvalidReceipt, err)
	}

	// первый месяц или продление
	firstMonth := false
	_, err = s.db.GetSubscription(ctx, userID, productID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return grant, err
		}
		firstMonth = true
	}
	points := s.catalog.SubscriptionPoints(firstMonth)

	reason := "プレミアム会員月次特典"
	if firstMonth {
		reason = "プレミアム会員初月特典"
	}

	sub := model.Subscription{
		UserID:        userID,
		ProductID:     productID,
		TransactionID: transactionID,
		ExpiresAt:     expiresAt,
		FirstMonth:    firstMonth,
	}
	newBalance, err := s.db.GrantSubscription(ctx, sub, points, reason)
	if err != nil {
		return grant, err
	}

	if s.cache != nil {
		err = s.cache.InvalidateBalance(ctx, userID)
		if err != nil {
			s.Log(err)
		}
	}

	s.logger.Info("subscription processed",
		zap.String("user", userID),
		zap.Bool("firstMonth", firstMonth),
		zap.Int64("points", points),
	)
	return SubscriptionGrant{
		Premium:    expiresAt.After(time.Now()),
		ExpiresAt:  expiresAt,
		ProductID:  productID,
		Points:     points,
		FirstMonth: firstMonth,
		NewBalance: newBalance,
	}, nil
}
