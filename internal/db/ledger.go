package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	model "github.com/glkeru/kvote/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Таблицы:
//   accounts(uuid, userid UNIQUE, balance, premium, suspended, updatedat)
//   purchases(id, userid, productid, transactionid UNIQUE, points, receiptdata, status, createdat)
//   subscriptions(id, userid, productid, transactionid, expiresat, firstmonth, totalpoints,
//                 autorenewing, createdat, updatedat, UNIQUE(userid, productid), UNIQUE(userid, transactionid))
//   tnx(id, userid, points, typetnx, reason, createdat)
// Уникальные индексы по transactionid - механизм корректности идемпотентности,
// проверка на уровне сервиса только быстрый отказ.

const uniqueViolation = "23505"

type LedgerDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewLedgerDB(logger *zap.Logger) (db *LedgerDB, err error) {
	// config
	purl := os.Getenv("KVOTE_DB")
	if purl == "" {
		return nil, fmt.Errorf("env KVOTE_DB is not set")
	}
	port := os.Getenv("KVOTE_DB_PORT")
	if port == "" {
		return nil, fmt.Errorf("env KVOTE_DB_PORT is not set")
	}
	user := os.Getenv("KVOTE_DB_USER")
	if user == "" {
		return nil, fmt.Errorf("env KVOTE_DB_USER is not set")
	}
	password := os.Getenv("KVOTE_DB_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("env KVOTE_DB_PASSWORD is not set")
	}
	database := os.Getenv("KVOTE_DB_BASE")
	if database == "" {
		return nil, fmt.Errorf("env KVOTE_DB_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pool, err := pgxpool.New(context.Background(), dsn)
	return &LedgerDB{pool, logger}, err
}

func (p *LedgerDB) logSQL(err error, sql string, args []any) {
	p.logger.Error("SQL error",
		zap.Error(err),
		zap.String("query", sql),
		zap.Any("args", args),
	)
}

// заблокировать строку баланса, при первом обращении создать счет
func (p *LedgerDB) lockBalance(ctx context.Context, tx pgx.Tx, userID string) (balance int64, err error) {
	row := tx.QueryRow(ctx, "SELECT balance FROM accounts WHERE userid = $1 FOR UPDATE", userID)
	err = row.Scan(&balance)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, err
		}
		sql, args, err := sq.Insert("accounts").
			Columns("uuid", "userid", "balance", "premium", "suspended", "updatedat").
			Values(uuid.New(), userID, 0, false, false, time.Now()).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return 0, err
		}
		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return 0, err
		}
		return 0, nil
	}
	return balance, nil
}

// Проверка идемпотентности покупки
func (p *LedgerDB) PurchaseExists(ctx context.Context, transactionID string) (exists bool, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	var one int
	row := conn.QueryRow(ctx, "SELECT 1 FROM purchases WHERE transactionid = $1 LIMIT 1", transactionID)
	err = row.Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Проверка идемпотентности продления подписки
func (p *LedgerDB) RenewalExists(ctx context.Context, userID string, transactionID string) (exists bool, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Release()

	var one int
	row := conn.QueryRow(ctx, "SELECT 1 FROM subscriptions WHERE userid = $1 AND transactionid = $2 LIMIT 1", userID, transactionID)
	err = row.Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Начисление за покупку - одна транзакция: блокировка баланса, запись покупки,
// обновление баланса, запись в журнал. Все или ничего.
func (p *LedgerDB) GrantPurchase(ctx context.Context, purchase model.Purchase, reason string) (newBalance int64, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	balance, err := p.lockBalance(ctx, tx, purchase.UserID)
	if err != nil {
		return 0, err
	}

	// запись покупки, дубль по transactionid отбивает уникальный индекс
	sql, args, err := sq.Insert("purchases").
		Columns("id", "userid", "productid", "transactionid", "points", "receiptdata", "status", "createdat").
		Values(uuid.New(), purchase.UserID, purchase.ProductID, purchase.TransactionID, purchase.Points, purchase.ReceiptData, model.StatusCompleted, time.Now()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL(err, sql, args)
		return 0, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		var pgerr *pgconn.PgError
		if errors.As(err, &pgerr) && pgerr.Code == uniqueViolation {
			err = fmt.Errorf("transaction %s %w", purchase.TransactionID, model.ErrDuplicate)
			return 0, err
		}
		p.logSQL(err, sql, args)
		return 0, err
	}

	newBalance = balance + purchase.Points
	sql, args, err = sq.Update("accounts").
		Set("balance", newBalance).
		Set("updatedat", time.Now()).
		Where(sq.Eq{"userid": purchase.UserID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL(err, sql, args)
		return 0, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return 0, err
	}

	// журнал
	sql, args, err = sq.Insert("tnx").
		Columns("id", "userid", "points", "typetnx", "reason", "createdat").
		Values(uuid.New(), purchase.UserID, purchase.Points, model.TypePurchase, reason, time.Now()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL(err, sql, args)
		return 0, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return 0, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Начисление за подписку - первый месяц создает запись, продление обновляет ее.
// Баланс, premium-флаг, запись подписки и журнал коммитятся вместе.
func (p *LedgerDB) GrantSubscription(ctx context.Context, sub model.Subscription, points int64, reason string) (newBalance int64, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	balance, err := p.lockBalance(ctx, tx, sub.UserID)
	if err != nil {
		return 0, err
	}

	typeTnx := model.TypeSubscriptionMonthly
	if sub.FirstMonth {
		typeTnx = model.TypeSubscriptionFirst
		sql, args, err2 := sq.Insert("subscriptions").
			Columns("id", "userid", "productid", "transactionid", "expiresat", "firstmonth", "totalpoints", "autorenewing", "createdat", "updatedat").
			Values(uuid.New(), sub.UserID, sub.ProductID, sub.TransactionID, sub.ExpiresAt, true, points, true, time.Now(), time.Now()).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err2 != nil {
			err = err2
			p.logSQL(err, sql, args)
			return 0, err
		}
		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			var pgerr *pgconn.PgError
			if errors.As(err, &pgerr) && pgerr.Code == uniqueViolation {
				err = fmt.Errorf("subscription %s %w", sub.TransactionID, model.ErrDuplicate)
				return 0, err
			}
			p.logSQL(err, sql, args)
			return 0, err
		}
	} else {
		// продление: та же запись, новый transactionid обязателен
		sql, args, err2 := sq.Update("subscriptions").
			Set("transactionid", sub.TransactionID).
			Set("expiresat", sub.ExpiresAt).
			Set("firstmonth", false).
			Set("totalpoints", sq.Expr("totalpoints + ?", points)).
			Set("updatedat", time.Now()).
			Where(sq.Eq{"userid": sub.UserID}).
			Where(sq.Eq{"productid": sub.ProductID}).
			Where(sq.NotEq{"transactionid": sub.TransactionID}).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err2 != nil {
			err = err2
			p.logSQL(err, sql, args)
			return 0, err
		}
		tag, err2 := tx.Exec(ctx, sql, args...)
		if err2 != nil {
			err = err2
			var pgerr *pgconn.PgError
			if errors.As(err, &pgerr) && pgerr.Code == uniqueViolation {
				err = fmt.Errorf("subscription %s %w", sub.TransactionID, model.ErrDuplicate)
				return 0, err
			}
			p.logSQL(err, sql, args)
			return 0, err
		}
		if tag.RowsAffected() == 0 {
			err = fmt.Errorf("subscription %s %w", sub.TransactionID, model.ErrDuplicate)
			return 0, err
		}
	}

	newBalance = balance + points
	sql, args, err := sq.Update("accounts").
		Set("balance", newBalance).
		Set("premium", true).
		Set("updatedat", time.Now()).
		Where(sq.Eq{"userid": sub.UserID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL(err, sql, args)
		return 0, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return 0, err
	}

	sql, args, err = sq.Insert("tnx").
		Columns("id", "userid", "points", "typetnx", "reason", "createdat").
		Values(uuid.New(), sub.UserID, points, typeTnx, reason, time.Now()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL(err, sql, args)
		return 0, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return 0, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Подписка пользователя на продукт
func (p *LedgerDB) GetSubscription(ctx context.Context, userID string, productID string) (sub model.Subscription, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return sub, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("id", "userid", "productid", "transactionid", "expiresat", "firstmonth", "totalpoints", "autorenewing", "createdat", "updatedat").
		From("subscriptions").
		Where(sq.Eq{"userid": userID}).
		Where(sq.Eq{"productid": productID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL(err, sql, args)
		return sub, err
	}

	var pguuid pgtype.UUID
	row := conn.QueryRow(ctx, sql, args...)
	err = row.Scan(&pguuid, &sub.UserID, &sub.ProductID, &sub.TransactionID, &sub.ExpiresAt, &sub.FirstMonth, &sub.TotalPoints, &sub.AutoRenewing, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sub, fmt.Errorf("subscription %w", model.ErrNotFound)
		}
		return sub, err
	}
	sub.UUID, _ = uuid.FromBytes(pguuid.Bytes[:])
	return sub, nil
}

// Начисление/списание - отрицательные points списывают, баланс не уходит ниже нуля
func (p *LedgerDB) GrantPoints(ctx context.Context, userID string, points int64, typeTnx string, reason string) (newBalance int64, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	balance, err := p.lockBalance(ctx, tx, userID)
	if err != nil {
		return 0, err
	}
	newBalance = balance + points
	if newBalance < 0 {
		err = fmt.Errorf("user %s: %w", userID, model.ErrInsufficient)
		return 0, err
	}

	sql, args, err := sq.Update("accounts").
		Set("balance", newBalance).
		Set("updatedat", time.Now()).
		Where(sq.Eq{"userid": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL(err, sql, args)
		return 0, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return 0, err
	}

	sql, args, err = sq.Insert("tnx").
		Columns("id", "userid", "points", "typetnx", "reason", "createdat").
		Values(uuid.New(), userID, points, typeTnx, reason, time.Now()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL(err, sql, args)
		return 0, err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return 0, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Получить баланс
func (p *LedgerDB) GetBalance(ctx context.Context, userID string) (points int64, premium bool, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return 0, false, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, "SELECT balance, premium FROM accounts WHERE userid = $1", userID)
	err = row.Scan(&points, &premium)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, fmt.Errorf("user %w", model.ErrNotFound)
		}
		return 0, false, err
	}
	return points, premium, nil
}

// История транзакций, новые первыми
func (p *LedgerDB) GetTnx(ctx context.Context, userID string, limit int, offset int) (tnxs []model.PointTransaction, total int64, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, "SELECT COUNT(*) FROM tnx WHERE userid = $1", userID)
	err = row.Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := sq.Select("id", "userid", "points", "typetnx", "reason", "createdat").
		From("tnx").
		Where(sq.Eq{"userid": userID}).
		OrderBy("createdat DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL(err, sql, args)
		return nil, 0, err
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reason pgtype.Text
	for rows.Next() {
		var tnx model.PointTransaction
		err = rows.Scan(&tnx.UUID, &tnx.UserID, &tnx.Points, &tnx.TypeTnx, &reason, &tnx.CreatedAt)
		if err != nil {
			return nil, 0, err
		}
		tnx.Reason = reason.String
		tnxs = append(tnxs, tnx)
	}
	return tnxs, total, nil
}

// UUID счета, при первом обращении счет создается
func (p *LedgerDB) GetUserUUID(ctx context.Context, userID string) (account uuid.UUID, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer conn.Release()

	var pguuid pgtype.UUID
	row := conn.QueryRow(ctx, "SELECT uuid FROM accounts WHERE userid = $1", userID)
	err = row.Scan(&pguuid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p.createAccount(ctx, userID)
		}
		return uuid.Nil, err
	}
	account, _ = uuid.FromBytes(pguuid.Bytes[:])
	return account, nil
}

func (p *LedgerDB) createAccount(ctx context.Context, userID string) (account uuid.UUID, err error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer conn.Release()

	account = uuid.New()
	sql, args, err := sq.Insert("accounts").
		Columns("uuid", "userid", "balance", "premium", "suspended", "updatedat").
		Values(account, userID, 0, false, false, time.Now()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		p.logSQL(err, sql, args)
		return uuid.Nil, err
	}
	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		p.logSQL(err, sql, args)
		return uuid.Nil, err
	}
	return account, nil
}
