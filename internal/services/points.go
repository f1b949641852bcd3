package services

import (
	"context"
	"encoding/json"
	"fmt"

	interf "github.com/glkeru/kvote/internal/interfaces"
	model "github.com/glkeru/kvote/internal/models"
	"go.uber.org/zap"
)

const (
	historyDefaultLimit = 20
	historyMaxLimit     = 100
)

type PointsService struct {
	logger *zap.Logger
	db     interf.LedgerStorage
	cache  interf.CacheStorage
}

func NewPointsService(logger *zap.Logger, db interf.LedgerStorage, cache interf.CacheStorage) *PointsService {
	return &PointsService{logger, db, cache}
}

func (p *PointsService) Log(err error) {
	p.logger.Error(err.Error())
}

// баланс
func (p *PointsService) GetBalance(ctx context.Context, user string) (points int64, premium bool, err error) {
	// cache
	if p.cache != nil {
		points, premium, err = p.cache.GetBalance(ctx, user)
		if err != nil {
			// database
			points, premium, err = p.db.GetBalance(ctx, user)
			if err != nil {
				return 0, false, err
			}
			_ = p.cache.SetBalance(ctx, user, points, premium)
		}
	} else {
		points, premium, err = p.db.GetBalance(ctx, user)
		if err != nil {
			return 0, false, err
		}
	}
	return
}

// история транзакций, limit ограничен сверху
func (p *PointsService) GetHistory(ctx context.Context, user string, limit int, offset int) (tnxs []model.PointTransaction, total int64, err error) {
	if limit <= 0 {
		limit = historyDefaultLimit
	}
	if limit > historyMaxLimit {
		limit = historyMaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	tnxs, total, err = p.db.GetTnx(ctx, user, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return tnxs, total, nil
}

// административное начисление/списание
type GrantRequest struct {
	UserID string `json:"uid"`
	Points int64  `json:"points"`
	Reason string `json:"reason"`
}

func ParseGrant(grantJson string) (grant GrantRequest, err error) {
	err = json.Unmarshal([]byte(grantJson), &grant)
	if err != nil {
		return
	}
	if grant.UserID == "" {
		return GrantRequest{}, fmt.Errorf("Invalid grant: uid field is required")
	}
	if grant.Points == 0 {
		return GrantRequest{}, fmt.Errorf("Invalid grant: points field is required")
	}
	return grant, nil
}

func (p *PointsService) Grant(ctx context.Context, grantJson string) (userID string, newBalance int64, err error) {
	grant, err := ParseGrant(grantJson)
	if err != nil {
		return "", 0, err
	}

	typeTnx := model.TypeGrant
	if grant.Points < 0 {
		typeTnx = model.TypeDeduct
	}
	newBalance, err = p.db.GrantPoints(ctx, grant.UserID, grant.Points, typeTnx, grant.Reason)
	if err != nil {
		return grant.UserID, 0, err
	}

	if p.cache != nil {
		err = p.cache.InvalidateBalance(ctx, grant.UserID)
		if err != nil {
			p.Log(err)
		}
	}
	return grant.UserID, newBalance, nil
}
