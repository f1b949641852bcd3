package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/glkeru/kvote/internal/mocks"
	model "github.com/glkeru/kvote/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// попадание в кеш: база не трогается
func TestGetBalanceCacheHit(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	cache := mocks.NewMockCacheStorage(cont)

	cache.EXPECT().
		GetBalance(gomock.Any(), "user-1").
		Return(int64(500), true, nil)

	serv := NewPointsService(zap.NewNop(), db, cache)
	points, premium, err := serv.GetBalance(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, points, int64(500))
	require.True(t, premium)
}

// промах кеша: читаем базу и прогреваем кеш
func TestGetBalanceCacheMiss(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	cache := mocks.NewMockCacheStorage(cont)

	cache.EXPECT().
		GetBalance(gomock.Any(), "user-1").
		Return(int64(0), false, fmt.Errorf("cache miss"))
	db.EXPECT().
		GetBalance(gomock.Any(), "user-1").
		Return(int64(300), false, nil)
	cache.EXPECT().
		SetBalance(gomock.Any(), "user-1", int64(300), false).
		Return(nil)

	serv := NewPointsService(zap.NewNop(), db, cache)
	points, premium, err := serv.GetBalance(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, points, int64(300))
	require.False(t, premium)
}

func TestGetBalanceNoCache(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	db.EXPECT().
		GetBalance(gomock.Any(), "user-1").
		Return(int64(0), false, model.ErrNotFound)

	serv := NewPointsService(zap.NewNop(), db, nil)
	_, _, err := serv.GetBalance(context.Background(), "user-1")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestGetHistoryLimits(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	tests := []struct {
		Name     string
		Limit    int
		Offset   int
		Expected int
		ExpOff   int
	}{
		{"Дефолтный лимит", 0, 0, 20, 0},
		{"Отрицательный лимит", -5, 0, 20, 0},
		{"Лимит в пределах", 50, 10, 50, 10},
		{"Лимит выше максимума", 500, 0, 100, 0},
		{"Отрицательный offset", 20, -3, 20, 0},
	}

	for _, ts := range tests {
		ts := ts
		t.Run(ts.Name, func(t *testing.T) {
			db := mocks.NewMockLedgerStorage(cont)
			db.EXPECT().
				GetTnx(gomock.Any(), "user-1", ts.Expected, ts.ExpOff).
				Return([]model.PointTransaction{}, int64(0), nil)

			serv := NewPointsService(zap.NewNop(), db, nil)
			_, _, err := serv.GetHistory(context.Background(), "user-1", ts.Limit, ts.Offset)
			require.NoError(t, err)
		})
	}
}

func TestParseGrant(t *testing.T) {
	tests := []struct {
		Name  string
		Json  string
		Valid bool
	}{
		{"Начисление", `{"uid": "user-1", "points": 500, "reason": "campaign"}`, true},
		{"Списание", `{"uid": "user-1", "points": -200}`, true},
		{"Без uid", `{"points": 500}`, false},
		{"Без points", `{"uid": "user-1"}`, false},
		{"Битый json", `{uid: user-1}`, false},
	}

	for _, ts := range tests {
		ts := ts
		t.Run(ts.Name, func(t *testing.T) {
			_, err := ParseGrant(ts.Json)
			if ts.Valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestGrant(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	cache := mocks.NewMockCacheStorage(cont)

	db.EXPECT().
		GrantPoints(gomock.Any(), "user-1", int64(500), model.TypeGrant, "Компенсация").
		Return(int64(800), nil)
	cache.EXPECT().
		InvalidateBalance(gomock.Any(), "user-1").
		Return(nil)

	serv := NewPointsService(zap.NewNop(), db, cache)
	userID, newBalance, err := serv.Grant(context.Background(), `{"uid": "user-1", "points": 500, "reason": "Компенсация"}`)
	require.NoError(t, err)
	require.Equal(t, userID, "user-1")
	require.Equal(t, newBalance, int64(800))
}

// отрицательные баллы = списание
func TestGrantDeduct(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	db.EXPECT().
		GrantPoints(gomock.Any(), "user-1", int64(-200), model.TypeDeduct, "").
		Return(int64(0), model.ErrInsufficient)

	serv := NewPointsService(zap.NewNop(), db, nil)
	_, _, err := serv.Grant(context.Background(), `{"uid": "user-1", "points": -200}`)
	require.ErrorIs(t, err, model.ErrInsufficient)
}
