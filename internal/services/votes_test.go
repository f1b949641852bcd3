package services

import (
	"context"
	"testing"

	"github.com/glkeru/kvote/internal/mocks"
	model "github.com/glkeru/kvote/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestParseVote(t *testing.T) {
	tests := []struct {
		Name  string
		Json  string
		Valid bool
	}{
		{"Валидное событие", `{"userId": "user-1", "voteId": "vote-1", "choiceId": "idol-7", "points": 100}`, true},
		{"Без userId", `{"voteId": "vote-1", "choiceId": "idol-7", "points": 100}`, false},
		{"Без voteId", `{"userId": "user-1", "choiceId": "idol-7", "points": 100}`, false},
		{"Без choiceId", `{"userId": "user-1", "voteId": "vote-1", "points": 100}`, false},
		{"Нулевая стоимость", `{"userId": "user-1", "voteId": "vote-1", "choiceId": "idol-7", "points": 0}`, false},
		{"Отрицательная стоимость", `{"userId": "user-1", "voteId": "vote-1", "choiceId": "idol-7", "points": -10}`, false},
		{"Битый json", `{userId}`, false},
	}

	for _, ts := range tests {
		ts := ts
		t.Run(ts.Name, func(t *testing.T) {
			_, err := ParseVote(ts.Json)
			if ts.Valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestProcessVote(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	cache := mocks.NewMockCacheStorage(cont)

	db.EXPECT().
		GrantPoints(gomock.Any(), "user-1", int64(-100), model.TypeVote, "投票 (vote-1/idol-7)").
		Return(int64(400), nil)
	cache.EXPECT().
		InvalidateBalance(gomock.Any(), "user-1").
		Return(nil)

	serv := NewVotesService(zap.NewNop(), db, cache)
	err := serv.ProcessVote(context.Background(), `{"userId": "user-1", "voteId": "vote-1", "choiceId": "idol-7", "points": 100}`)
	require.NoError(t, err)
}

// нехватка баллов: событие отклоняется, кеш не трогаем
func TestProcessVoteInsufficient(t *testing.T) {
	cont := gomock.NewController(t)
	defer cont.Finish()

	db := mocks.NewMockLedgerStorage(cont)
	db.EXPECT().
		GrantPoints(gomock.Any(), "user-1", int64(-1000), model.TypeVote, gomock.Any()).
		Return(int64(0), model.ErrInsufficient)

	serv := NewVotesService(zap.NewNop(), db, nil)
	err := serv.ProcessVote(context.Background(), `{"userId": "user-1", "voteId": "vote-1", "choiceId": "idol-7", "points": 1000}`)
	require.ErrorIs(t, err, model.ErrInsufficient)
}
