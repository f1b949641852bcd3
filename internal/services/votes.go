package services

import (
	"context"
	"encoding/json"
	"fmt"

	interf "github.com/glkeru/kvote/internal/interfaces"
	model "github.com/glkeru/kvote/internal/models"
	"go.uber.org/zap"
)

// Обработка голосов: событие голосования списывает стоимость голоса
type VotesService struct {
	logger *zap.Logger
	db     interf.LedgerStorage
	cache  interf.CacheStorage
}

func NewVotesService(logger *zap.Logger, db interf.LedgerStorage, cache interf.CacheStorage) *VotesService {
	return &VotesService{logger, db, cache}
}

type VoteEvent struct {
	UserID   string `json:"userId"`
	VoteID   string `json:"voteId"`
	ChoiceID string `json:"choiceId"`
	Points   int64  `json:"points"` // стоимость голоса
}

func ParseVote(voteJson string) (event VoteEvent, err error) {
	err = json.Unmarshal([]byte(voteJson), &event)
	if err != nil {
		return
	}
	if event.UserID == "" {
		return VoteEvent{}, fmt.Errorf("Invalid vote: userId field is required")
	}
	if event.VoteID == "" {
		return VoteEvent{}, fmt.Errorf("Invalid vote: voteId field is required")
	}
	if event.ChoiceID == "" {
		return VoteEvent{}, fmt.Errorf("Invalid vote: choiceId field is required")
	}
	if event.Points <= 0 {
		return VoteEvent{}, fmt.Errorf("Invalid vote: points must be positive")
	}
	return event, nil
}

// списание за голос, при нехватке баллов событие отклоняется
func (v *VotesService) ProcessVote(ctx context.Context, voteJson string) error {
	event, err := ParseVote(voteJson)
	if err != nil {
		return err
	}

	reason := fmt.Sprintf("投票 (%s/%s)", event.VoteID, event.ChoiceID)
	_, err = v.db.GrantPoints(ctx, event.UserID, -event.Points, model.TypeVote, reason)
	if err != nil {
		return err
	}

	if v.cache != nil {
		err = v.cache.InvalidateBalance(ctx, event.UserID)
		if err != nil {
			v.logger.Error(err.Error())
		}
	}

	v.logger.Info("vote processed",
		zap.String("user", event.UserID),
		zap.String("vote", event.VoteID),
		zap.Int64("points", event.Points),
	)
	return nil
}
