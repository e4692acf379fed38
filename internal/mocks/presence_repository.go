package mocks

import (
	"context"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/stretchr/testify/mock"
)

type PresenceRepository struct {
	mock.Mock
}

func (p *PresenceRepository) SetOnline(ctx context.Context, status *model.ConnectionStatus) error {
	args := p.Called(ctx, status)
	return args.Error(0)
}

func (p *PresenceRepository) SetOffline(ctx context.Context, userID int64, at time.Time) error {
	args := p.Called(ctx, userID, at)
	return args.Error(0)
}

func (p *PresenceRepository) Get(userID int64) (*model.ConnectionStatus, error) {
	args := p.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConnectionStatus), args.Error(1)
}
