package mocks

import (
	"context"

	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/stretchr/testify/mock"
)

type PresenceService struct {
	mock.Mock
}

func (p *PresenceService) SetOnline(ctx context.Context, cmd service.SetOnlineCommand) (service.PresenceResponse, error) {
	args := p.Called(ctx, cmd)
	return args.Get(0).(service.PresenceResponse), args.Error(1)
}

func (p *PresenceService) SetOffline(ctx context.Context, cmd service.SetOfflineCommand) (service.PresenceResponse, error) {
	args := p.Called(ctx, cmd)
	return args.Get(0).(service.PresenceResponse), args.Error(1)
}

func (p *PresenceService) GetPresence(ctx context.Context, userID int64) (service.PresenceResponse, error) {
	args := p.Called(ctx, userID)
	return args.Get(0).(service.PresenceResponse), args.Error(1)
}

func (p *PresenceService) IsOnline(ctx context.Context, userID int64) (bool, error) {
	args := p.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
