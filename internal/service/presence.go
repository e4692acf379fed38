package service

import (
	"context"
	"errors"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/constants"
	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/NahoooMac/wedhabesha-sub007/internal/repository"
	"go.uber.org/zap"
)

// PresenceService tracks the last known connection state per user. Writes
// are last-writer-wins; a user with no row is reported offline.
type PresenceService interface {
	SetOnline(ctx context.Context, cmd SetOnlineCommand) (PresenceResponse, error)
	SetOffline(ctx context.Context, cmd SetOfflineCommand) (PresenceResponse, error)
	GetPresence(ctx context.Context, userID int64) (PresenceResponse, error)
	IsOnline(ctx context.Context, userID int64) (bool, error)
}

type presence struct {
	presenceRepo repository.PresenceRepository
	logger       *zap.Logger
}

func NewPresenceService(presenceRepo repository.PresenceRepository, logger *zap.Logger) PresenceService {
	return &presence{presenceRepo: presenceRepo, logger: logger}
}

func (p *presence) SetOnline(ctx context.Context, cmd SetOnlineCommand) (PresenceResponse, error) {
	userType := model.UserType(cmd.UserType)
	if !userType.Valid() {
		return PresenceResponse{}, NewServiceError(constants.ErrCodeInvalidUserType,
			errors.New("unknown user type: "+cmd.UserType))
	}

	if cmd.SocketID == "" {
		return PresenceResponse{}, NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("socket_id is required when going online"))
	}

	now := time.Now().UTC()
	status := model.ConnectionStatus{
		UserID:   cmd.UserID,
		UserType: userType,
		IsOnline: true,
		LastSeen: now,
		SocketID: cmd.SocketID,
	}

	if err := p.presenceRepo.SetOnline(ctx, &status); err != nil {
		p.logger.Error("Failed to set user online",
			zap.Int64("userID", cmd.UserID),
			zap.Error(err))
		return PresenceResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	p.logger.Debug("User online",
		zap.Int64("userID", cmd.UserID),
		zap.String("socketID", cmd.SocketID))

	return PresenceResponse{
		UserID:   cmd.UserID,
		UserType: cmd.UserType,
		Online:   true,
		LastSeen: formatTime(now),
		SocketID: cmd.SocketID,
	}, nil
}

func (p *presence) SetOffline(ctx context.Context, cmd SetOfflineCommand) (PresenceResponse, error) {
	now := time.Now().UTC()

	if err := p.presenceRepo.SetOffline(ctx, cmd.UserID, now); err != nil {
		p.logger.Error("Failed to set user offline",
			zap.Int64("userID", cmd.UserID),
			zap.Error(err))
		return PresenceResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	p.logger.Debug("User offline", zap.Int64("userID", cmd.UserID))

	return PresenceResponse{UserID: cmd.UserID, Online: false, LastSeen: formatTime(now)}, nil
}

func (p *presence) GetPresence(ctx context.Context, userID int64) (PresenceResponse, error) {
	status, err := p.presenceRepo.Get(userID)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return PresenceResponse{UserID: userID, Online: false}, nil
		}

		p.logger.Error("Failed to load presence", zap.Int64("userID", userID), zap.Error(err))
		return PresenceResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	return PresenceResponse{
		UserID:   status.UserID,
		UserType: string(status.UserType),
		Online:   status.IsOnline,
		LastSeen: formatTime(status.LastSeen),
		SocketID: status.SocketID,
	}, nil
}

func (p *presence) IsOnline(ctx context.Context, userID int64) (bool, error) {
	status, err := p.presenceRepo.Get(userID)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return false, nil
		}

		return false, err
	}

	return status.IsOnline, nil
}
