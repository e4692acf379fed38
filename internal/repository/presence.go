package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrConnectionNotFound = errors.New("CONNECTION_NOT_FOUND")

type PresenceRepository interface {
	SetOnline(ctx context.Context, status *model.ConnectionStatus) error
	SetOffline(ctx context.Context, userID int64, at time.Time) error
	Get(userID int64) (*model.ConnectionStatus, error)
}

type Presence struct {
	db *gorm.DB
}

func NewPresenceRepository(db *gorm.DB) PresenceRepository {
	return &Presence{db: db}
}

func (p *Presence) SetOnline(ctx context.Context, status *model.ConnectionStatus) error {
	db := GetTx(ctx, p.db)

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_type", "is_online", "last_seen", "socket_id"}),
	}).Create(status).Error
}

// SetOffline clears the connection but keeps user_type from the last
// online row so the record stays attributable.
func (p *Presence) SetOffline(ctx context.Context, userID int64, at time.Time) error {
	db := GetTx(ctx, p.db)

	status := model.ConnectionStatus{
		UserID:   userID,
		IsOnline: false,
		LastSeen: at,
		SocketID: "",
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_online", "last_seen", "socket_id"}),
	}).Create(&status).Error
}

func (p *Presence) Get(userID int64) (*model.ConnectionStatus, error) {
	var status model.ConnectionStatus

	err := p.db.Where("user_id = ?", userID).First(&status).Error
	if err == nil {
		return &status, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConnectionNotFound
	}

	return nil, err
}
