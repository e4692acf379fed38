package model

import "time"

// ConnectionStatus is the last-known presence of a user, one row per user.
// SocketID is the opaque handle the realtime transport uses to target a live
// session; it is cleared when the user goes offline.
type ConnectionStatus struct {
	UserID   int64     `gorm:"primaryKey;column:user_id;<-:create"`
	UserType UserType  `gorm:"column:user_type;type:varchar(16)"`
	IsOnline bool      `gorm:"column:is_online"`
	LastSeen time.Time `gorm:"column:last_seen"`
	SocketID string    `gorm:"column:socket_id;type:varchar(128)"`
}

func (ConnectionStatus) TableName() string { return "user_connection_status" }
