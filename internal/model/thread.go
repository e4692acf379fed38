package model

import "time"

type UserType string

const (
	UserTypeCouple UserType = "couple"
	UserTypeVendor UserType = "vendor"
)

func (t UserType) Valid() bool {
	return t == UserTypeCouple || t == UserTypeVendor
}

// Other returns the opposite side of a two-party thread.
func (t UserType) Other() UserType {
	if t == UserTypeCouple {
		return UserTypeVendor
	}
	return UserTypeCouple
}

type MessageThread struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	CoupleID      int64     `gorm:"column:couple_id;index:idx_couple_vendor,unique"`
	VendorID      int64     `gorm:"column:vendor_id;index:idx_couple_vendor,unique"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
	LastMessageAt time.Time `gorm:"column:last_message_at;index"`
	IsActive      bool      `gorm:"column:is_active;default:true"`
	LeadID        *int64    `gorm:"column:lead_id"`
	ServiceType   *string   `gorm:"column:service_type;type:varchar(64)"`
}

func (MessageThread) TableName() string { return "message_threads" }

// ParticipantID returns the user id occupying the given side of the thread.
func (t *MessageThread) ParticipantID(side UserType) int64 {
	if side == UserTypeCouple {
		return t.CoupleID
	}
	return t.VendorID
}

func (t *MessageThread) IsParticipant(userID int64, side UserType) bool {
	return side.Valid() && t.ParticipantID(side) == userID
}
