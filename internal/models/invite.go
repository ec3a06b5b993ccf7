package models

import "gorm.io/gorm"

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRejected InviteStatus = "rejected"
)

// ParseInviteStatus validates a client-supplied status literal.
func ParseInviteStatus(s string) (InviteStatus, bool) {
	switch InviteStatus(s) {
	case InviteStatusPending, InviteStatusAccepted, InviteStatusRejected:
		return InviteStatus(s), true
	}
	return "", false
}

type Invite struct {
	gorm.Model

	FromID uint         `gorm:"not null;index"`
	ToID   uint         `gorm:"not null;index"`
	RoomID uint         `gorm:"not null;index"`
	Status InviteStatus `gorm:"size:20;not null;default:'pending'"`

	// Relationships
	From User `gorm:"foreignKey:FromID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	To   User `gorm:"foreignKey:ToID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Room Room `gorm:"foreignKey:RoomID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
