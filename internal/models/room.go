package models

import "gorm.io/gorm"

type Room struct {
	gorm.Model

	Name    string `gorm:"not null"`
	Slug    string `gorm:"not null;uniqueIndex:idx_owner_slug"`
	OwnerID uint   `gorm:"not null;uniqueIndex:idx_owner_slug"`

	// Relationships
	Owner   User     `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Members []User   `gorm:"many2many:room_members"`
	Invites []Invite `gorm:"foreignKey:RoomID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
