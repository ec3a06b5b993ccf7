package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	DisplayName   string
	GivenName     string
	FamilyName    string
	GoogleID      string `gorm:"uniqueIndex;not null"`
	ProfileImgURL string
	Email         string `gorm:"not null"`
	EmailVerified bool
	Tokens        datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	OwnedRooms []Room   `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Invites    []Invite `gorm:"foreignKey:ToID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// ProviderTokens is the cached Google credential stored on the user row.
// Overwritten on every login; refreshed tokens are written back by the
// calendar handler.
type ProviderTokens struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Scope        string    `json:"scope"`
	TokenType    string    `json:"token_type"`
	Expiry       time.Time `json:"expiry"`
}
