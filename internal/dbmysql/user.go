package dbmysql

import (
	"time"
)

// UserReplica is the message service's copy of an identity-service user.
type UserReplica struct {
	UserID    int64     `gorm:"primaryKey;column:user_id;autoIncrement:false" json:"user_id"`
	Username  string    `gorm:"column:username;size:50;not null" json:"username"`
	Avatar    string    `gorm:"column:avatar;size:255" json:"avatar"`
	IsActive  bool      `gorm:"column:is_active;not null" json:"is_active"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserReplica) TableName() string { return "user_replicas" }
