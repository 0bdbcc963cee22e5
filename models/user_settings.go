package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultCurrency 新用户首次访问设置时自动创建的默认币种
const DefaultCurrency = "USD"

// UserSettings 用户偏好设置（目前只有展示币种）
type UserSettings struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	Currency  string         `json:"currency" gorm:"size:10;not null;default:USD"` // ISO-4217 币种代码
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (UserSettings) TableName() string {
	return "user_settings"
}
