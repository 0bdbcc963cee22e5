package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 类别模型（用户自建，带图标和收支类型）
// 未加 (user_id, name, type) 唯一约束：重复创建由前端选择器规避
type Category struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	Name      string         `json:"name" gorm:"size:50;not null"`
	Icon      string         `json:"icon" gorm:"size:20;not null"` // 一般为单个 emoji
	Type      string         `json:"type" gorm:"size:10;not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}
