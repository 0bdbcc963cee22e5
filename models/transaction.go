package models

import (
	"time"

	"gorm.io/gorm"
)

// 收支类型（闭合枚举，只允许 income / expense 两个值）
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// IsValidTransactionType 校验收支类型是否合法
func IsValidTransactionType(t string) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction 交易记录模型
// 类别名称和图标冗余存储在交易行上，删除类别不影响历史记录
type Transaction struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"index;not null"`
	Amount          float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description     string         `json:"description" gorm:"size:255"`
	Type            string         `json:"type" gorm:"size:10;not null;index"`
	Category        string         `json:"category" gorm:"size:50;not null"`
	CategoryIcon    string         `json:"category_icon" gorm:"size:20"`
	TransactionTime time.Time      `json:"transaction_time" gorm:"not null;index"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
	User            User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}
