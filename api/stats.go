package api

import (
	"budget/config"
	"budget/database"
	"budget/middleware"
	"budget/models"
	"budget/schema"

	"github.com/gin-gonic/gin"
)

// StatsHandler 统计处理器
// 日期跨度上限来自配置，在构造时注入
type StatsHandler struct {
	cfg *config.Config
}

// NewStatsHandler 创建统计处理器
func NewStatsHandler(cfg *config.Config) *StatsHandler {
	return &StatsHandler{cfg: cfg}
}

// BalanceStatsResponse 收支汇总返回
// 只报告收入和支出两个数字，结余(income - expense)由前端计算
type BalanceStatsResponse struct {
	Income  float64 `json:"income" example:"5000.00"`  // 区间内收入总和
	Expense float64 `json:"expense" example:"123.45"` // 区间内支出总和
}

// CategoryStat 按类别统计条目
type CategoryStat struct {
	Type         string  `json:"type"`
	Category     string  `json:"category"`
	CategoryIcon string  `json:"category_icon"`
	Total        float64 `json:"total"`
}

// GetBalance 获取收支汇总
// @Summary 获取收支汇总
// @Description 统计当前用户在 [from, to] 闭区间内的收入总和与支出总和。区间按天计算，跨度不能超过配置的最大天数。求和在数据库内对 DECIMAL 列完成，没有匹配记录的一侧返回 0。
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param from query string true "开始日期 (2024-01-01)"
// @Param to query string true "结束日期 (2024-01-31)"
// @Success 200 {object} Response{data=BalanceStatsResponse} "获取成功"
// @Failure 400 {object} Response "日期区间不合法"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/stats/balance [get]
func (h *StatsHandler) GetBalance(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	r, err := schema.ParseDateRange(c.Query("from"), c.Query("to"), h.cfg.Stats.MaxDateRangeDays)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	// 按收支类型分组求和，SUM 在数据库内对 DECIMAL 列执行，
	// Go 侧不做浮点累加
	type typeTotal struct {
		Type  string  `json:"type"`
		Total float64 `json:"total"`
	}
	var rows []typeTotal
	if err := database.DB.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND transaction_time >= ? AND transaction_time <= ?", userID, r.From, r.To).
		Group("type").
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 没有记录的一侧报告 0，而不是缺失
	resp := BalanceStatsResponse{}
	for _, row := range rows {
		switch row.Type {
		case models.TransactionTypeIncome:
			resp.Income = row.Total
		case models.TransactionTypeExpense:
			resp.Expense = row.Total
		}
	}

	Success(c, resp)
}

// GetCategoryStats 获取按类别统计
// @Summary 获取按类别统计
// @Description 统计当前用户在 [from, to] 闭区间内各类别的收支总和，按总额降序返回
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param from query string true "开始日期 (2024-01-01)"
// @Param to query string true "结束日期 (2024-01-31)"
// @Success 200 {object} Response{data=[]CategoryStat} "获取成功"
// @Failure 400 {object} Response "日期区间不合法"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/stats/categories [get]
func (h *StatsHandler) GetCategoryStats(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	r, err := schema.ParseDateRange(c.Query("from"), c.Query("to"), h.cfg.Stats.MaxDateRangeDays)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	var stats []CategoryStat
	if err := database.DB.Model(&models.Transaction{}).
		Select("type, category, category_icon, SUM(amount) as total").
		Where("user_id = ? AND transaction_time >= ? AND transaction_time <= ?", userID, r.From, r.To).
		Group("type, category, category_icon").
		Order("total DESC").
		Scan(&stats).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, stats)
}
