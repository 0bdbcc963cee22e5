package api

import (
	"strconv"
	"time"

	"budget/database"
	"budget/middleware"
	"budget/models"

	"github.com/gin-gonic/gin"
)

// HistoryHandler 历史视图处理器
// 给前端的历史图表提供按天/按月聚合的数据
type HistoryHandler struct{}

// NewHistoryHandler 创建历史视图处理器
func NewHistoryHandler() *HistoryHandler {
	return &HistoryHandler{}
}

// HistoryBucket 历史视图单个时间桶
// timeframe=month 时一天一个桶（Day 有值），timeframe=year 时一月一个桶（Day 为 0）
type HistoryBucket struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Day     int     `json:"day,omitempty"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// GetPeriods 获取有数据的年份列表
// @Summary 获取历史年份列表
// @Description 返回当前用户存在交易记录的年份（升序），没有任何记录时返回当前年份
// @Tags 历史
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]int} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/history/periods [get]
func (h *HistoryHandler) GetPeriods(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var years []int
	if err := database.DB.Model(&models.Transaction{}).
		Select("DISTINCT YEAR(transaction_time) AS year").
		Where("user_id = ?", userID).
		Order("year ASC").
		Scan(&years).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	if len(years) == 0 {
		years = []int{time.Now().UTC().Year()}
	}

	Success(c, years)
}

// GetHistoryData 获取历史聚合数据
// @Summary 获取历史聚合数据
// @Description 按月视图（timeframe=month，逐天）或按年视图（timeframe=year，逐月）返回收支聚合，空桶补 0
// @Tags 历史
// @Produce json
// @Security BearerAuth
// @Param timeframe query string true "聚合粒度" Enums(month,year)
// @Param year query int true "年份（如 2024）"
// @Param month query int false "月份 1-12（timeframe=month 时必填）"
// @Success 200 {object} Response{data=[]HistoryBucket} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/history/data [get]
func (h *HistoryHandler) GetHistoryData(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		BadRequest(c, "year格式错误，应为4位数字（如：2024）")
		return
	}

	switch c.Query("timeframe") {
	case "month":
		month, err := strconv.Atoi(c.Query("month"))
		if err != nil || month < 1 || month > 12 {
			BadRequest(c, "timeframe=month时，month参数必填（1-12）")
			return
		}
		h.monthHistory(c, userID, year, month)
	case "year":
		h.yearHistory(c, userID, year)
	default:
		BadRequest(c, "timeframe参数值错误，可选值：month、year")
	}
}

// monthHistory 月视图：该月每天一个桶
func (h *HistoryHandler) monthHistory(c *gin.Context, userID uint, year, month int) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	type dayTotal struct {
		Day   int
		Type  string
		Total float64
	}
	var rows []dayTotal
	if err := database.DB.Model(&models.Transaction{}).
		Select("DAY(transaction_time) as day, type, SUM(amount) as total").
		Where("user_id = ? AND transaction_time >= ? AND transaction_time <= ?", userID, start, end).
		Group("DAY(transaction_time), type").
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	daysInMonth := start.AddDate(0, 1, -1).Day()
	buckets := make([]HistoryBucket, daysInMonth)
	for i := range buckets {
		buckets[i] = HistoryBucket{Year: year, Month: month, Day: i + 1}
	}
	for _, row := range rows {
		if row.Day < 1 || row.Day > daysInMonth {
			continue
		}
		b := &buckets[row.Day-1]
		switch row.Type {
		case models.TransactionTypeIncome:
			b.Income = row.Total
		case models.TransactionTypeExpense:
			b.Expense = row.Total
		}
	}

	Success(c, buckets)
}

// yearHistory 年视图：每月一个桶
func (h *HistoryHandler) yearHistory(c *gin.Context, userID uint, year int) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 23, 59, 59, 0, time.UTC)

	type monthTotal struct {
		Month int
		Type  string
		Total float64
	}
	var rows []monthTotal
	if err := database.DB.Model(&models.Transaction{}).
		Select("MONTH(transaction_time) as month, type, SUM(amount) as total").
		Where("user_id = ? AND transaction_time >= ? AND transaction_time <= ?", userID, start, end).
		Group("MONTH(transaction_time), type").
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	buckets := make([]HistoryBucket, 12)
	for i := range buckets {
		buckets[i] = HistoryBucket{Year: year, Month: i + 1}
	}
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		b := &buckets[row.Month-1]
		switch row.Type {
		case models.TransactionTypeIncome:
			b.Income = row.Total
		case models.TransactionTypeExpense:
			b.Expense = row.Total
		}
	}

	Success(c, buckets)
}
