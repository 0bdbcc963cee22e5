package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"budget/config"
	"budget/database"
	"budget/middleware"
	"budget/models"
	"budget/schema"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	cfg *config.Config
}

// NewExportHandler 创建导出处理器
func NewExportHandler(cfg *config.Config) *ExportHandler {
	return &ExportHandler{cfg: cfg}
}

// queryRange 解析导出的日期区间并查询区间内的交易记录
func (h *ExportHandler) queryRange(c *gin.Context) ([]models.Transaction, schema.DateRange, bool) {
	userID := middleware.GetCurrentUserID(c)

	r, err := schema.ParseDateRange(c.Query("from"), c.Query("to"), h.cfg.Stats.MaxDateRangeDays)
	if err != nil {
		BadRequest(c, err.Error())
		return nil, schema.DateRange{}, false
	}

	var transactions []models.Transaction
	if err := database.DB.
		Where("user_id = ? AND transaction_time >= ? AND transaction_time <= ?", userID, r.From, r.To).
		Order("transaction_time DESC").
		Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return nil, schema.DateRange{}, false
	}
	return transactions, r, true
}

// ExportCSV 导出交易记录为 CSV
// @Summary 导出交易记录为 CSV
// @Description 导出指定日期区间内当前用户的交易记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param from query string true "开始日期 (2024-01-01)"
// @Param to query string true "结束日期 (2024-01-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "日期区间不合法"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	transactions, r, ok := h.queryRange(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "类型", "金额", "类别", "描述", "交易时间", "创建时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, tx := range transactions {
		row := []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Type,
			fmt.Sprintf("%.2f", tx.Amount),
			tx.Category,
			tx.Description,
			tx.TransactionTime.Format("2006-01-02 15:04:05"),
			tx.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.csv", r.From.Format("2006-01-02"), r.To.Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出交易记录为 JSON
// @Summary 导出交易记录为 JSON
// @Description 导出指定日期区间内当前用户的交易记录为 JSON
// @Tags 导出
// @Produce json
// @Security BearerAuth
// @Param from query string true "开始日期 (2024-01-01)"
// @Param to query string true "结束日期 (2024-01-31)"
// @Success 200 {object} Response{data=[]models.Transaction} "导出成功"
// @Failure 400 {object} Response "日期区间不合法"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	transactions, r, ok := h.queryRange(c)
	if !ok {
		return
	}

	Success(c, gin.H{
		"from":         r.From.Format("2006-01-02"),
		"to":           r.To.Format("2006-01-02"),
		"total_count":  len(transactions),
		"transactions": transactions,
	})
}

// ExportExcel 导出交易记录为 Excel
// @Summary 导出交易记录为 Excel
// @Description 导出指定日期区间内当前用户的交易记录为 xlsx 文件
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string true "开始日期 (2024-01-01)"
// @Param to query string true "结束日期 (2024-01-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "日期区间不合法"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	transactions, r, ok := h.queryRange(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Transactions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "类型", "金额", "类别", "描述", "交易时间", "创建时间"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for rowIdx, tx := range transactions {
		values := []interface{}{
			tx.ID,
			tx.Type,
			tx.Amount,
			tx.Category,
			tx.Description,
			tx.TransactionTime.Format("2006-01-02 15:04:05"),
			tx.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.xlsx", r.From.Format("2006-01-02"), r.To.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
