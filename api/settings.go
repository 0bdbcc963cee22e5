package api

import (
	"budget/database"
	"budget/middleware"
	"budget/models"

	"github.com/gin-gonic/gin"
)

// SettingsHandler 用户设置处理器
type SettingsHandler struct{}

// NewSettingsHandler 创建用户设置处理器
func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{}
}

// UpdateSettingsRequest 更新设置请求
type UpdateSettingsRequest struct {
	Currency string `json:"currency" binding:"required" example:"EUR"` // ISO-4217 币种代码
}

// Get 获取用户设置
// @Summary 获取用户设置
// @Description 获取当前用户的偏好设置，首次访问自动创建默认设置（币种 USD）
// @Tags 设置
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.UserSettings} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var settings models.UserSettings
	if err := database.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		// 首次访问补默认设置
		settings = models.UserSettings{UserID: userID, Currency: models.DefaultCurrency}
		if err := database.DB.Create(&settings).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "创建默认设置失败"))
			return
		}
	}

	Success(c, settings)
}

// Update 更新用户设置
// @Summary 更新用户设置
// @Description 更新当前用户的展示币种，币种必须在支持列表内
// @Tags 设置
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSettingsRequest true "设置信息"
// @Success 200 {object} Response{data=models.UserSettings} "更新成功"
// @Failure 400 {object} Response "不支持的币种"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if !models.IsValidCurrency(req.Currency) {
		BadRequest(c, "不支持的币种: "+req.Currency)
		return
	}

	var settings models.UserSettings
	if err := database.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		settings = models.UserSettings{UserID: userID, Currency: req.Currency}
		if err := database.DB.Create(&settings).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "保存设置失败"))
			return
		}
		SuccessWithMessage(c, "更新成功", settings)
		return
	}

	if err := database.DB.Model(&settings).Update("currency", req.Currency).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "保存设置失败"))
		return
	}
	settings.Currency = req.Currency

	SuccessWithMessage(c, "更新成功", settings)
}

// Currencies 获取支持的币种列表
// @Summary 获取支持的币种列表
// @Tags 设置
// @Produce json
// @Success 200 {object} Response{data=[]models.Currency} "获取成功"
// @Router /api/v1/currencies [get]
func (h *SettingsHandler) Currencies(c *gin.Context) {
	Success(c, models.Currencies)
}
