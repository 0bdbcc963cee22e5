package api

import (
	"time"

	"budget/config"
	"budget/database"
	"budget/models"
	"budget/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// 验证码有效期
const resetCodeTTL = 30 * time.Minute

// PasswordResetHandler 密码重置处理器
type PasswordResetHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewPasswordResetHandler 创建密码重置处理器
func NewPasswordResetHandler(cfg *config.Config) *PasswordResetHandler {
	return &PasswordResetHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// RequestResetRequest 请求重置验证码
type RequestResetRequest struct {
	Email string `json:"email" binding:"required,email" example:"test@example.com"`
}

// VerifyResetCodeRequest 校验验证码请求
type VerifyResetCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=50"`
}

// RequestReset 请求密码重置验证码
// @Summary 请求密码重置验证码
// @Description 向注册邮箱发送 6 位验证码。为避免账号枚举，无论邮箱是否存在都返回成功。
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RequestResetRequest true "邮箱"
// @Success 200 {object} Response "已发送（或静默忽略）"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/auth/password/request-reset [post]
func (h *PasswordResetHandler) RequestReset(c *gin.Context) {
	var req RequestResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// 不暴露邮箱是否注册
		SuccessWithMessage(c, "如果该邮箱已注册，验证码已发送", nil)
		return
	}

	code, err := models.GenerateResetCode()
	if err != nil {
		InternalError(c, "生成验证码失败")
		return
	}

	reset := models.PasswordReset{
		UserID:    user.ID,
		Email:     user.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(resetCodeTTL),
	}
	if err := database.DB.Create(&reset).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "保存验证码失败"))
		return
	}

	if err := h.emailService.SendPasswordResetCode(user.Email, user.Username, code); err != nil {
		InternalError(c, SafeErrorMessage(err, "发送邮件失败"))
		return
	}

	SuccessWithMessage(c, "如果该邮箱已注册，验证码已发送", nil)
}

// VerifyCode 校验密码重置验证码
// @Summary 校验密码重置验证码
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body VerifyResetCodeRequest true "邮箱和验证码"
// @Success 200 {object} Response "验证码有效"
// @Failure 400 {object} Response "验证码无效或已过期"
// @Router /api/v1/auth/password/verify-code [post]
func (h *PasswordResetHandler) VerifyCode(c *gin.Context) {
	var req VerifyResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	if _, ok := h.findValidReset(req.Email, req.Code); !ok {
		BadRequest(c, "验证码无效或已过期")
		return
	}

	SuccessWithMessage(c, "验证码有效", nil)
}

// Reset 使用验证码重置密码
// @Summary 使用验证码重置密码
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "邮箱、验证码和新密码"
// @Success 200 {object} Response "重置成功"
// @Failure 400 {object} Response "验证码无效或已过期"
// @Router /api/v1/auth/password/reset [post]
func (h *PasswordResetHandler) Reset(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	reset, ok := h.findValidReset(req.Email, req.Code)
	if !ok {
		BadRequest(c, "验证码无效或已过期")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	if err := database.DB.Model(&models.User{}).
		Where("id = ?", reset.UserID).
		Update("password", string(hashedPassword)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "重置密码失败"))
		return
	}

	// 验证码一次性使用
	if err := database.DB.Model(&reset).Update("used", true).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "重置密码失败"))
		return
	}

	SuccessWithMessage(c, "重置成功", nil)
}

// findValidReset 查找未使用且未过期的验证码记录
func (h *PasswordResetHandler) findValidReset(email, code string) (models.PasswordReset, bool) {
	var reset models.PasswordReset
	if err := database.DB.
		Where("email = ? AND code = ? AND used = ?", email, code, false).
		Order("created_at DESC").
		First(&reset).Error; err != nil {
		return models.PasswordReset{}, false
	}
	if !reset.IsValid() {
		return models.PasswordReset{}, false
	}
	return reset, true
}
