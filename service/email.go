package service

import (
	"fmt"

	"budget/config"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendPasswordResetCode 发送密码重置验证码邮件
func (s *EmailService) SendPasswordResetCode(toEmail, username, code string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 email.enabled=true")
	}

	subject := "【Budget】密码重置验证码"
	body := s.generateResetCodeBody(username, code)

	return s.sendEmail(toEmail, subject, body)
}

// generateResetCodeBody 生成验证码邮件内容
func (s *EmailService) generateResetCodeBody(username, code string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; background: #f5f5f5; padding: 20px;">
    <div style="max-width: 560px; margin: 0 auto; background: #fff; border-radius: 8px; padding: 32px;">
        <h2 style="margin-top: 0;">💰 Budget 密码重置</h2>
        <p>尊敬的 <strong>%s</strong>，您好！</p>
        <p>我们收到了您的密码重置请求，验证码为：</p>
        <p style="font-size: 28px; font-weight: 700; letter-spacing: 6px; text-align: center;">%s</p>
        <p style="color: #856404;">验证码有效期为 30 分钟，请尽快完成密码重置。</p>
        <p style="color: #856404;">如果您没有请求重置密码，请忽略此邮件。</p>
        <p style="color: #6c757d; font-size: 12px;">此邮件由系统自动发送，请勿回复</p>
    </div>
</body>
</html>
`, username, code)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}
