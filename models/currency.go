package models

// Currency 支持的币种
type Currency struct {
	Value  string `json:"value"`  // ISO-4217 代码
	Label  string `json:"label"`  // 展示名称
	Locale string `json:"locale"` // 前端格式化用 locale
}

// Currencies 支持的币种列表（与前端展示保持一致）
var Currencies = []Currency{
	{Value: "USD", Label: "$ Dollar", Locale: "en-US"},
	{Value: "EUR", Label: "€ Euro", Locale: "en-GB"},
	{Value: "GBP", Label: "£ Pound", Locale: "en-GB"},
	{Value: "JPY", Label: "¥ Yen", Locale: "ja-JP"},
	{Value: "AUD", Label: "$ Australian Dollar", Locale: "en-AU"},
	{Value: "KES", Label: "ksh Kenyan Shilling", Locale: "en-KE"},
}

// IsValidCurrency 校验币种代码是否在支持列表内
func IsValidCurrency(code string) bool {
	for _, c := range Currencies {
		if c.Value == code {
			return true
		}
	}
	return false
}
