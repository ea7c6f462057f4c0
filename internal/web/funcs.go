package web

import (
	"html/template"
	"strings"
)

var funcMap = template.FuncMap{
	"telURL":      telURL,
	"serviceIcon": serviceIcon,
	"noticeClass": noticeClass,
}

// telURL собирает ссылку tel:. html/template пропускает в href только http, https и mailto.
func telURL(phone string) template.URL {
	return template.URL("tel:" + strings.ReplaceAll(phone, " ", ""))
}

func serviceIcon(name string) string {
	switch name {
	case "Users":
		return "👨‍👩‍👧"
	case "User":
		return "👤"
	case "Heart":
		return "❤"
	default:
		return "📷"
	}
}

func noticeClass(level string) string {
	switch level {
	case "success":
		return "notice notice--success"
	case "error":
		return "notice notice--error"
	default:
		return "notice notice--info"
	}
}
