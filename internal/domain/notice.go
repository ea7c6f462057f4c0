package domain

// NoticeLevel тип всплывающего уведомления
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// Notice уведомление, которое показывается пользователю один раз при следующей отрисовке
type Notice struct {
	Level NoticeLevel
	Text  string
}

func SuccessNotice(text string) Notice { return Notice{Level: NoticeSuccess, Text: text} }
func ErrorNotice(text string) Notice   { return Notice{Level: NoticeError, Text: text} }
func InfoNotice(text string) Notice    { return Notice{Level: NoticeInfo, Text: text} }
