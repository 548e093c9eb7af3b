package admin

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is the transient toast shown with the response that produced it.
type Notice struct {
	Level   NoticeLevel
	Title   string
	Message string
}

func successNotice(message string) *Notice {
	return &Notice{Level: NoticeSuccess, Title: "Успешно!", Message: message}
}

func errorNotice(message string) *Notice {
	return &Notice{Level: NoticeError, Title: "Ошибка", Message: message}
}

func (n *Notice) IsError() bool {
	return n != nil && n.Level == NoticeError
}
