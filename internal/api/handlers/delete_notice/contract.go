package delete_notice

import "context"

type NoticeService interface {
	Delete(ctx context.Context, id int64, role string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
