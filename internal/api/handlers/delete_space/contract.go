package delete_space

import "context"

type SpaceService interface {
	Deactivate(ctx context.Context, role string, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
