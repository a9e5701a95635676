package domain

import "time"

// Notice represents an administrator announcement shown to users
type Notice struct {
	ID        int64
	Title     string
	Content   string
	CreatedBy int64 // ID администратора, создавшего объявление
	CreatedAt time.Time
	UpdatedAt time.Time
}
