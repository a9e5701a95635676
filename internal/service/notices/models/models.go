package models

import (
	"time"

	"github.com/smartpark/SP-BookingService/internal/domain"
)

// CreateNoticeRequest запрос на создание объявления
type CreateNoticeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoticeResponse ответ с данными объявления
type NoticeResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoticeListResponse ответ со списком объявлений
type NoticeListResponse struct {
	Notices []NoticeResponse `json:"notices"`
}

// FromDomainNotice конвертирует domain модель в DTO
func FromDomainNotice(n *domain.Notice) *NoticeResponse {
	if n == nil {
		return nil
	}

	return &NoticeResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedBy: n.CreatedBy,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// FromDomainNoticeList конвертирует список domain моделей в DTO
func FromDomainNoticeList(notices []*domain.Notice) *NoticeListResponse {
	resp := &NoticeListResponse{
		Notices: make([]NoticeResponse, 0, len(notices)),
	}

	for _, notice := range notices {
		if noticeResp := FromDomainNotice(notice); noticeResp != nil {
			resp.Notices = append(resp.Notices, *noticeResp)
		}
	}

	return resp
}
