package dtos

import (
	"time"
)

// SubscribeMessageDto selects which refresh topic a websocket client wants.
type SubscribeMessageDto struct {
	Subject string `json:"subject"`
}

// RefreshStateDto is pushed whenever the refresh job starts or finishes, and
// once on subscribe with the current state.
type RefreshStateDto struct {
	LastRefresh  *time.Time `json:"lastRefresh"`
	IsRefreshing bool       `json:"isRefreshing"`
}

func (dto SubscribeMessageDto) Topic() string {
	return dto.Subject
}

func (dto SubscribeMessageDto) Validate() (bool, map[string]string) {
	return true, make(map[string]string)
}
