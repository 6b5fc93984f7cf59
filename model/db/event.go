package db

import (
	"time"

	"github.com/empregga/eva-portal/model/enum"
)

// SystemEvent é um contador grosso de uso (CHAT_QUERY, HANDOFF); append-only.
type SystemEvent struct {
	Id        string         `db:"id" json:"id"`
	EventType enum.EventType `db:"event_type" json:"eventType"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
}

func (SystemEvent) TableName() string {
	return `system_events`
}
