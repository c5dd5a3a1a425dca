package models

import (
	"time"

	"gorm.io/datatypes"
)

// PendingNotification is a raw inbound platform notification awaiting
// processing. Rows are created by the webhook boundary, read once by the
// listener, and deleted only after a fully successful run; a retained row is
// the durable retry queue entry operators reprocess manually.
type PendingNotification struct {
	ID           string         `gorm:"column:id;type:uuid;primary_key" json:"id"`
	EventType    string         `gorm:"column:event_type;type:varchar(64);not null" json:"event_type"`
	PspReference string         `gorm:"column:psp_reference;type:varchar(128)" json:"psp_reference"`
	RawPayload   datatypes.JSON `gorm:"column:raw_payload;type:jsonb;not null" json:"raw_payload"`
	ReceivedAt   time.Time      `gorm:"column:received_at" json:"received_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (PendingNotification) TableName() string { return "pending_notification" }
