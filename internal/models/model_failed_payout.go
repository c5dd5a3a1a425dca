package models

import (
	"time"

	"gorm.io/datatypes"
)

// FailedPayout stores the raw payout request for a payout the platform
// reported as failed. Rows are re-submitted verbatim when the account holder
// becomes payable again and deleted once the re-submission is accepted.
type FailedPayout struct {
	ID                string         `gorm:"column:id;type:uuid;primary_key" json:"id"`
	AccountHolderCode string         `gorm:"column:account_holder_code;type:varchar(128);not null;index" json:"account_holder_code"`
	RawRequest        datatypes.JSON `gorm:"column:raw_request;type:jsonb;not null" json:"raw_request"`
	FailureMessage    string         `gorm:"column:failure_message;type:text" json:"failure_message"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (FailedPayout) TableName() string { return "failed_payout" }
