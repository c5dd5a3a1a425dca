package models

import "time"

// Shop document type codes as registered on the marketplace.
const (
	ShopDocumentTypeIdentityProof    = "kyc-identity-proof"
	ShopDocumentTypeShareholderProof = "kyc-shareholder-proof"
	ShopDocumentTypeBankProof        = "kyc-bank-proof"
)

// ShopDocument maps a marketplace document id to the holder or shareholder
// it was uploaded for. Rows are written by the document upload flow and
// consumed by cleanup once the corresponding verification passes.
type ShopDocument struct {
	ID               string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	ShopID           string    `gorm:"column:shop_id;type:varchar(128);not null;index" json:"shop_id"`
	ShareholderCode  *string   `gorm:"column:shareholder_code;type:varchar(128);index" json:"shareholder_code"`
	TypeCode         string    `gorm:"column:type_code;type:varchar(64);not null" json:"type_code"`
	MarketplaceDocID string    `gorm:"column:marketplace_doc_id;type:varchar(128);not null" json:"marketplace_doc_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (ShopDocument) TableName() string { return "shop_document" }
