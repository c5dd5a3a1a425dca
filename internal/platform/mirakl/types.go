package mirakl

// Shop is the marketplace's representation of a seller. Its id equals the
// payment platform's account holder code.
type Shop struct {
	ID      string      `json:"shop_id"`
	Name    string      `json:"shop_name"`
	Contact ShopContact `json:"contact_informations"`
}

type ShopContact struct {
	Email     string `json:"email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Locale    string `json:"locale,omitempty"`
}

// ManualDocumentRequest creates a manual accounting document (credit note)
// against a shop.
type ManualDocumentRequest struct {
	ShopID       string `json:"shop_id"`
	DocumentType string `json:"document_type"`
	AmountValue  int64  `json:"amount_value"`
	Currency     string `json:"currency_iso_code"`
	Reference    string `json:"external_reference"`
}

// CreatedManualDocuments is the marketplace's per-document creation result.
// Errors are reported inline rather than as a failed call.
type CreatedManualDocuments struct {
	DocumentReturns []ManualDocumentReturn `json:"manual_accounting_document_returns"`
}

type ManualDocumentReturn struct {
	DocumentID string                `json:"manual_accounting_document_id,omitempty"`
	Errors     []ManualDocumentError `json:"errors,omitempty"`
}

type ManualDocumentError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}
