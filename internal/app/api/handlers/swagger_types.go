package handlers

import (
	"github.com/fatflowers/marketlink/internal/app/service/notificationstore"
	"github.com/fatflowers/marketlink/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespScanRetained wraps ScanRetainedResponse in the standard envelope.
type RespScanRetained struct {
	Code    response.APIResponseCode               `json:"code"`
	Message string                                 `json:"message"`
	Data    notificationstore.ScanRetainedResponse `json:"data"`
}
