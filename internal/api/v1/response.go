package v1

import "github.com/NahoooMac/wedhabesha-sub007/internal/service"

type ReceiptsResponse struct {
	Receipts []service.ReadReceiptResponse `json:"receipts"`
}

type AttachmentsResponse struct {
	Attachments []service.AttachmentResponse `json:"attachments"`
}
