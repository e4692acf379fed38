package v1

type OpenThreadRequest struct {
	CoupleID    int64   `json:"couple_id"`
	VendorID    int64   `json:"vendor_id"`
	LeadID      *int64  `json:"lead_id"`
	ServiceType *string `json:"service_type"`
}

type AppendMessageRequest struct {
	SenderID    int64  `json:"sender_id"`
	SenderType  string `json:"sender_type"`
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
}

type MarkThreadReadRequest struct {
	UserID   int64  `json:"user_id"`
	UserType string `json:"user_type"`
}

type AttachFileRequest struct {
	FileName     string  `json:"file_name"`
	FileType     string  `json:"file_type"`
	FileSize     int64   `json:"file_size"`
	FileURL      string  `json:"file_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

type SetOnlineRequest struct {
	UserType string `json:"user_type"`
	SocketID string `json:"socket_id"`
}
