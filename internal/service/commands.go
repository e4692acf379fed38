package service

import "time"

type OpenThreadCommand struct {
	CoupleID    int64
	VendorID    int64
	LeadID      *int64
	ServiceType *string
}

type ListThreadsQuery struct {
	UserID   int64
	UserType string
	Limit    int
	Offset   int
}

type AppendMessageCommand struct {
	ThreadID    int64
	SenderID    int64
	SenderType  string
	Content     string
	MessageType string
}

type ListMessagesQuery struct {
	ThreadID int64
	BeforeID int64
	Limit    int
}

type DeleteMessageCommand struct {
	MessageID     int64
	RequesterID   int64
	RequesterType string
}

type MarkDeliveredCommand struct {
	MessageID int64
	At        time.Time
}

type MarkReadCommand struct {
	MessageID int64
	ReaderID  int64
	At        time.Time
}

type MarkThreadReadCommand struct {
	ThreadID   int64
	ReaderID   int64
	ReaderType string
	At         time.Time
}

type AttachFileCommand struct {
	MessageID    int64
	FileName     string
	FileType     string
	FileSize     int64
	FileURL      string
	ThumbnailURL *string
}

type SetOnlineCommand struct {
	UserID   int64
	UserType string
	SocketID string
}

type SetOfflineCommand struct {
	UserID int64
}

type ListEscalationsQuery struct {
	Status string
	Limit  int
	Offset int
}

type RetryEscalationCommand struct {
	MessageID int64
}
