package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/NahoooMac/wedhabesha-sub007/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentRepository_Create(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("stores metadata and assigns id", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewAttachmentRepository(db)

		thread := seedThread(t, db, 10, 20, base)
		msg := seedMessage(t, db, thread.ID, 10, model.UserTypeCouple, model.DeliveryStatusSent, base)

		record := &model.Attachment{
			MessageID:  msg.ID,
			FileName:   "venue-floorplan.pdf",
			FileType:   "application/pdf",
			FileSize:   204800,
			FileURL:    "https://cdn.wedhabesha.test/uploads/venue-floorplan.pdf",
			UploadedAt: base,
		}

		err := repo.Create(context.Background(), record)

		assert.NoError(t, err)
		assert.NotZero(t, record.ID)
	})
}

func TestAttachmentRepository_ListByMessage(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("lists attachments in upload order", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewAttachmentRepository(db)

		thread := seedThread(t, db, 10, 20, base)
		msg := seedMessage(t, db, thread.ID, 10, model.UserTypeCouple, model.DeliveryStatusSent, base)
		other := seedMessage(t, db, thread.ID, 20, model.UserTypeVendor, model.DeliveryStatusSent, base)

		first := &model.Attachment{MessageID: msg.ID, FileName: "floorplan.pdf",
			FileType: "application/pdf", FileSize: 1024, FileURL: "https://cdn.wedhabesha.test/a", UploadedAt: base}
		second := &model.Attachment{MessageID: msg.ID, FileName: "menu.docx",
			FileType: "application/msword", FileSize: 2048, FileURL: "https://cdn.wedhabesha.test/b", UploadedAt: base}
		unrelated := &model.Attachment{MessageID: other.ID, FileName: "contract.pdf",
			FileType: "application/pdf", FileSize: 4096, FileURL: "https://cdn.wedhabesha.test/c", UploadedAt: base}

		require.NoError(t, repo.Create(context.Background(), first))
		require.NoError(t, repo.Create(context.Background(), second))
		require.NoError(t, repo.Create(context.Background(), unrelated))

		attachments, err := repo.ListByMessage(msg.ID)

		require.NoError(t, err)
		require.Len(t, attachments, 2)
		assert.Equal(t, "floorplan.pdf", attachments[0].FileName)
		assert.Equal(t, "menu.docx", attachments[1].FileName)
	})

	t.Run("returns empty list for message without attachments", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewAttachmentRepository(db)

		thread := seedThread(t, db, 10, 20, base)
		msg := seedMessage(t, db, thread.ID, 10, model.UserTypeCouple, model.DeliveryStatusSent, base)

		attachments, err := repo.ListByMessage(msg.ID)

		require.NoError(t, err)
		assert.Empty(t, attachments)
	})
}
