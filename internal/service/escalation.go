package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/config"
	"github.com/NahoooMac/wedhabesha-sub007/internal/constants"
	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/NahoooMac/wedhabesha-sub007/internal/repository"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/directory"
	"go.uber.org/zap"
)

// EscalationService notifies recipients by SMS about messages that stayed
// unread past the configured threshold. The pending row inserted before the
// provider call doubles as the claim that keeps concurrent runs from
// escalating the same message twice.
type EscalationService interface {
	ProcessDueEscalations(ctx context.Context) (EscalationRunStats, error)
	ListEscalations(ctx context.Context, query ListEscalationsQuery) (ListEscalationsResponse, error)
	RetryEscalation(ctx context.Context, cmd RetryEscalationCommand) error
}

type EscalationRunStats struct {
	Scanned   int
	Skipped   int
	Claimed   int
	Sent      int
	Failed    int
	Recovered int
}

type escalation struct {
	messageRepo repository.MessageRepository
	smsRepo     repository.SMSNotificationRepository
	presence    PresenceService
	directory   directory.Client
	sender      ProviderService
	events      EventPublisher
	policy      config.Escalation
	logger      *zap.Logger
}

func NewEscalationService(messageRepo repository.MessageRepository,
	smsRepo repository.SMSNotificationRepository, presence PresenceService, directoryClient directory.Client,
	sender ProviderService, events EventPublisher, cfg *config.Config, logger *zap.Logger) EscalationService {
	return &escalation{
		messageRepo: messageRepo,
		smsRepo:     smsRepo,
		presence:    presence,
		directory:   directoryClient,
		sender:      sender,
		events:      events,
		policy:      cfg.Escalation,
		logger:      logger,
	}
}

// ProcessDueEscalations runs one worker cycle: resume stale pending rows,
// then scan for overdue unread messages and escalate each. Cancellation is
// honored between candidates, never in the middle of one.
func (e *escalation) ProcessDueEscalations(ctx context.Context) (EscalationRunStats, error) {
	stats := EscalationRunStats{}

	e.recoverStalePending(ctx, &stats)

	cutoff := time.Now().UTC().Add(-e.policy.UnreadThreshold)

	candidates, err := e.messageRepo.ListOverdueUnread(cutoff, e.policy.BatchSize)
	if err != nil {
		e.logger.Error("Failed to scan for overdue messages", zap.Error(err))
		return stats, ErrDatabase
	}

	stats.Scanned = len(candidates)

	for i := range candidates {
		select {
		case <-ctx.Done():
			e.logger.Info("Escalation cycle interrupted",
				zap.Int("processed", i),
				zap.Int("scanned", stats.Scanned))
			return stats, ctx.Err()
		default:
		}

		if err := e.escalate(ctx, &candidates[i], &stats); err != nil {
			e.logger.Error("Escalation failed for message",
				zap.Int64("messageID", candidates[i].ID),
				zap.Error(err))
		}
	}

	return stats, nil
}

func (e *escalation) escalate(ctx context.Context, msg *model.Message, stats *EscalationRunStats) error {
	recipientID := msg.RecipientID()
	recipientType := msg.SenderType.Other()

	if e.policy.SkipOnline {
		online, err := e.presence.IsOnline(ctx, recipientID)
		if err != nil {
			e.logger.Warn("Presence check failed, escalating anyway",
				zap.Int64("recipientID", recipientID),
				zap.Error(err))
		}

		if online {
			e.logger.Debug("Recipient online, skipping escalation",
				zap.Int64("messageID", msg.ID),
				zap.Int64("recipientID", recipientID))
			stats.Skipped++
			return nil
		}
	}

	contact, err := e.directory.GetContact(ctx, recipientID, string(recipientType))
	if err != nil {
		e.logger.Warn("Contact lookup failed, will retry next cycle",
			zap.Int64("messageID", msg.ID),
			zap.Int64("recipientID", recipientID),
			zap.String("recipientType", string(recipientType)),
			zap.Error(err))
		stats.Skipped++
		return nil
	}

	now := time.Now().UTC()
	notification := model.SMSNotification{
		MessageID:      msg.ID,
		ThreadID:       msg.ThreadID,
		RecipientPhone: contact.Phone,
		SMSContent:     e.composeSMS(msg, contact),
		DeliveryStatus: model.SMSStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = e.smsRepo.Create(ctx, &notification)
	if err != nil {
		if errors.Is(err, repository.ErrEscalationDuplicate) {
			e.logger.Debug("Message already claimed by another escalation run",
				zap.Int64("messageID", msg.ID))
			stats.Skipped++
			return nil
		}

		return err
	}

	stats.Claimed++
	e.deliver(ctx, &notification, stats)

	return nil
}

// deliver performs one provider attempt for a pending row and records the
// outcome. A row whose outcome write fails stays pending and is picked up
// by stale recovery, which may resend.
func (e *escalation) deliver(ctx context.Context, notification *model.SMSNotification, stats *EscalationRunStats) {
	response, sendErr := e.sender.SendWithRetry(ctx, notification.RecipientPhone, notification.SMSContent)
	now := time.Now().UTC()

	if sendErr != nil {
		reason := sendErr.Error()
		notification.DeliveryStatus = model.SMSStatusFailed
		notification.ErrorMessage = &reason
		notification.UpdatedAt = now

		if err := e.smsRepo.Update(ctx, notification); err != nil {
			e.logger.Error("Failed to record escalation failure",
				zap.Int64("messageID", notification.MessageID),
				zap.Error(err))
		}

		e.logger.Warn("Escalation SMS failed",
			zap.Int64("messageID", notification.MessageID),
			zap.String("reason", reason))
		stats.Failed++

		return
	}

	sentAt := now
	notification.DeliveryStatus = model.SMSStatusSent
	notification.SentAt = &sentAt
	notification.ProviderMessageID = &response.MessageID
	notification.UpdatedAt = now

	if err := e.smsRepo.Update(ctx, notification); err != nil {
		e.logger.Error("SMS sent but outcome not recorded, stale recovery may resend",
			zap.Int64("messageID", notification.MessageID),
			zap.String("providerMessageID", response.MessageID),
			zap.Error(err))
	}

	stats.Sent++

	e.logger.Info("Escalation SMS sent",
		zap.Int64("messageID", notification.MessageID),
		zap.Int64("threadID", notification.ThreadID),
		zap.String("providerMessageID", response.MessageID))

	event := MessageEvent{
		Event:     EventMessageEscalated,
		MessageID: notification.MessageID,
		ThreadID:  notification.ThreadID,
		At:        formatTime(sentAt),
	}

	if err := e.events.Publish(ctx, event); err != nil {
		e.logger.Warn("Failed to publish escalation event",
			zap.Int64("messageID", notification.MessageID),
			zap.Error(err))
	}
}

// recoverStalePending resumes pending rows left behind by a crashed run.
// Reclaim's conditional touch makes sure only one worker resumes each row.
func (e *escalation) recoverStalePending(ctx context.Context, stats *EscalationRunStats) {
	olderThan := time.Now().UTC().Add(-e.policy.PendingRecovery)

	stale, err := e.smsRepo.ListStalePending(olderThan, e.policy.BatchSize)
	if err != nil {
		e.logger.Error("Failed to scan stale pending escalations", zap.Error(err))
		return
	}

	for i := range stale {
		select {
		case <-ctx.Done():
			return
		default:
		}

		err := e.smsRepo.Reclaim(ctx, stale[i].ID, olderThan)
		if err != nil {
			if !errors.Is(err, repository.ErrNoRowsAffected) {
				e.logger.Error("Failed to reclaim stale escalation",
					zap.Int64("notificationID", stale[i].ID),
					zap.Error(err))
			}

			continue
		}

		e.logger.Info("Resuming stale pending escalation",
			zap.Int64("notificationID", stale[i].ID),
			zap.Int64("messageID", stale[i].MessageID))

		stats.Recovered++
		e.deliver(ctx, &stale[i], stats)
	}
}

func (e *escalation) ListEscalations(ctx context.Context, query ListEscalationsQuery) (ListEscalationsResponse, error) {
	status := model.SMSStatus(query.Status)
	if query.Status == "" {
		status = model.SMSStatusFailed
	}

	if !status.Valid() {
		return ListEscalationsResponse{}, NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("unknown escalation status: "+query.Status))
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	notifications, err := e.smsRepo.ListByStatus(status, limit, offset)
	if err != nil {
		e.logger.Error("Failed to list escalations", zap.String("status", string(status)), zap.Error(err))
		return ListEscalationsResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	total, err := e.smsRepo.CountByStatus(status)
	if err != nil {
		e.logger.Error("Failed to count escalations", zap.String("status", string(status)), zap.Error(err))
		return ListEscalationsResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	responses := make([]EscalationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, escalationResponseFrom(&notifications[i]))
	}

	return ListEscalationsResponse{Escalations: responses, Total: total}, nil
}

// RetryEscalation clears a failed escalation so the next worker cycle picks
// the message up again. Pending or sent escalations cannot be retried.
func (e *escalation) RetryEscalation(ctx context.Context, cmd RetryEscalationCommand) error {
	err := e.smsRepo.DeleteFailed(ctx, cmd.MessageID)
	if err == nil {
		e.logger.Info("Failed escalation cleared for retry", zap.Int64("messageID", cmd.MessageID))
		return nil
	}

	if errors.Is(err, repository.ErrNoRowsAffected) {
		_, lookupErr := e.smsRepo.GetByMessageID(cmd.MessageID)
		if lookupErr == nil {
			return NewServiceError(constants.ErrCodeEscalationNotFailed,
				errors.New("escalation is not in failed state"))
		}

		if errors.Is(lookupErr, repository.ErrEscalationNotFound) {
			return NewServiceError(constants.ErrCodeEscalationNotFound, lookupErr)
		}

		return NewServiceError(ErrCodeDatabase, lookupErr)
	}

	e.logger.Error("Failed to clear escalation", zap.Int64("messageID", cmd.MessageID), zap.Error(err))

	return NewServiceError(ErrCodeDatabase, err)
}

func (e *escalation) composeSMS(msg *model.Message, contact directory.Contact) string {
	sender := "a couple"
	if msg.SenderType == model.UserTypeVendor {
		sender = "your vendor"
		if msg.Thread.ServiceType != nil && *msg.Thread.ServiceType != "" {
			sender = "your " + *msg.Thread.ServiceType + " vendor"
		}
	}

	return fmt.Sprintf("Hi %s, you have an unread message from %s on WedHabesha. Open the app to reply.",
		contact.FullName, sender)
}
