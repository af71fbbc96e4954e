// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/MKhiriev/go-msg-board/internal/logger"
	"github.com/MKhiriev/go-msg-board/internal/store"
	"github.com/MKhiriev/go-msg-board/internal/validators"
	"github.com/MKhiriev/go-msg-board/models"
)

// DeletedSender stands in for the username of a sender whose row vanished
// between loading the messages and resolving their senders.
const DeletedSender = "<deleted user>"

// messageService is the concrete implementation of MessageService.
type messageService struct {
	userRepository    store.UserRepository
	messageRepository store.MessageRepository
	authService       AuthService
	validator         validators.Validator
	logger            *logger.Logger
}

// NewMessageService constructs a new MessageService.
func NewMessageService(userRepository store.UserRepository, messageRepository store.MessageRepository,
	authService AuthService, validator validators.Validator, logger *logger.Logger) MessageService {
	return &messageService{
		userRepository:    userRepository,
		messageRepository: messageRepository,
		authService:       authService,
		validator:         validator,
		logger:            logger,
	}
}

// ListMessages authenticates the user and returns its inbox in storage
// order. Each distinct sender is looked up once.
func (s *messageService) ListMessages(ctx context.Context, username, password string) ([]models.ReceivedMessage, error) {
	log := logger.FromContext(ctx)

	user, err := s.authService.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepository.FindAllForRecipient(ctx, user.ID().Int64())
	if err != nil {
		log.Err(err).Stringer("user_id", user.ID()).Msg("message listing ended with error")
		return nil, fmt.Errorf("message listing ended with error: %w", err)
	}

	senderIDs := lo.Uniq(lo.Map(messages, func(message models.Message, _ int) int64 {
		return message.FromID
	}))

	senders := make(map[int64]string, len(senderIDs))
	for _, senderID := range senderIDs {
		sender, found, err := s.userRepository.FindByID(ctx, senderID)
		if err != nil {
			log.Err(err).Int64("sender_id", senderID).Msg("sender lookup ended with error")
			return nil, fmt.Errorf("sender lookup ended with error: %w", err)
		}

		senders[senderID] = DeletedSender
		if found {
			senders[senderID] = sender.Username
		}
	}

	return lo.Map(messages, func(message models.Message, _ int) models.ReceivedMessage {
		return models.ReceivedMessage{
			Sender:       senders[message.FromID],
			CreationDate: message.CreationDate,
			Text:         message.Text,
		}
	}), nil
}

// SendMessage authenticates the sender and stores a message for the
// recipient.
//
// Returns nil or:
//   - ErrUserNotFound / ErrWrongPassword for bad sender credentials.
//     ErrUserNotFound is also returned when the sender was deleted between
//     authentication and the insert.
//   - ErrRecipientNotFound if the recipient does not exist, also when it was
//     deleted between the lookup and the insert.
//   - validators.ErrEmptyMessageText / validators.ErrMessageTooLong.
func (s *messageService) SendMessage(ctx context.Context, fromUsername, password, toUsername, text string) error {
	log := logger.FromContext(ctx)

	sender, err := s.authService.Authenticate(ctx, fromUsername, password)
	if err != nil {
		return err
	}

	recipient, found, err := s.userRepository.FindByUsername(ctx, toUsername)
	if err != nil {
		log.Err(err).Str("recipient", toUsername).Msg("recipient search ended with error")
		return fmt.Errorf("recipient search ended with error: %w", err)
	}
	if !found {
		log.Info().Str("recipient", toUsername).Msg("recipient does not exist")
		return ErrRecipientNotFound
	}

	if err = s.validator.ValidateMessageText(text); err != nil {
		return err
	}

	message := models.NewMessage(sender.ID().Int64(), recipient.ID().Int64(), text)
	if err = s.messageRepository.Save(ctx, &message); err != nil {
		if errors.Is(err, store.ErrUnknownUser) {
			return s.missingParticipant(ctx, sender)
		}

		log.Err(err).Stringer("sender_id", sender.ID()).Stringer("recipient_id", recipient.ID()).Msg("message sending ended with error")
		return fmt.Errorf("message sending ended with error: %w", err)
	}
	log.Info().Stringer("message_id", message.ID()).Msg("message sent")

	return nil
}

// missingParticipant tells which side of a message vanished after the insert
// hit a foreign key violation.
func (s *messageService) missingParticipant(ctx context.Context, sender models.User) error {
	log := logger.FromContext(ctx)

	_, found, err := s.userRepository.FindByID(ctx, sender.ID().Int64())
	if err != nil {
		log.Err(err).Stringer("sender_id", sender.ID()).Msg("sender search ended with error")
		return fmt.Errorf("sender search ended with error: %w", err)
	}
	if !found {
		log.Info().Stringer("sender_id", sender.ID()).Msg("sender deleted before the message was stored")
		return ErrUserNotFound
	}

	log.Info().Msg("recipient deleted before the message was stored")
	return ErrRecipientNotFound
}
