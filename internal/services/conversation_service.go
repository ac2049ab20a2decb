package services

import (
	"context"

	"github.com/yoockh/medassist/internal/models"
	"github.com/yoockh/medassist/internal/repositories"
	"github.com/yoockh/medassist/internal/utils"
)

const (
	WelcomeGreeting     = "Hello! I'm your Medical Assistant Chatbot. How can I assist you today?"
	WelcomeIntroduction = "Welcome to the Medical Assistant Chatbot! " +
		"I am here to help you with common medical symptoms and provide light remedies. " +
		"Please describe your symptoms or ask me any questions you may have."
)

type ConversationService interface {
	// Welcome appends the greeting and introduction and returns the whole log.
	Welcome(ctx context.Context, sessionID string) ([]models.Message, error)
	Record(ctx context.Context, sessionID string, msgs ...models.Message) error
	List(ctx context.Context, sessionID string, limit int) ([]models.Message, error)
}

type conversationService struct {
	convos repositories.ConversationRepository
}

func NewConversationService(convos repositories.ConversationRepository) ConversationService {
	return &conversationService{convos: convos}
}

func (s *conversationService) Welcome(ctx context.Context, sessionID string) ([]models.Message, error) {
	const op = "ConversationService.Welcome"

	if err := s.Record(ctx, sessionID, models.BotMessage(WelcomeGreeting), models.BotMessage(WelcomeIntroduction)); err != nil {
		return nil, err
	}
	rows, err := s.convos.List(ctx, sessionID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list conversation", err)
	}
	return rows, nil
}

func (s *conversationService) Record(ctx context.Context, sessionID string, msgs ...models.Message) error {
	const op = "ConversationService.Record"

	if sessionID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "session_id is required", nil)
	}
	if err := s.convos.Append(ctx, sessionID, msgs...); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to append conversation", err)
	}
	return nil
}

// List returns the newest limit messages in chronological order; limit <= 0 means all.
func (s *conversationService) List(ctx context.Context, sessionID string, limit int) ([]models.Message, error) {
	const op = "ConversationService.List"

	if sessionID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session_id is required", nil)
	}
	rows, err := s.convos.List(ctx, sessionID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list conversation", err)
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}
	return rows, nil
}
