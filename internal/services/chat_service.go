package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/medassist/internal/metrics"
	"github.com/yoockh/medassist/internal/models"
	"github.com/yoockh/medassist/internal/providers/llm"
	"github.com/yoockh/medassist/internal/triage"
	"github.com/yoockh/medassist/internal/utils"
)

// Caller-facing texts. They go on the wire verbatim.
const (
	GreetingReply     = "Hello! How can I assist you today?"
	MsgRequired       = "Message is required"
	MsgOffTopic       = "Please ask a question related to medical symptoms."
	MsgInternalFailed = "An error occurred while processing your request."
)

type ChatService interface {
	// Send answers one user message for the given session. Rejections come
	// back as CodeInvalidArgument with the caller-facing text as Message.
	Send(ctx context.Context, sessionID, message string) (string, error)
}

type chatService struct {
	convos ConversationService
	model  llm.Provider
	log    logrus.FieldLogger
}

func NewChatService(convos ConversationService, model llm.Provider, log logrus.FieldLogger) ChatService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &chatService{convos: convos, model: model, log: log}
}

func (s *chatService) Send(ctx context.Context, sessionID, message string) (string, error) {
	const op = "ChatService.Send"

	message = strings.TrimSpace(message)
	if message == "" {
		metrics.RecordChat(metrics.OutcomeEmpty)
		return "", utils.E(utils.CodeInvalidArgument, op, MsgRequired, nil)
	}

	if triage.IsGreeting(message) {
		if err := s.record(ctx, sessionID, message, GreetingReply); err != nil {
			return "", err
		}
		metrics.RecordChat(metrics.OutcomeGreeting)
		return GreetingReply, nil
	}

	if !triage.IsMedicalQuery(message) {
		metrics.RecordChat(metrics.OutcomeOffTopic)
		return "", utils.E(utils.CodeInvalidArgument, op, MsgOffTopic, nil)
	}

	reply, err := s.model.Reply(ctx, message)
	if err != nil {
		kind := llm.KindOf(err)
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"kind":       kind,
		}).WithError(err).Error("model gateway call failed")
		metrics.RecordChat(metrics.OutcomeFailed)
		return "", utils.E(upstreamCode(kind), op, MsgInternalFailed, err)
	}

	reply = triage.WithLightMedicine(reply, message)
	if err := s.record(ctx, sessionID, message, reply); err != nil {
		return "", err
	}
	metrics.RecordChat(metrics.OutcomeAnswered)
	return reply, nil
}

func (s *chatService) record(ctx context.Context, sessionID, message, reply string) error {
	const op = "ChatService.record"

	if err := s.convos.Record(ctx, sessionID, models.UserMessage(message), models.BotMessage(reply)); err != nil {
		s.log.WithField("session_id", sessionID).WithError(err).Error("conversation append failed")
		metrics.RecordChat(metrics.OutcomeFailed)
		return utils.E(utils.CodeInternal, op, MsgInternalFailed, err)
	}
	return nil
}

func upstreamCode(kind llm.Kind) utils.Code {
	if kind == llm.KindTimeout {
		return utils.CodeTimeout
	}
	return utils.CodeUnavailable
}
