package chat

import (
	"log/slog"
	"strings"
	"time"

	domainchat "github.com/preston-bernstein/worldcup-dashboard/internal/domain/chat"
	"github.com/preston-bernstein/worldcup-dashboard/internal/logging"
	"github.com/preston-bernstein/worldcup-dashboard/internal/metrics"
)

// Store defines the contract for keeping per-session chat logs.
type Store interface {
	Append(sessionID string, e domainchat.Exchange)
	History(sessionID string) []domainchat.Exchange
}

// Responder produces a reply and whether a corpus entry matched.
type Responder interface {
	Reply(input string) (string, bool)
}

// Service answers chat messages and records them in the session log.
type Service struct {
	store   Store
	bot     Responder
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewService constructs a Service with the provided Store and Responder.
func NewService(store Store, bot Responder, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:   store,
		bot:     bot,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Ask replies to input and appends the exchange. Blank input is ignored and
// reports false.
func (s *Service) Ask(sessionID, input string) (domainchat.Exchange, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domainchat.Exchange{}, false
	}

	reply, matched := s.bot.Reply(input)
	s.metrics.RecordChatReply(matched)

	e := domainchat.Exchange{User: input, Bot: reply, At: s.now().UTC()}
	s.store.Append(sessionID, e)
	logging.Debug(s.logger, "chat reply",
		logging.FieldSessionID, sessionID,
		"matched", matched,
	)
	return e, true
}

// History returns the session's exchanges, oldest first.
func (s *Service) History(sessionID string) []domainchat.Exchange {
	return s.store.History(sessionID)
}
