package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/medassist/internal/models"
	"github.com/yoockh/medassist/internal/repositories"
)

const keyPrefix = "conversation:"

type conversationRepo struct {
	rdb *redis.Client
	ttl time.Duration
	log logrus.FieldLogger
}

// NewConversationRepo stores each session as a Redis list of JSON messages.
// A positive ttl is refreshed on every append.
func NewConversationRepo(rdb *redis.Client, ttl time.Duration, log logrus.FieldLogger) repositories.ConversationRepository {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &conversationRepo{rdb: rdb, ttl: ttl, log: log}
}

func key(sessionID string) string { return keyPrefix + sessionID }

func (r *conversationRepo) Append(ctx context.Context, sessionID string, msgs ...models.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	vals := make([]any, 0, len(msgs))
	for _, m := range msgs {
		b, err := json.Marshal(m)
		if err != nil {
			return err
		}
		vals = append(vals, b)
	}

	k := key(sessionID)
	_, err := r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, k, vals...)
		if r.ttl > 0 {
			p.Expire(ctx, k, r.ttl)
		}
		return nil
	})
	return err
}

func (r *conversationRepo) List(ctx context.Context, sessionID string) ([]models.Message, error) {
	raw, err := r.rdb.LRange(ctx, key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	out := make([]models.Message, 0, len(raw))
	for i, s := range raw {
		var m models.Message
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			// corrupt entry: skip it rather than lose the whole log
			r.log.WithFields(logrus.Fields{"session_id": sessionID, "index": i}).WithError(err).Warn("skipping corrupt conversation entry")
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
