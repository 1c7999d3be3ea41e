package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tumorvision/internal/domain/entity"
	"tumorvision/internal/domain/port"
)

// RedisChatRepository stores chat histories as Redis lists so several
// instances can share them.
type RedisChatRepository struct {
	client *redis.Client
	ttl    time.Duration // 0 keeps histories forever
}

// NewRedisChatRepository wraps a connected client.
func NewRedisChatRepository(client *redis.Client, ttl time.Duration) *RedisChatRepository {
	return &RedisChatRepository{client: client, ttl: ttl}
}

func chatKey(sessionID string) string {
	return fmt.Sprintf("chat:%s:history", sessionID)
}

func (r *RedisChatRepository) Append(ctx context.Context, sessionID string, msgs ...entity.ChatMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(msgs))
	for _, m := range msgs {
		data, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to marshal chat message: %w", err)
		}
		values = append(values, data)
	}

	key := chatKey(sessionID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append chat messages: %w", err)
	}
	return nil
}

func (r *RedisChatRepository) List(ctx context.Context, sessionID string) ([]entity.ChatMessage, error) {
	raw, err := r.client.LRange(ctx, chatKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat history: %w", err)
	}
	return decodeChatMessages(raw)
}

func (r *RedisChatRepository) Clear(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, chatKey(sessionID)).Err()
}

func decodeChatMessages(raw []string) ([]entity.ChatMessage, error) {
	history := make([]entity.ChatMessage, 0, len(raw))
	for _, s := range raw {
		var m entity.ChatMessage
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chat message: %w", err)
		}
		history = append(history, m)
	}
	return history, nil
}

var _ port.ChatRepository = (*RedisChatRepository)(nil)
