package chat

import (
	"context"
	"time"

	"fixify/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// PresenceTTL is how long a presence record lives without a refresh. A
// dead connection ages out on its own even if the disconnect handler
// never ran.
const PresenceTTL = 60 * time.Second

// PresenceStore tracks who is online in Redis, so every instance behind
// the load balancer sees the same presence picture.
type PresenceStore struct {
	client *redis.Client
}

func NewPresenceStore(client *redis.Client) *PresenceStore {
	return &PresenceStore{client: client}
}

func presenceKey(role, id string) string {
	return "presence:" + role + ":" + id
}

func (p *PresenceStore) SetOnline(role, id string) {
	err := p.client.Set(context.Background(), presenceKey(role, id), "1", PresenceTTL).Err()
	if err != nil {
		utils.GetLogger().Warn("failed to set presence", zap.String("id", id), zap.Error(err))
	}
}

// Refresh extends an existing presence record's TTL.
func (p *PresenceStore) Refresh(role, id string) {
	err := p.client.Expire(context.Background(), presenceKey(role, id), PresenceTTL).Err()
	if err != nil {
		utils.GetLogger().Warn("failed to refresh presence", zap.String("id", id), zap.Error(err))
	}
}

func (p *PresenceStore) SetOffline(role, id string) {
	err := p.client.Del(context.Background(), presenceKey(role, id)).Err()
	if err != nil {
		utils.GetLogger().Warn("failed to clear presence", zap.String("id", id), zap.Error(err))
	}
}

func (p *PresenceStore) IsOnline(role, id string) bool {
	n, err := p.client.Exists(context.Background(), presenceKey(role, id)).Result()
	if err != nil {
		utils.GetLogger().Warn("failed to check presence", zap.String("id", id), zap.Error(err))
		return false
	}
	return n > 0
}
