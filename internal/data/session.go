package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinemadia/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type sessionRepo struct {
	data *Data
	log  *log.Helper
}

// NewSessionRepo creates a session store. Sessions live in redis when it is
// reachable and in the sessions table otherwise.
func NewSessionRepo(data *Data, logger log.Logger) biz.SessionRepo {
	return &sessionRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func sessionKey(token string) string {
	return "session:" + token
}

type cachedSession struct {
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (r *sessionRepo) CreateSession(ctx context.Context, session *biz.Session) error {
	if r.data.rdb != nil {
		payload, err := json.Marshal(cachedSession{UserID: session.UserID, ExpiresAt: session.ExpiresAt})
		if err != nil {
			return fmt.Errorf("failed to encode session: %w", err)
		}
		ttl := time.Until(session.ExpiresAt)
		if err := r.data.rdb.Set(ctx, sessionKey(session.Token), payload, ttl).Err(); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}
		return nil
	}

	row := &Session{Token: session.Token, UserID: session.UserID, ExpiresAt: session.ExpiresAt}
	if err := r.data.DB(ctx).Omit("User").Create(row).Error; err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *sessionRepo) GetSession(ctx context.Context, token string) (*biz.Session, error) {
	if r.data.rdb != nil {
		payload, err := r.data.rdb.Get(ctx, sessionKey(token)).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, biz.ErrSessionNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		var cached cachedSession
		if err := json.Unmarshal(payload, &cached); err != nil {
			return nil, fmt.Errorf("failed to decode session: %w", err)
		}
		return &biz.Session{Token: token, UserID: cached.UserID, ExpiresAt: cached.ExpiresAt}, nil
	}

	var row Session
	if err := r.data.DB(ctx).Where("token = ?", token).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &biz.Session{Token: row.Token, UserID: row.UserID, ExpiresAt: row.ExpiresAt}, nil
}

func (r *sessionRepo) DeleteSession(ctx context.Context, token string) error {
	if r.data.rdb != nil {
		if err := r.data.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return nil
	}
	if err := r.data.DB(ctx).Where("token = ?", token).Delete(&Session{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
