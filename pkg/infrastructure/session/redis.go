package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"sales/pkg/domain/model"
)

const keyPrefix = "sales:session:"

type cartItemDocument struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Quantity  int       `json:"quantity"`
}

type sessionDocument struct {
	Username string             `json:"username"`
	Role     model.Role         `json:"role"`
	Cart     []cartItemDocument `json:"cart"`
}

// RedisStore keeps each session, cart included, as one JSON value. A zero
// ttl keeps sessions until logout.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ model.SessionRepository = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Connect parses a redis:// URL and checks the server is reachable.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "ping redis")
	}
	return client, nil
}

func (s *RedisStore) NextID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *RedisStore) Save(ctx context.Context, session *model.Session) error {
	doc := sessionDocument{
		Username: session.Username,
		Role:     session.Role,
		Cart:     []cartItemDocument{},
	}
	if session.Cart != nil {
		for _, item := range session.Cart.Items() {
			doc.Cart = append(doc.Cart, cartItemDocument{
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
			})
		}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}
	return errors.Wrap(s.client.Set(ctx, key(session.ID), raw, s.ttl).Err(), "save session")
}

func (s *RedisStore) Find(ctx context.Context, id string) (*model.Session, error) {
	raw, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load session")
	}

	var doc sessionDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}

	items := make([]model.CartItem, 0, len(doc.Cart))
	for _, item := range doc.Cart {
		items = append(items, model.CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	return &model.Session{
		ID:       id,
		Username: doc.Username,
		Role:     doc.Role,
		Cart:     model.NewCart(items...),
	}, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return errors.Wrap(s.client.Del(ctx, key(id)).Err(), "delete session")
}

func key(id string) string {
	return keyPrefix + id
}
