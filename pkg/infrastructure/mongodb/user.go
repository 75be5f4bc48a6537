package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sales/pkg/domain/model"
)

// userDocument also reads the "password" field used by the earliest records,
// which hold the same hex SHA-256 digest.
type userDocument struct {
	Username       string `bson:"username"`
	PasswordHash   string `bson:"password_hash,omitempty"`
	LegacyPassword string `bson:"password,omitempty"`
}

func (d userDocument) toModel() model.User {
	hash := d.PasswordHash
	if hash == "" {
		hash = d.LegacyPassword
	}
	return model.User{Username: d.Username, PasswordHash: hash}
}

type UserRepository struct {
	collection *mongo.Collection
}

var _ model.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	_, err := r.collection.InsertOne(ctx, userDocument{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	})
	if mongo.IsDuplicateKeyError(err) {
		return model.ErrUsernameTaken
	}
	return errors.Wrap(err, "insert user")
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	user := doc.toModel()
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 0}))
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode users")
	}

	users := make([]model.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toModel())
	}
	return users, nil
}
