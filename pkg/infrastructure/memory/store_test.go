package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales/pkg/domain/model"
)

func TestUserRepositoryRejectsDuplicates(t *testing.T) {
	repo := NewStore().Users()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Username: "alice", PasswordHash: "first"}))
	err := repo.Create(ctx, &model.User{Username: "alice", PasswordHash: "second"})
	assert.ErrorIs(t, err, model.ErrUsernameTaken)

	user, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "first", user.PasswordHash)
}

func TestOrderRepositoryAppliesDefaults(t *testing.T) {
	repo := NewStore().Orders()
	ctx := context.Background()

	key := repo.Insert(model.OrderRecord{
		SchemaVersion: model.OrderSchemaLegacy,
		Username:      "bob",
		Items:         []model.OrderItemRecord{{Name: "Pen", Price: 10}},
	})

	orders, err := repo.ListByUsername(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(10), orders[0].Total)
	assert.Equal(t, model.Placeholder, orders[0].DisplayID())
	assert.Equal(t, key, orders[0].Ref())

	found, err := repo.Find(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "bob", found.Username)

	_, err = repo.Find(ctx, "")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	_, err = repo.Find(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestOrderRepositoryNextID(t *testing.T) {
	repo := NewStore().Orders()

	id, err := repo.NextID()
	require.NoError(t, err)
	assert.Len(t, id, 8)
}
