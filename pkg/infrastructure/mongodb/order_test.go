package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sales/pkg/domain/model"
)

func TestOrderDocumentRoundTrip(t *testing.T) {
	placedAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	order := model.Order{
		ID:       "a1b2c3d4",
		Username: "alice",
		PlacedAt: &placedAt,
		Items: []model.OrderItem{
			{Name: "Pen", Price: 10, Quantity: 2},
			{Name: "Notebook", Price: 50, Quantity: 1},
		},
		Total: 70,
	}

	raw, err := bson.Marshal(newOrderDocument(model.NewOrderRecord(order)))
	require.NoError(t, err)

	var stored bson.M
	require.NoError(t, bson.Unmarshal(raw, &stored))
	assert.Equal(t, "2025-03-14 09:26:53", stored["timestamp"])
	assert.Equal(t, "a1b2c3d4", stored["order_id"])

	var doc orderDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, order, doc.toRecord().Order())
}

func TestLegacyOrderDocument(t *testing.T) {
	oid := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.M{
		"_id":      oid,
		"username": "bob",
		"items": bson.A{
			bson.M{"name": "Pen", "price": int32(10)},
			bson.M{"name": "Pen", "price": int32(10)},
		},
		"total": int32(20),
	})
	require.NoError(t, err)

	var doc orderDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))

	rec := doc.toRecord()
	assert.Equal(t, model.OrderSchemaLegacy, rec.SchemaVersion)

	order := rec.Order()
	assert.Equal(t, model.Placeholder, order.DisplayID())
	assert.Equal(t, model.Placeholder, order.DisplayTimestamp())
	assert.Equal(t, oid.Hex(), order.Ref())
	require.Len(t, order.Items, 2)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, int64(20), order.Total)
}

func TestUserDocumentLegacyPassword(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"username": "carol", "password": "abc123"})
	require.NoError(t, err)

	var doc userDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, model.User{Username: "carol", PasswordHash: "abc123"}, doc.toModel())
}

func TestOrderRefFilter(t *testing.T) {
	assert.Equal(t, bson.M{"order_id": "a1b2c3d4"}, orderRefFilter("a1b2c3d4"))

	oid := primitive.NewObjectID()
	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"order_id": oid.Hex()},
		bson.M{"_id": oid, "order_id": bson.M{"$exists": false}},
	}}, orderRefFilter(oid.Hex()))
}
