package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"sales/pkg/domain/model"
)

const orderIDLength = 8

type orderItemDocument struct {
	Name     string `bson:"name"`
	Price    int64  `bson:"price"`
	Quantity *int   `bson:"quantity,omitempty"`
}

// orderDocument mirrors every revision of the orders collection. Documents
// written before schema_version existed have neither order_id nor timestamp,
// so their ObjectID is the only handle on them.
type orderDocument struct {
	ObjectID      primitive.ObjectID  `bson:"_id,omitempty"`
	SchemaVersion int                 `bson:"schema_version,omitempty"`
	OrderID       *string             `bson:"order_id,omitempty"`
	Username      string              `bson:"username"`
	Timestamp     *string             `bson:"timestamp,omitempty"`
	Items         []orderItemDocument `bson:"items"`
	Total         *int64              `bson:"total,omitempty"`
}

func newOrderDocument(rec model.OrderRecord) orderDocument {
	doc := orderDocument{
		SchemaVersion: rec.SchemaVersion,
		OrderID:       rec.ID,
		Username:      rec.Username,
		Items:         make([]orderItemDocument, 0, len(rec.Items)),
		Total:         rec.Total,
	}
	if rec.PlacedAt != nil {
		ts := rec.PlacedAt.UTC().Format(model.TimestampLayout)
		doc.Timestamp = &ts
	}
	for _, item := range rec.Items {
		doc.Items = append(doc.Items, orderItemDocument{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	return doc
}

func (d orderDocument) toRecord() model.OrderRecord {
	rec := model.OrderRecord{
		SchemaVersion: d.SchemaVersion,
		ID:            d.OrderID,
		Username:      d.Username,
		Items:         make([]model.OrderItemRecord, 0, len(d.Items)),
		Total:         d.Total,
	}
	if !d.ObjectID.IsZero() {
		rec.Key = d.ObjectID.Hex()
	}
	if rec.SchemaVersion == 0 {
		rec.SchemaVersion = model.OrderSchemaLegacy
	}
	if d.Timestamp != nil {
		if ts, err := time.ParseInLocation(model.TimestampLayout, *d.Timestamp, time.UTC); err == nil {
			rec.PlacedAt = &ts
		}
	}
	for _, item := range d.Items {
		rec.Items = append(rec.Items, model.OrderItemRecord{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	return rec
}

type OrderRepository struct {
	collection *mongo.Collection
}

var _ model.OrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) NextID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String()[:orderIDLength], nil
}

func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	_, err := r.collection.InsertOne(ctx, newOrderDocument(model.NewOrderRecord(*order)))
	return errors.Wrap(err, "insert order")
}

func (r *OrderRepository) Find(ctx context.Context, ref string) (*model.Order, error) {
	if ref == "" {
		return nil, model.ErrOrderNotFound
	}

	var doc orderDocument
	err := r.collection.FindOne(ctx, orderRefFilter(ref)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find order")
	}
	order := doc.toRecord().Order()
	return &order, nil
}

// orderRefFilter matches an order id, or the ObjectID of an order that has
// none. Order ids are shorter than an ObjectID hex, so the two never clash.
func orderRefFilter(ref string) bson.M {
	oid, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return bson.M{"order_id": ref}
	}
	return bson.M{"$or": bson.A{
		bson.M{"order_id": ref},
		bson.M{"_id": oid, "order_id": bson.M{"$exists": false}},
	}}
}

func (r *OrderRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) ListByUsername(ctx context.Context, username string) ([]model.Order, error) {
	return r.find(ctx, bson.M{"username": username})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]model.Order, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}

	orders := make([]model.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, doc.toRecord().Order())
	}
	return orders, nil
}
