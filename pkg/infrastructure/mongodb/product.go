package mongodb

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"sales/pkg/domain/model"
)

// legacyProductVersion marks product ids that wrap an ObjectID. New products
// get random (version 4) ids, so the two sets are disjoint.
const legacyProductVersion = 8

// legacyProductID embeds the 12 bytes of an ObjectID into a version 8 UUID.
// Bytes 6 and 8 carry the version and variant, bytes 14 and 15 stay zero.
func legacyProductID(oid primitive.ObjectID) uuid.UUID {
	var id uuid.UUID
	copy(id[0:6], oid[0:6])
	id[6] = legacyProductVersion << 4
	id[7] = oid[6]
	id[8] = 0x80
	copy(id[9:14], oid[7:12])
	return id
}

// legacyObjectID reverses legacyProductID.
func legacyObjectID(id uuid.UUID) (primitive.ObjectID, bool) {
	var oid primitive.ObjectID
	if id.Version() != legacyProductVersion || id[6]&0x0f != 0 || id[8] != 0x80 || id[14] != 0 || id[15] != 0 {
		return oid, false
	}
	copy(oid[0:6], id[0:6])
	oid[6] = id[7]
	copy(oid[7:12], id[9:14])
	return oid, true
}

func productFilter(id uuid.UUID) bson.M {
	if oid, ok := legacyObjectID(id); ok {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id.String()}
}

type productDocument struct {
	ID    string `bson:"_id"`
	Name  string `bson:"name"`
	Price int64  `bson:"price"`
}

// storedProductDocument reads products whatever their _id type: a UUID string
// for products created here, an ObjectID for those inserted by the first
// version of the shop.
type storedProductDocument struct {
	ID    bson.RawValue `bson:"_id"`
	Name  string        `bson:"name"`
	Price int64         `bson:"price"`
}

func (d storedProductDocument) toModel() (model.Product, error) {
	if oid, ok := d.ID.ObjectIDOK(); ok {
		return model.Product{ID: legacyProductID(oid), Name: d.Name, Price: d.Price}, nil
	}

	raw, ok := d.ID.StringValueOK()
	if !ok {
		return model.Product{}, errors.Errorf("product %q has an unsupported id type %s", d.Name, d.ID.Type)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return model.Product{}, errors.Wrapf(err, "product %q has a malformed id", raw)
	}
	return model.Product{ID: id, Name: d.Name, Price: d.Price}, nil
}

type ProductRepository struct {
	collection *mongo.Collection
}

var _ model.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	_, err := r.collection.InsertOne(ctx, productDocument{
		ID:    product.ID.String(),
		Name:  product.Name,
		Price: product.Price,
	})
	return errors.Wrap(err, "insert product")
}

func (r *ProductRepository) Find(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var doc storedProductDocument
	err := r.collection.FindOne(ctx, productFilter(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}

	product, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	var docs []storedProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}

	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		product, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}
