package sqlstore

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"sales/pkg/domain/model"
)

type productRow struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Price int64  `db:"price"`
}

func (r productRow) toModel() (model.Product, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return model.Product{}, errors.Wrapf(err, "product %q has a malformed id", r.ID)
	}
	return model.Product{ID: id, Name: r.Name, Price: r.Price}, nil
}

type ProductRepository struct {
	db *sqlx.DB
}

var _ model.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO products (id, name, price) VALUES (:id, :name, :price)`,
		productRow{ID: product.ID.String(), Name: product.Name, Price: product.Price},
	)
	return errors.Wrap(err, "insert product")
}

func (r *ProductRepository) Find(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var row productRow
	err := r.db.GetContext(ctx, &row, `SELECT id, name, price FROM products WHERE id = ?`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}

	product, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name, price FROM products ORDER BY created_at`); err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		product, err := row.toModel()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}
