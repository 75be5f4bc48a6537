package seed

import (
	"context"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"sales/pkg/domain/model"
	"sales/pkg/domain/service"
)

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type Product struct {
	Name  string `yaml:"name"`
	Price int64  `yaml:"price"`
}

// Catalog is the content of a seed file: demo users and products.
type Catalog struct {
	Users    []User    `yaml:"users"`
	Products []Product `yaml:"products"`
}

type Result struct {
	UsersCreated    int
	UsersSkipped    int
	ProductsAdded   int
	ProductsSkipped int
}

func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read seed file")
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, errors.Wrap(err, "parse seed file")
	}
	return &catalog, nil
}

// Apply creates the catalog's users and products. Existing usernames and
// product names already in the catalog are skipped, so a seed file can be
// applied more than once.
func Apply(ctx context.Context, catalog *Catalog, users service.UserService, products service.ProductService, logger log.FieldLogger) (*Result, error) {
	var result Result

	for _, u := range catalog.Users {
		_, err := users.CreateUser(ctx, u.Username, u.Password)
		if errors.Is(err, model.ErrUsernameTaken) {
			logger.WithField("username", u.Username).Info("user already exists, skipping")
			result.UsersSkipped++
			continue
		}
		if err != nil {
			return &result, errors.Wrapf(err, "seed user %q", u.Username)
		}
		result.UsersCreated++
	}

	existing, err := products.ListProducts(ctx)
	if err != nil {
		return &result, errors.Wrap(err, "list products")
	}
	names := make(map[string]bool, len(existing))
	for _, p := range existing {
		names[p.Name] = true
	}

	for _, p := range catalog.Products {
		if names[p.Name] {
			logger.WithField("product", p.Name).Info("product already in catalog, skipping")
			result.ProductsSkipped++
			continue
		}
		if _, err := products.AddProduct(ctx, p.Name, p.Price); err != nil {
			return &result, errors.Wrapf(err, "seed product %q", p.Name)
		}
		names[p.Name] = true
		result.ProductsAdded++
	}

	return &result, nil
}
