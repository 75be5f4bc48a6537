package transport

import (
	"sales/pkg/domain/model"
	"sales/pkg/domain/service"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userJSON struct {
	Username string `json:"username"`
}

type addProductRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type productJSON struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type addToCartRequest struct {
	ProductID string `json:"product_id"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartItemJSON struct {
	Index     int    `json:"index"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type cartJSON struct {
	Items   []cartItemJSON `json:"items"`
	Total   int64          `json:"total"`
	Message string         `json:"message,omitempty"`
}

type orderItemJSON struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal int64  `json:"subtotal"`
}

type orderJSON struct {
	Ref       string          `json:"ref"`
	OrderID   string          `json:"order_id"`
	Username  string          `json:"username"`
	Timestamp string          `json:"timestamp"`
	Items     []orderItemJSON `json:"items"`
	Total     int64           `json:"total"`
}

type overviewJSON struct {
	Users    []userJSON    `json:"users"`
	Products []productJSON `json:"products"`
	Orders   []orderJSON   `json:"orders"`
}

func toUsersJSON(users []model.User) []userJSON {
	out := make([]userJSON, 0, len(users))
	for _, u := range users {
		out = append(out, userJSON{Username: u.Username})
	}
	return out
}

func toProductJSON(p model.Product) productJSON {
	return productJSON{ID: p.ID.String(), Name: p.Name, Price: p.Price}
}

func toProductsJSON(products []model.Product) []productJSON {
	out := make([]productJSON, 0, len(products))
	for _, p := range products {
		out = append(out, toProductJSON(p))
	}
	return out
}

func toCartJSON(cart *model.Cart) cartJSON {
	items := cart.Items()
	out := cartJSON{Items: make([]cartItemJSON, 0, len(items)), Total: cart.Total()}
	for i, item := range items {
		out.Items = append(out.Items, cartItemJSON{
			Index:     i,
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
		})
	}
	return out
}

func toOrderJSON(o model.Order) orderJSON {
	items := make([]orderItemJSON, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemJSON{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal(),
		})
	}
	return orderJSON{
		Ref:       o.Ref(),
		OrderID:   o.DisplayID(),
		Username:  o.Username,
		Timestamp: o.DisplayTimestamp(),
		Items:     items,
		Total:     o.Total,
	}
}

func toOrdersJSON(orders []model.Order) []orderJSON {
	out := make([]orderJSON, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderJSON(o))
	}
	return out
}

func toOverviewJSON(o *service.Overview) overviewJSON {
	return overviewJSON{
		Users:    toUsersJSON(o.Users),
		Products: toProductsJSON(o.Products),
		Orders:   toOrdersJSON(o.Orders),
	}
}
