package model

import "github.com/google/uuid"

type UserCreated struct {
	Username string
}

func (e UserCreated) Type() string { return "UserCreated" }

type ProductAdded struct {
	ProductID uuid.UUID
	Name      string
	Price     int64
}

func (e ProductAdded) Type() string { return "ProductAdded" }

type OrderPlaced struct {
	OrderID  string
	Username string
	Total    int64
	Items    int
}

func (e OrderPlaced) Type() string { return "OrderPlaced" }

type UserLoggedIn struct {
	Username string
	Role     Role
}

func (e UserLoggedIn) Type() string { return "UserLoggedIn" }
