package models

import "github.com/shopspring/decimal"

type Item struct {
	Id    int             `json:"id" db:"id"`
	Name  string          `json:"name" db:"name"`
	Price decimal.Decimal `json:"price" db:"price"`
}

type User struct {
	Id       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
	Cart     Cart   `json:"cart"`
}

// Cart holds one entry per unit: adding three of an item appends
// three entries. Total must stay equal to the sum of entry prices.
type Cart struct {
	Id    int             `json:"id"`
	Items []Item          `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func (c *Cart) RecomputeTotal() {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price)
	}
	c.Total = total
}

// UserOrder is a snapshot of a cart at submission time. Entries carry
// the price as of submission, so later catalog changes don't touch it.
type UserOrder struct {
	Id     int             `json:"id"`
	UserId int             `json:"user_id"`
	Items  []Item          `json:"items"`
	Total  decimal.Decimal `json:"total"`
}
