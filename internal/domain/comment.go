package domain

import (
	"time"
)

type Comment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	Update    *Update   `json:"-"`
	Author    *Employee `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}
