package db

import "time"

// Admin é um curador do portal. Password guarda o hash bcrypt.
type Admin struct {
	Id        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func (Admin) TableName() string {
	return `admins`
}
