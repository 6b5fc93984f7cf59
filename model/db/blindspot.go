package db

import "time"

// BlindSpot é uma pergunta que a assistente não conseguiu responder com a
// base atual. Alimenta a fila de curadoria.
type BlindSpot struct {
	Id        string    `db:"id" json:"id"`
	Query     string    `db:"query" json:"query"`
	Resolved  bool      `db:"resolved" json:"resolved"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func (BlindSpot) TableName() string {
	return `blind_spots`
}
