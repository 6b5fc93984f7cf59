package dao

import (
	"github.com/jmoiron/sqlx"
)

// DB é atribuído em initialize/db.go
var DB *sqlx.DB

var App = new(DaoGroup)

type DaoGroup struct {
	KnowledgeDb knowledgeDb
	FeedbackDb  feedbackDb
	BlindSpotDb blindSpotDb
	EventDb     eventDb
	AdminDb     adminDb
}
