package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Dbfunc é implementada por todas as structs de tabela.
type Dbfunc interface {
	TableName() string
}

// StringList mapeia uma coluna jsonb de lista de strings (tags, públicos).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("tipo inesperado para StringList: %T", src)
	}
}
