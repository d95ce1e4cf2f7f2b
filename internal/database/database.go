package database

import (
	"strings"

	"gorm.io/gorm"
)

type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike backslash-escapes LIKE metacharacters so user input matches
// them literally. The query must carry an ESCAPE '\' clause.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
