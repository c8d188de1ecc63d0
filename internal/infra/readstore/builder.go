package readstore

import (
	sq "github.com/Masterminds/squirrel"
)

// All read queries target PostgreSQL via pgx, so dollar placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
