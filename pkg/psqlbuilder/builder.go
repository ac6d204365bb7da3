package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder is squirrel preconfigured for Postgres ($N placeholders).
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT query with Postgres placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert starts an INSERT query with Postgres placeholders.
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update starts an UPDATE query with Postgres placeholders.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete starts a DELETE query with Postgres placeholders.
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
