// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv_items"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func keyCondition(namespace, key string) sq.And {
	return sq.And{
		sq.Eq{"namespace": namespace},
		sq.Eq{"item_key": key},
	}
}

func buildGetQuery(namespace, key string) (string, []any, error) {
	return psql.Select("item_value").
		From(kvTable).
		Where(keyCondition(namespace, key)).
		Limit(1).
		ToSql()
}

func buildUpsertQuery(namespace, key, value string, at time.Time) (string, []any, error) {
	return psql.Insert(kvTable).
		Columns("namespace", "item_key", "item_value", "updated_at").
		Values(namespace, key, value, at).
		Suffix("ON CONFLICT (namespace, item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteQuery(namespace, key string) (string, []any, error) {
	return psql.Delete(kvTable).
		Where(keyCondition(namespace, key)).
		ToSql()
}
