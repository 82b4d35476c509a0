package postgres

import (
	"context"
	"slices"
	"strings"

	"storefront/internal/domain/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const primaryKey = "id"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// listRecords runs a validated list Spec against model M. It issues one COUNT
// and one data query; to-one relations are joined into the data query and
// to-many relations are batch preloaded, so row count never multiplies queries.
func listRecords[M any](ctx context.Context, db *gorm.DB, spec *query.Spec, scope query.Scope) ([]*M, int64, error) {
	base := func() (*gorm.DB, error) {
		tx := db.WithContext(ctx).Model(new(M))
		tx = joinRelations(db, tx, spec)

		tx, err := applyScope(tx, spec.Schema, scope)
		if err != nil {
			return nil, err
		}

		return applySearch(applyFilters(tx, spec), spec), nil
	}

	countTx, err := base()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := countTx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count "+spec.Schema.Table)
	}

	records := make([]*M, 0)
	if total == 0 || int64(spec.Page.Offset()) >= total {
		return records, total, nil
	}

	dataTx, err := base()
	if err != nil {
		return nil, 0, err
	}

	dataTx = selectPrimary(dataTx, spec)
	dataTx = preloadRelations(dataTx, spec)
	dataTx = applySorts(dataTx, spec)
	dataTx = dataTx.Limit(spec.Page.Size).Offset(spec.Page.Offset())

	if err := dataTx.Find(&records).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list "+spec.Schema.Table)
	}

	return records, total, nil
}

// showRecord loads one row of M by id shaped by the spec's fields and includes.
// A missing row yields gorm.ErrRecordNotFound.
func showRecord[M any](ctx context.Context, db *gorm.DB, id int64, spec *query.Spec) (*M, error) {
	tx := db.WithContext(ctx).Model(new(M))
	tx = joinRelations(db, tx, spec)
	tx = selectPrimary(tx, spec)
	tx = preloadRelations(tx, spec)
	tx = tx.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: primaryKey}, Value: id})

	record := new(M)
	if err := tx.Take(record).Error; err != nil {
		return nil, err
	}

	return record, nil
}

func applyScope(tx *gorm.DB, schema *query.Schema, scope query.Scope) (*gorm.DB, error) {
	if schema.OwnerColumn == "" {
		return tx, nil
	}
	if scope.OwnerID == 0 {
		return nil, errors.Errorf("%s listing requires an owner", schema.Resource)
	}

	return tx.Where(clause.Eq{
		Column: clause.Column{Table: clause.CurrentTable, Name: schema.OwnerColumn},
		Value:  scope.OwnerID,
	}), nil
}

// joinRelations LEFT JOINs every to-one relation the spec touches. The joined
// columns are limited to the target schema so hidden columns are never read.
func joinRelations(db *gorm.DB, tx *gorm.DB, spec *query.Spec) *gorm.DB {
	for _, rel := range spec.JoinedRelations() {
		columns := []string{primaryKey}
		if spec.Included(rel.Name) {
			columns = selectedColumns(spec, rel.Name, rel.Target())
		}
		tx = tx.Joins(rel.Association, db.Session(&gorm.Session{NewDB: true}).Select(columns))
	}

	return tx
}

func preloadRelations(tx *gorm.DB, spec *query.Spec) *gorm.DB {
	for _, rel := range spec.PreloadedRelations() {
		columns := selectedColumns(spec, rel.Name, rel.Target())
		for _, key := range append([]string{rel.ForeignKey}, rel.NestedKeys...) {
			if key != "" && !slices.Contains(columns, key) {
				columns = append(columns, key)
			}
		}

		tx = tx.Preload(rel.Association, func(db *gorm.DB) *gorm.DB {
			return db.Select(columns)
		})
		for _, nested := range rel.Nested {
			tx = tx.Preload(nested)
		}
	}

	return tx
}

// selectPrimary projects the primary table onto its selected public columns.
// Columns are table qualified so joined relations cannot make them ambiguous.
func selectPrimary(tx *gorm.DB, spec *query.Spec) *gorm.DB {
	columns := selectedColumns(spec, spec.Schema.Resource, spec.Schema)

	qualified := make([]string, 0, len(columns))
	for _, c := range columns {
		qualified = append(qualified, spec.Schema.Table+"."+c)
	}

	return tx.Select(qualified)
}

// selectedColumns resolves a fields namespace to columns, always keeping id.
func selectedColumns(spec *query.Spec, namespace string, schema *query.Schema) []string {
	columns := []string{primaryKey}

	names, restricted := spec.Selected(namespace)
	if !restricted {
		for _, f := range schema.Fields() {
			if f.Column != primaryKey {
				columns = append(columns, f.Column)
			}
		}

		return columns
	}

	for _, name := range names {
		f, ok := schema.Field(name)
		if !ok || f.Column == primaryKey || slices.Contains(columns, f.Column) {
			continue
		}
		columns = append(columns, f.Column)
	}

	return columns
}

func applyFilters(tx *gorm.DB, spec *query.Spec) *gorm.DB {
	for _, f := range spec.Filters {
		column := filterColumn(spec, f)

		switch {
		case f.Partial():
			tx = tx.Where(ilike(column, f.Values[0]))
		case len(f.Values) == 1:
			tx = tx.Where(clause.Eq{Column: column, Value: f.Values[0]})
		default:
			tx = tx.Where(clause.IN{Column: column, Values: f.Values})
		}
	}

	return tx
}

func filterColumn(spec *query.Spec, f query.Filter) clause.Column {
	if f.Relation == "" {
		return clause.Column{Table: clause.CurrentTable, Name: f.Field.Column}
	}

	rel, _ := spec.Schema.Relation(f.Relation)

	return clause.Column{Table: rel.Association, Name: f.Field.Column}
}

// applySearch ORs a case-insensitive substring match over the searchable
// primary columns and the search columns of every to-one relation.
func applySearch(tx *gorm.DB, spec *query.Spec) *gorm.DB {
	if spec.Search == "" {
		return tx
	}

	var exprs []clause.Expression
	for _, f := range spec.Schema.SearchFields() {
		exprs = append(exprs, ilike(clause.Column{Table: clause.CurrentTable, Name: f.Column}, spec.Search))
	}

	for _, rel := range spec.JoinedRelations() {
		target := rel.Target()
		for _, name := range rel.Search {
			f, ok := target.Field(name)
			if !ok {
				continue
			}
			exprs = append(exprs, ilike(clause.Column{Table: rel.Association, Name: f.Column}, spec.Search))
		}
	}

	if len(exprs) == 0 {
		return tx
	}

	return tx.Where(clause.Or(exprs...))
}

func applySorts(tx *gorm.DB, spec *query.Spec) *gorm.DB {
	sortedByID := false
	for _, s := range spec.Sorts {
		if s.Field.Column == primaryKey {
			sortedByID = true
		}
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Table: clause.CurrentTable, Name: s.Field.Column},
			Desc:   s.Desc,
		})
	}

	// Stable pagination needs a unique tiebreaker.
	if !sortedByID {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: primaryKey}})
	}

	return tx
}

func ilike(column clause.Column, value any) clause.Expression {
	term, _ := value.(string)

	return clause.Expr{
		SQL:  "? ILIKE ?",
		Vars: []any{column, "%" + likeEscaper.Replace(term) + "%"},
	}
}
