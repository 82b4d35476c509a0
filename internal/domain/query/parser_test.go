package query

import (
	"net/url"
	"testing"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() (*Parser, *Resources) {
	return NewParser(util.NewValidate()), NewResources()
}

func TestParser_Parse_Defaults(t *testing.T) {
	parser, resources := newTestParser()

	spec, err := parser.Parse(url.Values{}, resources.Products)
	require.NoError(t, err)

	assert.Equal(t, Page{Number: 1, Size: 30}, spec.Page)
	require.Len(t, spec.Sorts, 1)
	assert.Equal(t, "id", spec.Sorts[0].Field.Name)
	assert.False(t, spec.Sorts[0].Desc)
	assert.Empty(t, spec.Filters)
	assert.Empty(t, spec.Includes)

	_, restricted := spec.Selected("products")
	assert.False(t, restricted)
}

func TestParser_Parse_FullFamily(t *testing.T) {
	parser, resources := newTestParser()

	params := url.Values{
		"fields[carts]":      {"id,product_qty"},
		"fields[product]":    {"label,price"},
		"filter[product_id]": {"3,4"},
		"filter[user.name]":  {"alice"},
		"include":            {"product,user,product"},
		"sort":               {"-product_qty,created_at"},
		"search":             {"shoe"},
		"page[number]":       {"2"},
		"page[size]":         {"10"},
		"shipping_cost":      {"10"},
	}

	spec, err := parser.Parse(params, resources.Carts)
	require.NoError(t, err)

	assert.Equal(t, []string{"product", "user"}, spec.Includes)
	assert.Equal(t, Page{Number: 2, Size: 10}, spec.Page)
	assert.Equal(t, 10, spec.Page.Offset())
	assert.Equal(t, "shoe", spec.Search)

	require.Len(t, spec.Sorts, 2)
	assert.Equal(t, "product_qty", spec.Sorts[0].Field.Name)
	assert.True(t, spec.Sorts[0].Desc)
	assert.Equal(t, "created_at", spec.Sorts[1].Field.Name)

	fields, restricted := spec.Selected("carts")
	assert.True(t, restricted)
	assert.Equal(t, []string{"id", "product_qty"}, fields)
	assert.True(t, spec.IsSelected("product", "price"))
	assert.False(t, spec.IsSelected("product", "detail"))
	assert.True(t, spec.IsSelected("user", "email"))

	require.Len(t, spec.Filters, 2)
	byKey := map[string]Filter{}
	for _, f := range spec.Filters {
		byKey[f.Key] = f
	}
	assert.Equal(t, []any{int64(3), int64(4)}, byKey["product_id"].Values)
	assert.False(t, byKey["product_id"].Partial())
	assert.Equal(t, "user", byKey["user.name"].Relation)
	assert.True(t, byKey["user.name"].Partial())
	assert.Equal(t, []any{"alice"}, byKey["user.name"].Values)
}

func TestParser_Parse_QualifiedPrimaryFilter(t *testing.T) {
	parser, resources := newTestParser()

	spec, err := parser.Parse(url.Values{"filter[products.label]": {"shirt"}}, resources.Products)
	require.NoError(t, err)

	require.Len(t, spec.Filters, 1)
	assert.Empty(t, spec.Filters[0].Relation)
	assert.Equal(t, "label", spec.Filters[0].Field.Column)
}

func TestParser_Parse_TypedValues(t *testing.T) {
	parser, resources := newTestParser()

	spec, err := parser.Parse(url.Values{
		"filter[is_checked]": {"true"},
		"filter[created_at]": {"2024-05-01"},
	}, resources.Carts)
	require.NoError(t, err)

	values := map[string]any{}
	for _, f := range spec.Filters {
		values[f.Key] = f.Values[0]
	}
	assert.Equal(t, true, values["is_checked"])
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), values["created_at"])
}

func TestParser_Parse_RejectsUnknownNames(t *testing.T) {
	parser, resources := newTestParser()

	tests := []struct {
		name   string
		params url.Values
	}{
		{name: "unknown include", params: url.Values{"include": {"users"}}},
		{name: "unknown sort", params: url.Values{"sort": {"password"}}},
		{name: "unknown filter", params: url.Values{"filter[password]": {"secret"}}},
		{name: "to-many relation filter", params: url.Values{"filter[carts.product_qty]": {"1"}}},
		{name: "unknown fields namespace", params: url.Values{"fields[orders]": {"id"}}},
		{name: "unknown field", params: url.Values{"fields[products]": {"id,secret"}}},
		{name: "unknown relation field", params: url.Values{"fields[ratings]": {"stars"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.params, resources.Products)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuery))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())
		})
	}
}

func TestParser_Parse_RejectsBadValues(t *testing.T) {
	parser, resources := newTestParser()

	tests := []struct {
		name   string
		params url.Values
		field  string
	}{
		{name: "page number zero", params: url.Values{"page[number]": {"0"}}, field: "page.number"},
		{name: "page number not int", params: url.Values{"page[number]": {"two"}}, field: "page.number"},
		{name: "page number max int", params: url.Values{"page[number]": {"9223372036854775807"}, "page[size]": {"30"}}, field: "page.number"},
		{name: "page offset past bound", params: url.Values{"page[number]": {"71582790"}, "page[size]": {"30"}}, field: "page.number"},
		{name: "page size too large", params: url.Values{"page[size]": {"101"}}, field: "page.size"},
		{name: "page size zero", params: url.Values{"page[size]": {"0"}}, field: "page.size"},
		{name: "search too short", params: url.Values{"search": {"ab"}}, field: "search"},
		{name: "int filter", params: url.Values{"filter[qty]": {"many"}}, field: "filter.qty"},
		{name: "int filter out of range", params: url.Values{"filter[price]": {"-1"}}, field: "filter.price"},
		{name: "short text filter", params: url.Values{"filter[label]": {"a"}}, field: "filter.label"},
		{name: "bad date", params: url.Values{"filter[created_at]": {"yesterday"}}, field: "filter.created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.params, resources.Products)
			require.Error(t, err)

			var verr *domainerrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields(), tt.field)
			assert.Equal(t, 422, verr.HTTPCode())
		})
	}
}

func TestParser_Parse_LargestPageNumber(t *testing.T) {
	parser, resources := newTestParser()

	spec, err := parser.Parse(url.Values{"page[number]": {"71582789"}, "page[size]": {"30"}}, resources.Products)
	require.NoError(t, err)
	assert.Equal(t, 71582789, spec.Page.Number)
	assert.Equal(t, 2147483640, spec.Page.Offset())
}

func TestParser_Parse_SearchLengthBoundary(t *testing.T) {
	parser, resources := newTestParser()

	_, err := parser.Parse(url.Values{"search": {"abc"}}, resources.Products)
	assert.NoError(t, err)

	long := make([]byte, 61)
	for i := range long {
		long[i] = 'a'
	}
	_, err = parser.Parse(url.Values{"search": {string(long)}}, resources.Products)
	assert.Error(t, err)
}

func TestParser_ParseShow_IgnoresListParameters(t *testing.T) {
	parser, resources := newTestParser()

	spec, err := parser.ParseShow(url.Values{
		"include":              {"user,address"},
		"fields[user]":         {"name"},
		"page[size]":           {"1000"},
		"filter[unknown]":      {"x"},
		"sort":                 {"nope"},
		"fields[transactions]": {"status"},
	}, resources.Transactions)
	require.NoError(t, err)

	assert.Equal(t, []string{"user", "address"}, spec.Includes)
	assert.Empty(t, spec.Filters)
	assert.Empty(t, spec.Sorts)
	assert.True(t, spec.IsSelected("transactions", "status"))
	assert.False(t, spec.IsSelected("transactions", "total_price"))
}

func TestParser_ParseShow_RejectsUnknownInclude(t *testing.T) {
	parser, resources := newTestParser()

	_, err := parser.ParseShow(url.Values{"include": {"secrets"}}, resources.Users)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuery))
}

func TestSpec_JoinedAndPreloadedRelations(t *testing.T) {
	parser, resources := newTestParser()

	spec, err := parser.Parse(url.Values{
		"include":           {"product_transactions"},
		"filter[user.name]": {"bob"},
	}, resources.Transactions)
	require.NoError(t, err)

	joined := spec.JoinedRelations()
	require.Len(t, joined, 1)
	assert.Equal(t, "User", joined[0].Association)

	preloaded := spec.PreloadedRelations()
	require.Len(t, preloaded, 1)
	assert.Equal(t, "ProductTransactions", preloaded[0].Association)
	assert.Equal(t, []string{"ProductTransactions.Product"}, preloaded[0].Nested)
}

func TestSpec_SearchForcesRelationJoins(t *testing.T) {
	parser, resources := newTestParser()

	spec, err := parser.Parse(url.Values{"search": {"alice"}}, resources.Carts)
	require.NoError(t, err)

	var names []string
	for _, r := range spec.JoinedRelations() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"user", "product"}, names)
}
