package query

// Resources holds the allow-list tables of every resource.
type Resources struct {
	Users               *Schema
	Addresses           *Schema
	Products            *Schema
	Carts               *Schema
	Ratings             *Schema
	ProductTransactions *Schema
	Transactions        *Schema
}

const (
	ruleInt32     = "min=0,max=2147483647"
	ruleLongText  = "min=2,max=65535"
	ruleEmail     = "email,min=11,max=255"
	rulePhone     = "phone,max=255"
	ruleInvoiceNo = "min=2,max=64"
)

// NewResources builds the resource tables and wires their relations.
func NewResources() *Resources {
	r := &Resources{
		Users: NewSchema("users", "users",
			idField(),
			textField("name", "", true),
			textField("email", ruleEmail, true),
			textField("phone", rulePhone, true),
			timeField("created_at"),
			timeField("updated_at"),
		),
		Addresses: NewSchema("addresses", "addresses",
			idField(),
			intField("user_id", ""),
			textField("street", "", true),
			textField("city", "", true),
			textField("postal_code", "", true),
			timeField("created_at"),
			timeField("updated_at"),
		),
		Products: NewSchema("products", "products",
			idField(),
			textField("label", "", true),
			intField("qty", ruleInt32),
			intField("price", ruleInt32),
			intField("size", ruleInt32),
			textField("detail", ruleLongText, true),
			textField("category", ruleLongText, true),
			textField("image", ruleLongText, true),
			timeField("created_at"),
			timeField("updated_at"),
		),
		Carts: NewSchema("carts", "carts",
			idField(),
			intField("user_id", ""),
			intField("product_id", ""),
			intField("product_qty", ruleInt32),
			boolField("is_checked"),
			timeField("created_at"),
			timeField("updated_at"),
		),
		Ratings: NewSchema("ratings", "ratings",
			idField(),
			intField("user_id", ""),
			intField("product_id", ""),
			intField("transaction_id", ""),
			intField("rating", ""),
			boolField("is_rating"),
			timeField("created_at"),
			timeField("updated_at"),
		),
		ProductTransactions: NewSchema("product_transactions", "product_transactions",
			idField(),
			intField("transaction_id", ""),
			intField("product_id", ""),
			intField("product_qty", ruleInt32),
			timeField("created_at"),
			timeField("updated_at"),
		),
		Transactions: NewSchema("transactions", "transactions",
			idField(),
			intField("user_id", ""),
			intField("address_id", ""),
			intField("qty_transaction", ruleInt32),
			intField("subtotal_products", ruleInt32),
			intField("total_price", ruleInt32),
			intField("shipping_cost", ruleInt32),
			textField("status", "", true),
			textField("invoice_number", ruleInvoiceNo, true),
			timeField("created_at"),
			timeField("updated_at"),
		),
	}

	// Cart listings never leave the caller's own rows.
	r.Carts.OwnerColumn = "user_id"

	users := func() *Schema { return r.Users }
	addresses := func() *Schema { return r.Addresses }
	products := func() *Schema { return r.Products }
	carts := func() *Schema { return r.Carts }
	ratings := func() *Schema { return r.Ratings }
	lineItems := func() *Schema { return r.ProductTransactions }
	transactions := func() *Schema { return r.Transactions }

	userSearch := []string{"name", "email", "phone"}

	r.Users.addRelation(hasMany("addresses", "Addresses", "user_id", addresses))
	r.Users.addRelation(hasMany("carts", "Carts", "user_id", carts))
	r.Users.addRelation(hasMany("transactions", "Transactions", "user_id", transactions))
	r.Users.addRelation(hasMany("ratings", "Ratings", "user_id", ratings))

	r.Addresses.addRelation(belongsTo("user", "User", users, userSearch...))

	r.Products.addRelation(hasMany("carts", "Carts", "product_id", carts))
	r.Products.addRelation(hasMany("ratings", "Ratings", "product_id", ratings))
	r.Products.addRelation(hasMany("product_transactions", "ProductTransactions", "product_id", lineItems))

	r.Carts.addRelation(belongsTo("user", "User", users, userSearch...))
	r.Carts.addRelation(belongsTo("product", "Product", products, "label", "detail"))

	r.Ratings.addRelation(belongsTo("user", "User", users, userSearch...))
	r.Ratings.addRelation(belongsTo("product", "Product", products, "label", "detail"))
	r.Ratings.addRelation(belongsTo("transaction", "Transaction", transactions, "status", "invoice_number"))

	r.ProductTransactions.addRelation(belongsTo("transaction", "Transaction", transactions, "status", "invoice_number"))
	r.ProductTransactions.addRelation(belongsTo("product", "Product", products, "label", "detail"))

	r.Transactions.addRelation(belongsTo("user", "User", users, userSearch...))
	r.Transactions.addRelation(belongsTo("address", "Address", addresses, "street", "city"))
	lines := hasMany("product_transactions", "ProductTransactions", "transaction_id", lineItems)
	lines.Nested = []string{"ProductTransactions.Product"}
	lines.NestedKeys = []string{"product_id"}
	r.Transactions.addRelation(lines)

	return r
}

func idField() Field {
	return Field{Name: primaryKey, Kind: KindInt, Filter: FilterExact, Sortable: true}
}

func intField(name, rule string) Field {
	return Field{Name: name, Kind: KindInt, Filter: FilterExact, Sortable: true, Rule: rule}
}

func boolField(name string) Field {
	return Field{Name: name, Kind: KindBool, Filter: FilterExact, Sortable: true}
}

func timeField(name string) Field {
	return Field{Name: name, Kind: KindTime, Filter: FilterExact, Sortable: true}
}

func textField(name, rule string, searchable bool) Field {
	return Field{Name: name, Kind: KindString, Filter: FilterPartial, Sortable: true, Searchable: searchable, Rule: rule}
}

func belongsTo(name, association string, target func() *Schema, search ...string) *Relation {
	return &Relation{
		Name:        name,
		Association: association,
		ToOne:       true,
		Filterable:  true,
		Search:      search,
		target:      target,
	}
}

func hasMany(name, association, foreignKey string, target func() *Schema) *Relation {
	return &Relation{
		Name:        name,
		Association: association,
		ForeignKey:  foreignKey,
		target:      target,
	}
}
