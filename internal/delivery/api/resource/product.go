package resource

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// Product serializes a catalog item.
func Product(p *entity.Product, spec *query.Spec) Object {
	out := productFields(p, spec, primary(spec, "products"))

	embedMany(out, spec, "carts", p.Carts, cartFields)
	embedMany(out, spec, "ratings", p.Ratings, ratingFields)
	embedMany(out, spec, "product_transactions", p.ProductTransactions, lineItemFields)

	return out
}

func productFields(p *entity.Product, spec *query.Spec, namespace string) Object {
	return newShape(spec, namespace, p.ID).
		set("label", p.Label).
		set("qty", p.Qty).
		set("price", p.Price).
		set("size", p.Size).
		set("detail", p.Detail).
		set("category", p.Category).
		set("image", p.Image).
		set("created_at", p.CreatedAt).
		set("updated_at", p.UpdatedAt).
		out
}

// Cart serializes a cart row.
func Cart(c *entity.Cart, spec *query.Spec) Object {
	out := cartFields(c, spec, primary(spec, "carts"))

	embedOne(out, spec, "user", c.User, userFields)
	embedOne(out, spec, "product", c.Product, productFields)

	return out
}

func cartFields(c *entity.Cart, spec *query.Spec, namespace string) Object {
	return newShape(spec, namespace, c.ID).
		set("user_id", c.UserID).
		set("product_id", c.ProductID).
		set("product_qty", c.ProductQty).
		set("is_checked", c.IsChecked).
		set("created_at", c.CreatedAt).
		set("updated_at", c.UpdatedAt).
		out
}

// CartSummary serializes the priced totals of the caller's carts.
func CartSummary(s *entity.CartSummary) Object {
	return Object{
		"subtotal_products": s.SubtotalProducts,
		"shipping_cost":     s.ShippingCost,
		"total_price":       s.TotalPrice,
	}
}

// Rating serializes a rating.
func Rating(r *entity.Rating, spec *query.Spec) Object {
	out := ratingFields(r, spec, primary(spec, "ratings"))

	embedOne(out, spec, "user", r.User, userFields)
	embedOne(out, spec, "product", r.Product, productFields)
	embedOne(out, spec, "transaction", r.Transaction, transactionFields)

	return out
}

func ratingFields(r *entity.Rating, spec *query.Spec, namespace string) Object {
	return newShape(spec, namespace, r.ID).
		set("user_id", r.UserID).
		set("product_id", r.ProductID).
		set("transaction_id", r.TransactionID).
		set("rating", r.Rating).
		set("is_rating", r.IsRating).
		set("created_at", r.CreatedAt).
		set("updated_at", r.UpdatedAt).
		out
}
