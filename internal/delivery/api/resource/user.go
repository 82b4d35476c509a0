package resource

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
)

// User serializes a user. The password hash and remember token are never emitted.
func User(u *entity.User, spec *query.Spec) Object {
	out := userFields(u, spec, primary(spec, "users"))

	embedMany(out, spec, "addresses", u.Addresses, addressFields)
	embedMany(out, spec, "carts", u.Carts, cartFields)
	embedMany(out, spec, "transactions", u.Transactions, transactionFields)
	embedMany(out, spec, "ratings", u.Ratings, ratingFields)

	return out
}

func userFields(u *entity.User, spec *query.Spec, namespace string) Object {
	return newShape(spec, namespace, u.ID).
		set("name", u.Name).
		set("email", u.Email).
		set("phone", u.Phone).
		set("created_at", u.CreatedAt).
		set("updated_at", u.UpdatedAt).
		out
}

// Address serializes an address.
func Address(a *entity.Address, spec *query.Spec) Object {
	out := addressFields(a, spec, primary(spec, "addresses"))

	embedOne(out, spec, "user", a.User, userFields)

	return out
}

func addressFields(a *entity.Address, spec *query.Spec, namespace string) Object {
	return newShape(spec, namespace, a.ID).
		set("user_id", a.UserID).
		set("street", a.Street).
		set("city", a.City).
		set("postal_code", a.PostalCode).
		set("created_at", a.CreatedAt).
		set("updated_at", a.UpdatedAt).
		out
}
