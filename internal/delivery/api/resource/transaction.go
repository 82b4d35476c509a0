package resource

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
	"storefront/internal/usecase"
)

// Transaction serializes a checkout header.
func Transaction(t *entity.Transaction, spec *query.Spec) Object {
	out := transactionFields(t, spec, primary(spec, "transactions"))

	embedOne(out, spec, "user", t.User, userFields)
	embedOne(out, spec, "address", t.Address, addressFields)
	embedMany(out, spec, "product_transactions", t.ProductTransactions, lineItemWithProduct)

	return out
}

func transactionFields(t *entity.Transaction, spec *query.Spec, namespace string) Object {
	return newShape(spec, namespace, t.ID).
		set("user_id", t.UserID).
		set("address_id", t.AddressID).
		set("qty_transaction", t.QtyTransaction).
		set("subtotal_products", t.SubtotalProducts).
		set("total_price", t.TotalPrice).
		set("shipping_cost", t.ShippingCost).
		set("status", t.Status).
		set("invoice_number", t.InvoiceNumber).
		set("created_at", t.CreatedAt).
		set("updated_at", t.UpdatedAt).
		out
}

// ProductTransaction serializes a line item.
func ProductTransaction(pt *entity.ProductTransaction, spec *query.Spec) Object {
	out := lineItemFields(pt, spec, primary(spec, "product_transactions"))

	embedOne(out, spec, "transaction", pt.Transaction, transactionFields)
	embedOne(out, spec, "product", pt.Product, productFields)

	return out
}

func lineItemFields(pt *entity.ProductTransaction, spec *query.Spec, namespace string) Object {
	return newShape(spec, namespace, pt.ID).
		set("transaction_id", pt.TransactionID).
		set("product_id", pt.ProductID).
		set("product_qty", pt.ProductQty).
		set("created_at", pt.CreatedAt).
		set("updated_at", pt.UpdatedAt).
		out
}

// lineItemWithProduct embeds the preloaded product of each line of a transaction.
func lineItemWithProduct(pt *entity.ProductTransaction, spec *query.Spec, namespace string) Object {
	out := lineItemFields(pt, spec, namespace)
	if pt.Product != nil {
		out["product"] = productFields(pt.Product, nil, "product")
	}

	return out
}

// Token serializes an issued access token.
func Token(t *usecase.TokenOutput) Object {
	out := Object{
		"access_token": t.AccessToken,
		"token_type":   t.TokenType,
		"expires_in":   t.ExpiresIn,
	}
	if t.User != nil {
		out["user"] = userFields(t.User, nil, "users")
	}

	return out
}
