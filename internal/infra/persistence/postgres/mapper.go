package postgres

import (
	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"
)

// The to*Domain mappers follow loaded associations; nil stays nil.

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		PasswordHash:  m.Password,
		RememberToken: m.RememberToken,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Addresses:     mapSlice(m.Addresses, toAddressDomain),
		Carts:         mapSlice(m.Carts, toCartDomain),
		Transactions:  mapSlice(m.Transactions, toTransactionDomain),
		Ratings:       mapSlice(m.Ratings, toRatingDomain),
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Password:      u.PasswordHash,
		RememberToken: u.RememberToken,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func toAddressDomain(m *model.AddressModel) *entity.Address {
	if m == nil {
		return nil
	}

	return &entity.Address{
		ID:         m.ID,
		UserID:     m.UserID,
		Street:     m.Street,
		City:       m.City,
		PostalCode: m.PostalCode,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		User:       toUserDomain(m.User),
	}
}

func fromAddressDomain(a *entity.Address) *model.AddressModel {
	return &model.AddressModel{
		ID:         a.ID,
		UserID:     a.UserID,
		Street:     a.Street,
		City:       a.City,
		PostalCode: a.PostalCode,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	if m == nil {
		return nil
	}

	return &entity.Product{
		ID:                  m.ID,
		Label:               m.Label,
		Qty:                 m.Qty,
		Price:               m.Price,
		Size:                m.Size,
		Detail:              m.Detail,
		Category:            m.Category,
		Image:               m.Image,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		Carts:               mapSlice(m.Carts, toCartDomain),
		Ratings:             mapSlice(m.Ratings, toRatingDomain),
		ProductTransactions: mapSlice(m.ProductTransactions, toProductTransactionDomain),
	}
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:        p.ID,
		Label:     p.Label,
		Qty:       p.Qty,
		Price:     p.Price,
		Size:      p.Size,
		Detail:    p.Detail,
		Category:  p.Category,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toCartDomain(m *model.CartModel) *entity.Cart {
	if m == nil {
		return nil
	}

	return &entity.Cart{
		ID:         m.ID,
		UserID:     m.UserID,
		ProductID:  m.ProductID,
		ProductQty: m.ProductQty,
		IsChecked:  m.IsChecked,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		User:       toUserDomain(m.User),
		Product:    toProductDomain(m.Product),
	}
}

func fromCartDomain(c *entity.Cart) *model.CartModel {
	return &model.CartModel{
		ID:         c.ID,
		UserID:     c.UserID,
		ProductID:  c.ProductID,
		ProductQty: c.ProductQty,
		IsChecked:  c.IsChecked,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func toTransactionDomain(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:                  m.ID,
		UserID:              m.UserID,
		AddressID:           m.AddressID,
		QtyTransaction:      m.QtyTransaction,
		SubtotalProducts:    m.SubtotalProducts,
		TotalPrice:          m.TotalPrice,
		ShippingCost:        m.ShippingCost,
		Status:              m.Status,
		InvoiceNumber:       m.InvoiceNumber,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		User:                toUserDomain(m.User),
		Address:             toAddressDomain(m.Address),
		ProductTransactions: mapSlice(m.ProductTransactions, toProductTransactionDomain),
	}
}

func fromTransactionDomain(t *entity.Transaction) *model.TransactionModel {
	return &model.TransactionModel{
		ID:               t.ID,
		UserID:           t.UserID,
		AddressID:        t.AddressID,
		QtyTransaction:   t.QtyTransaction,
		SubtotalProducts: t.SubtotalProducts,
		TotalPrice:       t.TotalPrice,
		ShippingCost:     t.ShippingCost,
		Status:           t.Status,
		InvoiceNumber:    t.InvoiceNumber,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func toProductTransactionDomain(m *model.ProductTransactionModel) *entity.ProductTransaction {
	if m == nil {
		return nil
	}

	return &entity.ProductTransaction{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		ProductID:     m.ProductID,
		ProductQty:    m.ProductQty,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Transaction:   toTransactionDomain(m.Transaction),
		Product:       toProductDomain(m.Product),
	}
}

func fromProductTransactionDomain(pt *entity.ProductTransaction) *model.ProductTransactionModel {
	return &model.ProductTransactionModel{
		ID:            pt.ID,
		TransactionID: pt.TransactionID,
		ProductID:     pt.ProductID,
		ProductQty:    pt.ProductQty,
		CreatedAt:     pt.CreatedAt,
		UpdatedAt:     pt.UpdatedAt,
	}
}

func toRatingDomain(m *model.RatingModel) *entity.Rating {
	if m == nil {
		return nil
	}

	return &entity.Rating{
		ID:            m.ID,
		UserID:        m.UserID,
		ProductID:     m.ProductID,
		TransactionID: m.TransactionID,
		Rating:        m.Rating,
		IsRating:      m.IsRating,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		User:          toUserDomain(m.User),
		Product:       toProductDomain(m.Product),
		Transaction:   toTransactionDomain(m.Transaction),
	}
}

func fromRatingDomain(r *entity.Rating) *model.RatingModel {
	return &model.RatingModel{
		ID:            r.ID,
		UserID:        r.UserID,
		ProductID:     r.ProductID,
		TransactionID: r.TransactionID,
		Rating:        r.Rating,
		IsRating:      r.IsRating,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func mapSlice[M any, E any](in []*M, fn func(*M) *E) []*E {
	if in == nil {
		return nil
	}

	out := make([]*E, 0, len(in))
	for _, m := range in {
		out = append(out, fn(m))
	}

	return out
}
