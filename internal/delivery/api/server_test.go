package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	servicemocks "storefront/internal/mocks/service"
	ucmocks "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testToken   = "good-token"
	testTokenID = "tok-42"
	testUserID  = int64(42)
)

type stubPinger struct {
	err error
}

func (p *stubPinger) PingContext(context.Context) error {
	return p.err
}

type fixtures struct {
	tokens       *servicemocks.MockTokenService
	denylist     *servicemocks.MockTokenDenylist
	auth         *ucmocks.MockAuthUsecase
	users        *ucmocks.MockUserUsecase
	addresses    *ucmocks.MockAddressUsecase
	products     *ucmocks.MockProductUsecase
	carts        *ucmocks.MockCartUsecase
	ratings      *ucmocks.MockRatingUsecase
	lines        *ucmocks.MockProductTransactionUsecase
	transactions *ucmocks.MockTransactionUsecase
	pinger       *stubPinger
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return cfg
}

func createTestServer(t *testing.T) (*echo.Echo, *fixtures) {
	t.Helper()

	fx := &fixtures{
		tokens:       servicemocks.NewMockTokenService(t),
		denylist:     servicemocks.NewMockTokenDenylist(t),
		auth:         ucmocks.NewMockAuthUsecase(t),
		users:        ucmocks.NewMockUserUsecase(t),
		addresses:    ucmocks.NewMockAddressUsecase(t),
		products:     ucmocks.NewMockProductUsecase(t),
		carts:        ucmocks.NewMockCartUsecase(t),
		ratings:      ucmocks.NewMockRatingUsecase(t),
		lines:        ucmocks.NewMockProductTransactionUsecase(t),
		transactions: ucmocks.NewMockTransactionUsecase(t),
		pinger:       &stubPinger{},
	}

	fx.tokens.On("ValidateToken", testToken).Return(&service.Claims{ID: testTokenID, UserID: testUserID}, nil).Maybe()
	fx.tokens.On("ValidateToken", mock.MatchedBy(func(s string) bool { return s != testToken })).
		Return(nil, errors.New("token is malformed")).Maybe()
	fx.denylist.On("IsRevoked", mock.Anything, testTokenID).Return(false, nil).Maybe()

	logger := newDiscardLogger()
	parser := query.NewParser(util.NewValidate())
	resources := query.NewResources()

	params := router.RouterParams{
		HealthHandler: handler.NewHealthHandler(handler.HealthHandlerParams{DB: fx.pinger, Logger: logger}),
		AuthHandler:   handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.auth}),
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC: fx.users, Parser: parser, Resources: resources,
		}),
		AddressHandler: handler.NewAddressHandler(handler.AddressHandlerParams{
			AddressUC: fx.addresses, Parser: parser, Resources: resources,
		}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{
			ProductUC: fx.products, Parser: parser, Resources: resources,
		}),
		CartHandler: handler.NewCartHandler(handler.CartHandlerParams{
			CartUC: fx.carts, Parser: parser, Resources: resources,
		}),
		RatingHandler: handler.NewRatingHandler(handler.RatingHandlerParams{
			RatingUC: fx.ratings, Parser: parser, Resources: resources,
		}),
		ProductTransactionHandler: handler.NewProductTransactionHandler(handler.ProductTransactionHandlerParams{
			LineUC: fx.lines, Parser: parser, Resources: resources,
		}),
		TransactionHandler: handler.NewTransactionHandler(handler.TransactionHandlerParams{
			TransactionUC: fx.transactions, Parser: parser, Resources: resources,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(fx.tokens, fx.denylist, logger),
	}

	return NewEcho(newTestConfig(), logger, params), fx
}

func do(e *echo.Echo, method, target, body string, authed bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := decode(t, rec)
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, rec.Body.String())

	return e
}

func TestHealth(t *testing.T) {
	e, fx := createTestServer(t)

	rec := do(e, http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["data"].(map[string]any)["status"])

	fx.pinger.err = errors.New("connection refused")
	rec = do(e, http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	e, _ := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", decode(t, rec)["meta"].(map[string]any)["request_id"])
}

func TestAuthentication(t *testing.T) {
	e, _ := createTestServer(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "invalid token", header: "Bearer nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			errInfo := errorOf(t, rec)
			assert.Equal(t, "UNAUTHORIZED", errInfo["code"])
			assert.NotContains(t, errInfo, "details")
		})
	}
}

func TestProductIndex_ParsesQueryAndReturnsPage(t *testing.T) {
	e, fx := createTestServer(t)

	fx.products.On("List", mock.Anything, mock.MatchedBy(func(spec *query.Spec) bool {
		return spec.Page.Size == 1 && spec.Page.Number == 2 && spec.Search == "shirt"
	})).Return(func(_ context.Context, spec *query.Spec) *usecase.ListOutput[*entity.Product] {
		return usecase.NewListOutput([]*entity.Product{{ID: 2, Label: "Shirt", Price: 10}}, 3, spec)
	}, nil).Once()

	rec := do(e, http.MethodGet, "/api/v1/products?page[size]=1&page[number]=2&search=shirt&fields[products]=label", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode(t, rec)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, map[string]any{"id": float64(2), "label": "Shirt"}, data[0])

	page := body["meta"].(map[string]any)["page"].(map[string]any)
	assert.Equal(t, float64(2), page["current_page"])
	assert.Equal(t, float64(3), page["last_page"])
	assert.Equal(t, float64(2), page["from"])
	assert.Equal(t, float64(2), page["to"])
}

func TestProductIndex_RejectsUnknownInclude(t *testing.T) {
	e, fx := createTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/products?include=secrets", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := errorOf(t, rec)
	assert.Equal(t, "INVALID_QUERY", errInfo["code"])
	assert.Equal(t, map[string]any{"parameter": "include"}, errInfo["details"])
	fx.products.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestProductIndex_RejectsBadPageSize(t *testing.T) {
	e, _ := createTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/products?page[size]=1000", "", true)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	details := errorOf(t, rec)["details"].(map[string]any)
	assert.Contains(t, details, "page.size")
}

func TestProductIndex_RejectsOverflowingPageNumber(t *testing.T) {
	e, fx := createTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/products?page[number]=9223372036854775807&page[size]=30", "", true)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	details := errorOf(t, rec)["details"].(map[string]any)
	assert.Contains(t, details, "page.number")
	fx.products.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestProductStore(t *testing.T) {
	e, fx := createTestServer(t)

	fx.products.On("Store", mock.Anything, &usecase.CreateProductInput{
		Label: "Shirt", Qty: 0, Price: 100, Size: 2, Detail: "Cotton", Category: "Tops", Image: "shirt.png",
	}).Return(&entity.Product{ID: 1, Label: "Shirt", Price: 100, Size: 2}, nil).Once()

	rec := do(e, http.MethodPost, "/api/v1/products",
		`{"label":"Shirt","qty":0,"price":100,"size":2,"detail":"Cotton","category":"Tops","image":"shirt.png"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "The new product has been saved.", body["info"])
	assert.Equal(t, "Shirt", body["data"].(map[string]any)["label"])
}

func TestProductStore_ValidationFailure(t *testing.T) {
	e, _ := createTestServer(t)

	rec := do(e, http.MethodPost, "/api/v1/products", `{"label":"S","price":-1}`, true)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errInfo := errorOf(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo["code"])

	details := errInfo["details"].(map[string]any)
	for _, field := range []string{"label", "qty", "price", "size", "detail", "category", "image"} {
		assert.Contains(t, details, field)
	}
	assert.Equal(t, []any{"The label must be at least 2 characters."}, details["label"])
	assert.Equal(t, []any{"The qty field is required."}, details["qty"])
}

func TestProductStore_MalformedBody(t *testing.T) {
	e, _ := createTestServer(t)

	rec := do(e, http.MethodPost, "/api/v1/products", `{"label":`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", errorOf(t, rec)["code"])
}

func TestProductShow_NonNumericIDIsNotFound(t *testing.T) {
	e, _ := createTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/products/abc", "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", errorOf(t, rec)["code"])
}

func TestProductUpdate_PassesOnlyGivenFields(t *testing.T) {
	e, fx := createTestServer(t)

	fx.products.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(in *usecase.UpdateProductInput) bool {
		return in.Price != nil && *in.Price == 250 && in.Label == nil && in.Qty == nil
	})).Return(&entity.Product{ID: 5, Price: 250}, nil).Twice()

	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		rec := do(e, method, "/api/v1/products/5", `{"price":250}`, true)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "The product has been updated.", decode(t, rec)["info"])
	}
}

func TestCheckout(t *testing.T) {
	e, fx := createTestServer(t)

	fx.transactions.On("Checkout", mock.Anything, testUserID, mock.MatchedBy(func(in *usecase.CheckoutInput) bool {
		return in.AddressID == 7 && in.ShippingCost == 10 && len(in.Lines) == 2 &&
			in.Lines[0] == usecase.CheckoutLine{ProductID: 3, Qty: 2} && in.TotalPrice == nil
	})).Return(&entity.Transaction{
		ID: 11, UserID: testUserID, AddressID: 7, Status: constants.TransactionStatusInProgress, InvoiceNumber: "INV0709123456",
	}, nil).Once()

	rec := do(e, http.MethodPost, "/api/v1/transactions",
		`{"address_id":7,"shipping_cost":10,"product_transactions":[{"product_id":3,"qty":2},{"product_id":4,"qty":1}]}`, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "The new transaction has been saved.", body["info"])
	assert.Equal(t, "INV0709123456", body["data"].(map[string]any)["invoice_number"])
}

func TestCheckout_OutOfStock(t *testing.T) {
	e, fx := createTestServer(t)

	fx.transactions.On("Checkout", mock.Anything, testUserID, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.NewOutOfStockError(3), "failed to checkout")).Once()

	rec := do(e, http.MethodPost, "/api/v1/transactions",
		`{"address_id":7,"shipping_cost":0,"product_transactions":[{"product_id":3,"qty":99}]}`, true)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errInfo := errorOf(t, rec)
	assert.Equal(t, "OUT_OF_STOCK", errInfo["code"])
	assert.Equal(t, "3, Out of stock", errInfo["message"])
	assert.Equal(t, map[string]any{"product_id": float64(3)}, errInfo["details"])
}

func TestCheckout_RequiresLines(t *testing.T) {
	e, _ := createTestServer(t)

	rec := do(e, http.MethodPost, "/api/v1/transactions", `{"address_id":7,"shipping_cost":0,"product_transactions":[]}`, true)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, errorOf(t, rec)["details"], "product_transactions")
}

func TestCompleteTransaction_AlreadyComplete(t *testing.T) {
	e, fx := createTestServer(t)

	fx.transactions.On("Complete", mock.Anything, testUserID, int64(11)).
		Return(nil, domainerrors.ErrTransactionAlreadyComplete).Once()

	rec := do(e, http.MethodPatch, "/api/v1/transactions/11", "", true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "TRANSACTION_ALREADY_COMPLETE", errorOf(t, rec)["code"])
}

func TestForbiddenHidesDetails(t *testing.T) {
	e, fx := createTestServer(t)

	fx.addresses.On("Destroy", mock.Anything, testUserID, int64(9)).
		Return(nil, domainerrors.ErrForbidden.WithDetails(map[string]int64{"owner": 1})).Once()

	rec := do(e, http.MethodDelete, "/api/v1/addresses/9", "", true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotContains(t, errorOf(t, rec), "details")
}

func TestCartDetails(t *testing.T) {
	e, fx := createTestServer(t)

	fx.carts.On("Details", mock.Anything, testUserID, int64(15)).
		Return(&entity.CartSummary{SubtotalProducts: 300, ShippingCost: 15, TotalPrice: 315}, nil).Once()

	rec := do(e, http.MethodGet, "/api/v1/carts/details?shipping_cost=15", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]any{
		"subtotal_products": float64(300),
		"shipping_cost":     float64(15),
		"total_price":       float64(315),
	}, decode(t, rec)["data"])
}

func TestCartDetails_RejectsShippingCost(t *testing.T) {
	e, _ := createTestServer(t)

	for _, target := range []string{
		"/api/v1/carts/details",
		"/api/v1/carts/details?shipping_cost=abc",
		"/api/v1/carts/details?shipping_cost=-1",
		"/api/v1/carts/details?shipping_cost=2147483648",
	} {
		rec := do(e, http.MethodGet, target, "", true)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, target)
		assert.Contains(t, errorOf(t, rec)["details"], "shipping_cost", target)
	}
}

func TestCartIndex_IsScopedToCaller(t *testing.T) {
	e, fx := createTestServer(t)

	fx.carts.On("List", mock.Anything, testUserID, mock.Anything).
		Return(func(_ context.Context, _ int64, spec *query.Spec) *usecase.ListOutput[*entity.Cart] {
			return usecase.NewListOutput([]*entity.Cart{}, 0, spec)
		}, nil).Once()

	rec := do(e, http.MethodGet, "/api/v1/carts?shipping_cost=10", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, []any{}, body["data"])
	assert.Equal(t, float64(1), body["meta"].(map[string]any)["page"].(map[string]any)["last_page"])
}

func TestInvoiceQR(t *testing.T) {
	e, fx := createTestServer(t)

	png := []byte{0x89, 'P', 'N', 'G'}
	fx.transactions.On("InvoiceQR", mock.Anything, testUserID, int64(11)).Return(png, nil).Once()

	rec := do(e, http.MethodGet, "/api/v1/transactions/11/invoice-qr", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestLineItemUpdateIsRejected(t *testing.T) {
	e, fx := createTestServer(t)

	fx.lines.On("Update", mock.Anything, testUserID, int64(4)).Return(nil, domainerrors.ErrLineItemImmutable).Once()

	rec := do(e, http.MethodPut, "/api/v1/product-transactions/4", `{"product_qty":3}`, true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "LINE_ITEM_IMMUTABLE", errorOf(t, rec)["code"])
}

func TestLogin(t *testing.T) {
	e, fx := createTestServer(t)

	fx.auth.On("Login", mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "Secret#123"}).
		Return(&usecase.TokenOutput{AccessToken: "jwt", TokenType: "Bearer", ExpiresIn: 3600}, nil).Once()
	fx.auth.On("Login", mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials).Once()

	rec := do(e, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"Secret#123"}`, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "jwt", data["access_token"])
	assert.Equal(t, "Bearer", data["token_type"])
	assert.Equal(t, float64(3600), data["expires_in"])

	rec = do(e, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"wrong"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorOf(t, rec)["code"])
}

func TestLogout(t *testing.T) {
	e, fx := createTestServer(t)

	fx.auth.On("Logout", mock.Anything, mock.MatchedBy(func(c *service.Claims) bool {
		return c.ID == testTokenID && c.UserID == testUserID
	})).Return(nil).Once()

	rec := do(e, http.MethodPost, "/auth/logout", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "You have been logged out.", decode(t, rec)["info"])

	rec = do(e, http.MethodPost, "/auth/logout", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRevokedTokenIsRejected(t *testing.T) {
	e, fx := createTestServer(t)

	fx.denylist.ExpectedCalls = nil
	fx.denylist.On("IsRevoked", mock.Anything, testTokenID).Return(true, nil)

	rec := do(e, http.MethodGet, "/api/v1/products", "", true)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorOf(t, rec)["code"])
	fx.products.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestRegister_RejectsWeakPassword(t *testing.T) {
	e, _ := createTestServer(t)

	rec := do(e, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","phone":"+(123) 456-7890","password":"password"}`, false)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	details := errorOf(t, rec)["details"].(map[string]any)
	assert.Contains(t, details, "password")
	assert.NotContains(t, details, "phone")
}

func TestUnknownErrorIsHidden(t *testing.T) {
	e, fx := createTestServer(t)

	fx.users.On("Show", mock.Anything, int64(1), mock.Anything).
		Return(nil, errors.New("pq: relation users does not exist")).Once()

	rec := do(e, http.MethodGet, "/api/v1/users/1", "", true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	errInfo := errorOf(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", errInfo["code"])
	assert.NotContains(t, errInfo["message"], "pq:")
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	e, _ := createTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/orders", "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", errorOf(t, rec)["code"])
}
