package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAddressService(t *testing.T) (usecase.AddressUsecase, *mockRepo.MockAddressRepository) {
	addressRepo := mockRepo.NewMockAddressRepository(t)

	return NewAddressService(AddressServiceParams{AddressRepo: addressRepo, Logger: newDiscardLogger()}), addressRepo
}

func TestAddressService_Store_OwnedByCaller(t *testing.T) {
	srv, addressRepo := createTestAddressService(t)
	ctx := context.Background()

	addressRepo.On("Create", ctx, mock.MatchedBy(func(a *entity.Address) bool {
		return a.UserID == 3 && a.Street == "Main St 1"
	})).Return(nil)

	address, err := srv.Store(ctx, 3, &usecase.CreateAddressInput{Street: "Main St 1", City: "Springfield", PostalCode: "12345"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), address.UserID)
}

func TestAddressService_Update(t *testing.T) {
	tests := []struct {
		name      string
		callerID  int64
		input     *usecase.UpdateAddressInput
		wantWrite bool
		wantErr   error
	}{
		{name: "changed street", callerID: 3, input: &usecase.UpdateAddressInput{Street: stringPtr("Elm St 2")}, wantWrite: true},
		{name: "nothing changed", callerID: 3, input: &usecase.UpdateAddressInput{City: stringPtr("Springfield")}},
		{name: "empty patch", callerID: 3, input: &usecase.UpdateAddressInput{}},
		{name: "another user", callerID: 4, input: &usecase.UpdateAddressInput{Street: stringPtr("Elm St 2")}, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, addressRepo := createTestAddressService(t)
			ctx := context.Background()

			addressRepo.On("FindByID", ctx, int64(1)).
				Return(&entity.Address{ID: 1, UserID: 3, Street: "Main St 1", City: "Springfield"}, nil)
			if tt.wantWrite {
				addressRepo.On("Update", ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
			}

			_, err := srv.Update(ctx, tt.callerID, 1, tt.input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			if !tt.wantWrite {
				addressRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			}
		})
	}
}
