package quote_order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

type fakeCatalogClient struct{}

func (fakeCatalogClient) GetCatalogWithGracefulDegradation(ctx context.Context) (domain.Catalog, error) {
	return domain.DefaultCatalog(), nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_BasePlusAddons(t *testing.T) {
	uc := NewUseCase(fakeCatalogClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		LengthID: "fs-s",
		AddonQty: map[string]int{"od": 3},
	})
	require.NoError(t, err)

	// 50$ base + 3 x 5$ ("5$–20$" prices at its lower bound).
	assert.Equal(t, 65, resp.TotalPrice)
	assert.Equal(t, "Full set (short)", resp.ServiceName)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, domain.PriceLine{ItemID: "od", Name: "3x Other designs", Qty: 3, Amount: 15}, resp.Items[0])
}

func TestExecute_NoLengthYet(t *testing.T) {
	uc := NewUseCase(fakeCatalogClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		AddonQty: map[string]int{"so": 1},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.ServiceName)
	assert.Equal(t, 15, resp.TotalPrice)
}

func TestExecute_ClampsQuantities(t *testing.T) {
	uc := NewUseCase(fakeCatalogClient{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		LengthID: "fs-s",
		AddonQty: map[string]int{"sm": 9, "bn": 100},
	})
	require.NoError(t, err)
	assert.Equal(t, 50+30+domain.MaxAddonQuantity*3, resp.TotalPrice)
}

func TestExecute_UnknownItem(t *testing.T) {
	uc := NewUseCase(fakeCatalogClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{LengthID: "nope"})
	assert.ErrorIs(t, err, ErrUnknownItem)

	_, err = uc.Execute(context.Background(), &Request{AddonQty: map[string]int{"nope": 1}})
	assert.ErrorIs(t, err, ErrUnknownItem)

	// Length id in the addon map is rejected too.
	_, err = uc.Execute(context.Background(), &Request{AddonQty: map[string]int{"fs-s": 1}})
	assert.ErrorIs(t, err, ErrUnknownItem)
}
