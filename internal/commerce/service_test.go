package commerce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/monitoring"
	"github.com/yuvasree15/healthpuls/pkg/store"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

var testCard = &types.CardDetails{
	Number: "4111 1111 1111 1111",
	Expiry: "12/26",
	CVV:    "123",
}

func setupTestService(t *testing.T) *Service {
	t.Helper()
	return setupTestServiceWithStore(t, store.NewMemory())
}

func setupTestServiceWithStore(t *testing.T, st store.Store) *Service {
	t.Helper()
	log := logger.New("error")
	svc, err := New(st, NewSimulatedProcessor(1, log), log, monitoring.NewMetricsCollector("commerce-test"))
	require.NoError(t, err)
	return svc
}

func TestAddToCartMergesByID(t *testing.T) {
	svc := setupTestService(t)
	paracetamol, _ := MedicineByID(1)

	svc.AddToCart(paracetamol)
	svc.AddToCart(paracetamol)

	cart := svc.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 100.0, svc.Total())
}

func TestDecrementRemovesLineAtZero(t *testing.T) {
	svc := setupTestService(t)
	paracetamol, _ := MedicineByID(1)

	svc.AddToCart(paracetamol)
	svc.Decrement(1)
	assert.Empty(t, svc.Cart())

	// Absent id is a no-op.
	svc.Decrement(42)
	assert.Empty(t, svc.Cart())
}

func TestRemoveDropsWholeLineAndTotalFollows(t *testing.T) {
	svc := setupTestService(t)
	amoxicillin, _ := MedicineByID(2) // 120
	paracetamol, _ := MedicineByID(1) // 50

	svc.AddToCart(amoxicillin)
	svc.AddToCart(paracetamol)
	svc.AddToCart(paracetamol)
	assert.Equal(t, 220.0, svc.Total())

	svc.Remove(2)
	assert.Equal(t, 100.0, svc.Total())
	require.Len(t, svc.Cart(), 1)
}

func TestCheckoutSnapshotsAndClearsCart(t *testing.T) {
	svc := setupTestService(t)
	paracetamol, _ := MedicineByID(1)
	ibuprofen, _ := MedicineByID(3)

	svc.AddToCart(paracetamol)
	svc.AddToCart(paracetamol)
	svc.AddToCart(ibuprofen)
	total := svc.Total()

	order, err := svc.Checkout(context.Background(), testCard)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, total, order.Total)
	assert.Len(t, order.Items, 2)
	assert.Contains(t, order.ID, "ORD-")
	assert.Empty(t, svc.Cart())

	orders, err := svc.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCheckoutEmptyCartIsNoOp(t *testing.T) {
	svc := setupTestService(t)

	order, err := svc.Checkout(context.Background(), testCard)
	require.NoError(t, err)
	assert.Nil(t, order)

	orders, err := svc.Orders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutInvalidCardLeavesCartIntact(t *testing.T) {
	svc := setupTestService(t)
	paracetamol, _ := MedicineByID(1)
	svc.AddToCart(paracetamol)

	_, err := svc.Checkout(context.Background(), &types.CardDetails{Number: "1234", Expiry: "12/26", CVV: "123"})
	require.Error(t, err)

	assert.Len(t, svc.Cart(), 1)
	orders, err := svc.Orders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutCancelledContextLeavesNoSideEffect(t *testing.T) {
	svc := setupTestService(t)
	paracetamol, _ := MedicineByID(1)
	svc.AddToCart(paracetamol)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Checkout(ctx, testCard)
	require.Error(t, err)

	assert.Len(t, svc.Cart(), 1)
	orders, err := svc.Orders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderHistoryPersistsAcrossRestart(t *testing.T) {
	st := store.NewMemory()
	svc := setupTestServiceWithStore(t, st)
	paracetamol, _ := MedicineByID(1)
	svc.AddToCart(paracetamol)

	order, err := svc.Checkout(context.Background(), testCard)
	require.NoError(t, err)

	reloaded := setupTestServiceWithStore(t, st)
	orders, err := reloaded.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestValidateCardStripsSpaces(t *testing.T) {
	require.NoError(t, ValidateCard(testCard))
	require.NoError(t, ValidateCard(&types.CardDetails{Number: "4111111111111111", Expiry: "01/27", CVV: "999"}))

	require.Error(t, ValidateCard(&types.CardDetails{Number: "4111 1111 1111 111", Expiry: "01/27", CVV: "999"}))
	require.Error(t, ValidateCard(&types.CardDetails{Number: "4111 1111 1111 111a", Expiry: "01/27", CVV: "999"}))
	require.Error(t, ValidateCard(&types.CardDetails{Number: "4111111111111111", Expiry: "", CVV: "999"}))
	require.Error(t, ValidateCard(&types.CardDetails{Number: "4111111111111111", Expiry: "01/27", CVV: "12"}))
	require.Error(t, ValidateCard(nil))
}

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111111111111111"))
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111 1111 1111 1111"))
}
