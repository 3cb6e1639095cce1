package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hazzsaeedharis/postgres-nl-agent/internal/intent"
)

func TestParse(t *testing.T) {

	t.Run("Accepts kebab-case labels", func(t *testing.T) {
		in, ok := intent.Parse("orders-in-date-range")
		assert.True(t, ok)
		assert.Equal(t, intent.OrdersInDateRange, in)
	})

	t.Run("Normalizes snake_case and spaces", func(t *testing.T) {
		for _, label := range []string{"orders_in_date_range", "Orders In Date Range", "  count-orders  "} {
			_, ok := intent.Parse(label)
			assert.True(t, ok, "expected %q to parse", label)
		}
	})

	t.Run("Rejects labels outside the vocabulary", func(t *testing.T) {
		in, ok := intent.Parse("drop-all-tables")
		assert.False(t, ok)
		assert.Equal(t, intent.Unknown, in)
	})

	t.Run("Round-trips every label", func(t *testing.T) {
		all := []intent.Intent{
			intent.ListCustomers, intent.CountCustomers, intent.FindCustomerByEmail,
			intent.ListProducts, intent.LowStockProducts, intent.ListOrders,
			intent.CountOrders, intent.OrdersInDateRange, intent.OrdersByStatus,
			intent.RevenueInPeriod, intent.OrderSummary,
		}
		for _, in := range all {
			parsed, ok := intent.Parse(in.String())
			assert.True(t, ok)
			assert.Equal(t, in, parsed)
		}
	})
}

func TestEntitiesGet(t *testing.T) {
	e := intent.Entities{"email": " a@b.com ", "blank": "   "}

	v, ok := e.Get("email")
	assert.True(t, ok)
	assert.Equal(t, "a@b.com", v)

	_, ok = e.Get("blank")
	assert.False(t, ok)

	_, ok = e.Get("absent")
	assert.False(t, ok)
}
