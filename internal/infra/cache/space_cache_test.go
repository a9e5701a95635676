package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartpark/SP-BookingService/internal/domain"
	"github.com/smartpark/SP-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func TestKey_StableAndDistinct(t *testing.T) {
	a := domain.SpacesFilter{City: ptr.Ptr("Москва")}
	b := domain.SpacesFilter{City: ptr.Ptr("Москва")}
	c := domain.SpacesFilter{City: ptr.Ptr("Казань")}

	assert.Equal(t, Key(a), Key(b))
	assert.NotEqual(t, Key(a), Key(c))

	// Фильтры с разными полями, но одинаковыми значениями не совпадают
	d := domain.SpacesFilter{Area: ptr.Ptr("Москва")}
	assert.NotEqual(t, Key(a), Key(d))

	e := domain.SpacesFilter{City: ptr.Ptr("Москва"), IncludeInactive: true}
	assert.NotEqual(t, Key(a), Key(e))
}

func TestDisabledCacheIsNoop(t *testing.T) {
	c := New(nil, 0, nopLogger{})
	ctx := context.Background()

	spaces, ok := c.Get(ctx, "spaces:any")
	assert.False(t, ok)
	assert.Nil(t, spaces)

	// Set и Invalidate без клиента не паникуют
	c.Set(ctx, "spaces:any", []*domain.ParkingSpace{{ID: 1}})
	c.Invalidate(ctx)
}
