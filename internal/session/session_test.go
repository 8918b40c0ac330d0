package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func TestCartEmptyOnFirstTouch(t *testing.T) {
	s := New(time.Hour)
	assert.Empty(t, s.Cart("visitor"))
}

func TestAddItemMergesByProduct(t *testing.T) {
	s := New(time.Hour)

	s.AddItem("v", "x", 2)
	cart := s.AddItem("v", "x", 3)

	require.Len(t, cart, 1)
	assert.Equal(t, models.CartItem{ProductID: "x", Quantity: 5}, cart[0])
}

func TestAddItemKeepsOrder(t *testing.T) {
	s := New(time.Hour)

	s.AddItem("v", "a", 1)
	s.AddItem("v", "b", 1)
	cart := s.AddItem("v", "a", 1)

	require.Len(t, cart, 2)
	assert.Equal(t, "a", cart[0].ProductID)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, "b", cart[1].ProductID)
}

func TestUpdateItemSetsQuantity(t *testing.T) {
	s := New(time.Hour)

	s.AddItem("v", "x", 2)
	cart := s.UpdateItem("v", "x", 7)

	require.Len(t, cart, 1)
	assert.Equal(t, 7, cart[0].Quantity)
}

func TestUpdateItemZeroRemoves(t *testing.T) {
	s := New(time.Hour)

	s.AddItem("v", "x", 2)
	assert.Empty(t, s.UpdateItem("v", "x", 0))
}

func TestUpdateItemNegativeRemoves(t *testing.T) {
	s := New(time.Hour)

	s.AddItem("v", "x", 2)
	assert.Empty(t, s.UpdateItem("v", "x", -3))
}

func TestUpdateItemAbsentIsNoop(t *testing.T) {
	s := New(time.Hour)

	s.AddItem("v", "x", 2)
	cart := s.UpdateItem("v", "y", 9)

	require.Len(t, cart, 1)
	assert.Equal(t, models.CartItem{ProductID: "x", Quantity: 2}, cart[0])
}

func TestRemoveItemIdempotent(t *testing.T) {
	s := New(time.Hour)

	s.AddItem("v", "x", 2)
	assert.Empty(t, s.RemoveItem("v", "x"))
	assert.Empty(t, s.RemoveItem("v", "x"))
}

func TestClearCart(t *testing.T) {
	s := New(time.Hour)

	s.AddItem("v", "x", 2)
	s.AddItem("v", "y", 1)
	s.ClearCart("v")

	assert.Empty(t, s.Cart("v"))
}

func TestSessionsAreIsolated(t *testing.T) {
	s := New(time.Hour)

	s.AddItem("alice", "x", 2)
	s.SetAdmin("alice", true)

	assert.Empty(t, s.Cart("bob"))
	assert.False(t, s.IsAdmin("bob"))
	assert.True(t, s.IsAdmin("alice"))
	assert.Equal(t, 2, s.Size())
}

func TestAdminFlagLifecycle(t *testing.T) {
	s := New(time.Hour)

	assert.False(t, s.IsAdmin("v"))
	s.SetAdmin("v", true)
	assert.True(t, s.IsAdmin("v"))
	s.SetAdmin("v", false)
	assert.False(t, s.IsAdmin("v"))
}

func TestExpiredSessionStartsFresh(t *testing.T) {
	s := New(20 * time.Millisecond)

	s.AddItem("v", "x", 2)
	s.SetAdmin("v", true)
	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, s.Cart("v"))
	assert.False(t, s.IsAdmin("v"))
}

func TestCartSnapshotIsDetached(t *testing.T) {
	s := New(time.Hour)

	s.AddItem("v", "x", 2)
	cart := s.Cart("v")
	cart[0].Quantity = 99

	assert.Equal(t, 2, s.Cart("v")[0].Quantity)
}
