package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_PullOrder(t *testing.T) {
	pd1, pd2, pd3 := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name        string
		orders      []uuid.UUID
		pull        uuid.UUID
		wantOrders  []uuid.UUID
		wantRemoved int
	}{
		{name: "removes the last reference", orders: []uuid.UUID{pd1, pd2}, pull: pd2, wantOrders: []uuid.UUID{pd1}, wantRemoved: 1},
		{name: "keeps the order of the others", orders: []uuid.UUID{pd1, pd2, pd3}, pull: pd2, wantOrders: []uuid.UUID{pd1, pd3}, wantRemoved: 1},
		{name: "removes duplicates", orders: []uuid.UUID{pd2, pd1, pd2}, pull: pd2, wantOrders: []uuid.UUID{pd1}, wantRemoved: 2},
		{name: "absent reference is a no-op", orders: []uuid.UUID{pd1}, pull: pd3, wantOrders: []uuid.UUID{pd1}, wantRemoved: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{NationalID: "71534484E", Orders: tt.orders}

			removed := u.PullOrder(tt.pull)

			assert.Equal(t, tt.wantRemoved, removed)
			assert.Equal(t, tt.wantOrders, u.Orders)
			assert.False(t, u.HasOrder(tt.pull))
		})
	}
}

func TestProduct_CategoryHeadMatches(t *testing.T) {
	assert.True(t, (&Product{Category: 18}).CategoryHeadMatches())
	assert.True(t, (&Product{Category: 1, Categories: []int{1, 3, 5}}).CategoryHeadMatches())
	assert.False(t, (&Product{Category: 59, Categories: []int{13, 21, 59}}).CategoryHeadMatches())
}
