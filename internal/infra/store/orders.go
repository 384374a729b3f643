// Package store holds the in-process order and feedback stores. Nothing here
// survives a restart; that is an accepted property of this demo system.
package store

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/philmade/gather-shop/internal/domain/order"
	"github.com/philmade/gather-shop/internal/pkg/errs"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrTxUsed        = errs.New("transaction id already used for another order")
)

// OrderStore owns every order record. All reads return clones; all writes
// happen under one mutex so the paid flag and the global tx-id index can
// never disagree.
type OrderStore struct {
	mu      sync.Mutex
	orders  map[string]*order.Order
	txIndex map[string]string // tx id -> order id
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders:  make(map[string]*order.Order),
		txIndex: make(map[string]string),
	}
}

func genID(prefix string) (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to generate id")
	}
	return prefix + "-" + strings.ToUpper(hex.EncodeToString(buf)), nil
}

// Create assigns a fresh id and inserts the order. Ids are collision-checked
// against live records so an identifier is never reused.
func (s *OrderStore) Create(o *order.Order) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id string
	for {
		var err error
		id, err = genID("ORD")
		if err != nil {
			return nil, err
		}
		if _, taken := s.orders[id]; !taken {
			break
		}
	}
	if err := o.AssignID(id); err != nil {
		return nil, err
	}
	s.orders[id] = o
	return o.Clone(), nil
}

// FindByID returns a snapshot of the order, or ErrOrderNotFound.
func (s *OrderStore) FindByID(id string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o.Clone(), nil
}

// IsTxUsed reports whether a transaction id has already paid for any order.
// Callers use it for a fast pre-check; the authoritative check is repeated
// inside MarkPaid.
func (s *OrderStore) IsTxUsed(txID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, used := s.txIndex[txID]
	return used
}

// MarkPaid commits a verified payment. The paid-flag check and the tx-id
// uniqueness check happen atomically with the write, so two concurrent
// submissions racing through verification cannot both be accepted.
func (s *OrderStore) MarkPaid(orderID, txID string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	if _, used := s.txIndex[txID]; used {
		return nil, ErrTxUsed
	}
	if err := o.MarkPaid(txID); err != nil {
		return nil, err
	}
	s.txIndex[txID] = orderID
	return o.Clone(), nil
}

// RecordFulfillment stores the upstream fulfillment reference on a paid
// order.
func (s *OrderStore) RecordFulfillment(orderID, gelatoOrderID string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	if err := o.RecordFulfillment(gelatoOrderID); err != nil {
		return nil, err
	}
	return o.Clone(), nil
}
