package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/denyszaritskyi/comand-work/internal/domain"
)

// JSONStore persists the two collections as whole JSON documents with
// read-all / replace-all semantics. A missing or unparseable document reads
// as an empty collection; the mutex only keeps concurrent handler goroutines
// from interleaving a single file write, it does not protect against lost
// updates between read and write-back.
type JSONStore struct {
	mu         sync.Mutex
	ordersPath string
	dishesPath string
}

func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{
		ordersPath: filepath.Join(dir, "orders.json"),
		dishesPath: filepath.Join(dir, "dishes.json"),
	}
}

func (s *JSONStore) ReadOrders() ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []domain.Order
	if err := readDocument(s.ordersPath, &orders); err != nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}

func (s *JSONStore) WriteOrders(orders []domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeDocument(s.ordersPath, orders)
}

func (s *JSONStore) ReadDishes() ([]domain.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var dishes []domain.Dish
	if err := readDocument(s.dishesPath, &dishes); err != nil {
		return []domain.Dish{}, nil
	}
	return dishes, nil
}

func (s *JSONStore) WriteDishes(dishes []domain.Dish) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeDocument(s.dishesPath, dishes)
}

func readDocument(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeDocument(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
