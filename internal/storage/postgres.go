package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/denyszaritskyi/comand-work/internal/domain"
)

// PostgresStore keeps one row per record with a JSONB payload while exposing
// the same read-all / replace-all contract as JSONStore, so swapping it in
// does not touch the lifecycle engine.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			seq BIGSERIAL,
			id TEXT PRIMARY KEY,
			payload JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			seq BIGSERIAL,
			id BIGINT PRIMARY KEY,
			payload JSONB NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (s *PostgresStore) ReadOrders() ([]domain.Order, error) {
	rows, err := s.DB.Query("SELECT payload FROM orders ORDER BY seq")
	if err != nil {
		return []domain.Order{}, nil
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			continue
		}
		var order domain.Order
		if err := json.Unmarshal(payload, &order); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (s *PostgresStore) WriteOrders(orders []domain.Order) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM orders"); err != nil {
		return err
	}
	for _, order := range orders {
		payload, err := json.Marshal(order)
		if err != nil {
			return err
		}
		if _, err := tx.Exec("INSERT INTO orders (id, payload) VALUES ($1, $2)", order.ID, payload); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *PostgresStore) ReadDishes() ([]domain.Dish, error) {
	rows, err := s.DB.Query("SELECT payload FROM dishes ORDER BY seq")
	if err != nil {
		return []domain.Dish{}, nil
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			continue
		}
		var dish domain.Dish
		if err := json.Unmarshal(payload, &dish); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

func (s *PostgresStore) WriteDishes(dishes []domain.Dish) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM dishes"); err != nil {
		return err
	}
	for _, dish := range dishes {
		payload, err := json.Marshal(dish)
		if err != nil {
			return err
		}
		if _, err := tx.Exec("INSERT INTO dishes (id, payload) VALUES ($1, $2)", dish.ID, payload); err != nil {
			return err
		}
	}
	return tx.Commit()
}
