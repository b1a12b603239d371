package database

import (
	"encoding/json"
	"fmt"
	"log"
)

// Ключи хранилища, совместимые с форматом localStorage исходного приложения
const (
	EmployeesKey = "employees"
	LogsKey      = "employeeLogs"
)

// BlobStore - строковое хранилище ключ-значение
type BlobStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Repository сериализует список сотрудников и журнал в JSON под двумя независимыми ключами.
type Repository struct {
	store BlobStore
}

func NewRepository(store BlobStore) *Repository {
	return &Repository{store: store}
}

func (r *Repository) LoadEmployees() ([]Employee, error) {
	return load[Employee](r.store, EmployeesKey)
}

func (r *Repository) LoadLogs() ([]WorkLog, error) {
	return load[WorkLog](r.store, LogsKey)
}

func (r *Repository) SaveEmployees(employees []Employee) error {
	return r.save(EmployeesKey, employees)
}

func (r *Repository) SaveLogs(logs []WorkLog) error {
	return r.save(LogsKey, logs)
}

func load[T any](store BlobStore, key string) ([]T, error) {
	raw, ok, err := store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok || raw == "" {
		return []T{}, nil
	}

	var items []T
	// Испорченные данные не должны ронять приложение - начинаем с пустой коллекции
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("Stored %s is not valid JSON, starting empty: %v", key, err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *Repository) save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
