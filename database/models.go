package database

import "time"

type Employee struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// WorkLog - одна рабочая сессия. CheckOut == nil означает, что сессия открыта.
type WorkLog struct {
	EmployeeID   int        `json:"employeeId"`
	EmployeeName string     `json:"employeeName"`
	CheckIn      time.Time  `json:"checkIn"`
	CheckOut     *time.Time `json:"checkOut"`
}

// IsOpen сообщает, что выход ещё не зафиксирован
func (l WorkLog) IsOpen() bool {
	return l.CheckOut == nil
}
