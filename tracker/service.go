package tracker

import (
	"fmt"
	"log"
	"slices"
	"time"

	"hourlogger/database"
	"hourlogger/utils"
)

// Store - долговременное хранилище списка сотрудников и журнала
type Store interface {
	LoadEmployees() ([]database.Employee, error)
	LoadLogs() ([]database.WorkLog, error)
	SaveEmployees([]database.Employee) error
	SaveLogs([]database.WorkLog) error
}

// State - всё состояние приложения в памяти
type State struct {
	Employees []database.Employee
	Logs      []database.WorkLog
}

// Service применяет чистые операции к State и сохраняет результат
// до того, как он станет видимым (write-through). Рассчитан на одного писателя.
type Service struct {
	store Store
	state State
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		state: State{Employees: []database.Employee{}, Logs: []database.WorkLog{}},
		now:   time.Now,
	}
}

// SetClock подменяет источник времени (используется в тестах)
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Load читает обе коллекции один раз при старте
func (s *Service) Load() error {
	employees, err := s.store.LoadEmployees()
	if err != nil {
		return err
	}

	logs, err := s.store.LoadLogs()
	if err != nil {
		return err
	}

	s.state = State{Employees: employees, Logs: logs}
	log.Printf("Loaded %d employees and %d log entries", len(employees), len(logs))
	return nil
}

func (s *Service) AddEmployee(name string) (database.Employee, error) {
	employees, employee, err := AddEmployee(name, s.state.Employees)
	if err != nil {
		return database.Employee{}, err
	}

	if err := s.store.SaveEmployees(employees); err != nil {
		return database.Employee{}, fmt.Errorf("failed to save employees: %w", err)
	}

	s.state.Employees = employees
	log.Printf("Added employee %d (%s)", employee.ID, employee.Name)
	return employee, nil
}

func (s *Service) CheckIn(employeeID int) (database.WorkLog, error) {
	logs, err := CheckIn(employeeID, s.state.Employees, s.state.Logs, s.now())
	if err != nil {
		return database.WorkLog{}, err
	}

	if err := s.commitLogs(logs); err != nil {
		return database.WorkLog{}, err
	}

	entry := logs[len(logs)-1]
	log.Printf("Employee %d checked in at %s", employeeID, entry.CheckIn.Format(time.RFC3339))
	return entry, nil
}

func (s *Service) CheckOut(employeeID int) (database.WorkLog, error) {
	idx := openIndex(employeeID, s.state.Logs)

	logs, err := CheckOut(employeeID, s.state.Logs, s.now())
	if err != nil {
		return database.WorkLog{}, err
	}

	if err := s.commitLogs(logs); err != nil {
		return database.WorkLog{}, err
	}

	entry := logs[idx]
	log.Printf("Employee %d checked out at %s", employeeID, entry.CheckOut.Format(time.RFC3339))
	return entry, nil
}

// ClearToday удаляет сегодняшние записи и возвращает их количество
func (s *Service) ClearToday(phrase string) (int, error) {
	logs, err := ClearToday(s.state.Logs, phrase, ClearancePhrase, s.Today())
	if err != nil {
		log.Printf("Clearance rejected: incorrect phrase")
		return 0, err
	}

	removed := len(s.state.Logs) - len(logs)
	if err := s.commitLogs(logs); err != nil {
		return 0, err
	}

	log.Printf("Cleared %d log entries for %s", removed, s.Today())
	return removed, nil
}

func (s *Service) Status(employeeID int) Status {
	return DeriveStatus(employeeID, s.state.Logs)
}

func (s *Service) Employee(id int) (database.Employee, bool) {
	return FindEmployee(id, s.state.Employees)
}

// Employees возвращает копию списка, чтобы вызывающий не мог изменить состояние
func (s *Service) Employees() []database.Employee {
	return slices.Clone(s.state.Employees)
}

func (s *Service) Logs() []database.WorkLog {
	return slices.Clone(s.state.Logs)
}

// Today - текущая дата в формате YYYY-MM-DD (UTC)
func (s *Service) Today() string {
	return utils.DateKey(s.now())
}

func (s *Service) commitLogs(logs []database.WorkLog) error {
	if err := s.store.SaveLogs(logs); err != nil {
		return fmt.Errorf("failed to save logs: %w", err)
	}
	s.state.Logs = logs
	return nil
}
