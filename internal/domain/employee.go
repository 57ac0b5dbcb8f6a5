package domain

import "fmt"

// Employee represents a person who can reserve a workplace
type Employee struct {
	ID        string // institution-assigned identifier
	FirstName string
	LastName  string
	IsStudent bool
	IsActive  bool // inactive employees keep their history but cannot reserve
}

// FullName returns "Last, First"
func (e *Employee) FullName() string {
	return fmt.Sprintf("%s, %s", e.LastName, e.FirstName)
}

// EmployeeRef is a lightweight reference to an employee used in reports
type EmployeeRef struct {
	ID        string
	FirstName string
	LastName  string
	IsStudent bool
}

// FullName returns "Last, First"
func (r EmployeeRef) FullName() string {
	return fmt.Sprintf("%s, %s", r.LastName, r.FirstName)
}
