package visitor

import "time"

type RegisterVisitorRequest struct {
	Name               string `json:"name" binding:"required"`
	Company            string `json:"company" binding:"required"`
	Country            string `json:"country"`
	State              string `json:"state"`
	City               string `json:"city"`
	ContactNo          string `json:"contact_no" binding:"required,max=10"`
	EmpID              string `json:"emp_id"`
	ContactPerson      string `json:"contact_person"`
	ContactPersonEmail string `json:"contact_person_email" binding:"omitempty,email"`
	Department         string `json:"department"`
	Purpose            string `json:"purpose" binding:"required"`
	VisitDate          string `json:"visit_date" binding:"omitempty,datetime=2006-01-02"`
}

type EditVisitorRequest struct {
	ID                 int    `json:"id" binding:"required"`
	Name               string `json:"name" binding:"required"`
	Company            string `json:"company" binding:"required"`
	Country            string `json:"country"`
	State              string `json:"state"`
	City               string `json:"city"`
	ContactNo          string `json:"contact_no" binding:"required,max=10"`
	ContactPerson      string `json:"contact_person"`
	ContactPersonEmail string `json:"contact_person_email" binding:"omitempty,email"`
	Department         string `json:"department"`
	Purpose            string `json:"purpose" binding:"required"`
}

type CheckoutRequest struct {
	ID int `json:"id" binding:"required"`
}

type VisitorResponse struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Company            string  `json:"company"`
	Country            string  `json:"country"`
	State              string  `json:"state"`
	City               string  `json:"city"`
	ContactNo          string  `json:"contact_no"`
	ContactPerson      string  `json:"contact_person"`
	ContactPersonEmail string  `json:"contact_person_email"`
	Department         string  `json:"department"`
	Purpose            string  `json:"purpose"`
	VisitDate          string  `json:"visit_date"`
	CreatedAt          string  `json:"created_at"`
	OutTime            *string `json:"out_time,omitempty"`
}

// ListQuery carries the dashboard filters as they arrive on the wire.
// All supplied predicates are combined with AND.
type ListQuery struct {
	TodayOnly     bool
	Name          string
	ContactNo     string
	ContactPerson string
	FromDate      string // 2006-01-02, inclusive from start of day
	ToDate        string // 2006-01-02, inclusive through 23:59:59
}

// ListFilter is the parsed form handed to the repository.
type ListFilter struct {
	TodayOnly     bool
	Name          string
	ContactNo     string
	ContactPerson string
	From          *time.Time
	To            *time.Time
}
