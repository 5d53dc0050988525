package employee

type LookupRequest struct {
	EmpID string `json:"emp_id" binding:"required"`
}

type EmployeeResponse struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email"`
}
