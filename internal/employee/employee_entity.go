package employee

import "time"

// Employee is a row in the facility directory. The API only ever reads it;
// writes happen through the seeder.
type Employee struct {
	ID         int    `gorm:"column:id;primaryKey;autoIncrement"`
	EmpID      string `gorm:"column:emp_id;type:varchar(20);not null;uniqueIndex:uq_employees_emp_id"`
	Name       string `gorm:"column:name;type:varchar(255);not null"`
	Department string `gorm:"column:department;type:varchar(100)"`
	Email      string `gorm:"column:email;type:varchar(255)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Employee) TableName() string {
	return "employees"
}
