package visitor

import (
	"time"
)

// Visitor is one visit record, from check-in to optional check-out.
// A record is open while OutTime is null. OutTime is written exactly once;
// edits never touch ID, CreatedAt or OutTime.
type Visitor struct {
	ID                 int        `gorm:"column:id;primaryKey;autoIncrement"`
	Name               string     `gorm:"column:name;type:varchar(255);not null"`
	Company            string     `gorm:"column:company;type:varchar(255);not null"`
	Country            string     `gorm:"column:country;type:varchar(100)"`
	State              string     `gorm:"column:state;type:varchar(100)"`
	City               string     `gorm:"column:city;type:varchar(100)"`
	ContactNo          string     `gorm:"column:contact_no;type:varchar(10);not null;index"`
	ContactPerson      string     `gorm:"column:contact_person;type:varchar(255)"`
	ContactPersonEmail string     `gorm:"column:contact_person_email;type:varchar(255)"`
	Department         string     `gorm:"column:department;type:varchar(100)"`
	Purpose            string     `gorm:"column:purpose;type:varchar(255);not null"`
	VisitDate          time.Time  `gorm:"column:visit_date;type:date;not null"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime"`
	OutTime            *time.Time `gorm:"column:out_time"`
}

func (Visitor) TableName() string {
	return "visitors"
}
