package location

// The entry UI works with ISO-style codes; visit records store the display
// names resolved from these tables at submission time.

type Country struct {
	Code string `gorm:"column:code;type:varchar(2);primaryKey"`
	Name string `gorm:"column:name;type:varchar(100);not null"`
}

func (Country) TableName() string {
	return "countries"
}

type State struct {
	CountryCode string `gorm:"column:country_code;type:varchar(2);primaryKey"`
	Code        string `gorm:"column:code;type:varchar(10);primaryKey"`
	Name        string `gorm:"column:name;type:varchar(100);not null"`
}

func (State) TableName() string {
	return "states"
}

type City struct {
	CountryCode string `gorm:"column:country_code;type:varchar(2);primaryKey"`
	StateCode   string `gorm:"column:state_code;type:varchar(10);primaryKey"`
	Name        string `gorm:"column:name;type:varchar(100);primaryKey"`
}

func (City) TableName() string {
	return "cities"
}
