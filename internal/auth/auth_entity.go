package auth

import "time"

// User is a gate credential row. Passwords may be bcrypt hashes or legacy
// plaintext left over from the pre-hashing deployment; Login accepts both
// and the seeder upgrades plaintext rows in place.
type User struct {
	ID        int    `gorm:"column:id;primaryKey;autoIncrement"`
	Username  string `gorm:"column:username;type:varchar(100);not null;uniqueIndex:uq_users_username"`
	Password  string `gorm:"column:password;type:varchar(255);not null"`
	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
