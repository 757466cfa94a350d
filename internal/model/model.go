package model

import "gorm.io/gorm"

// AutoMigrate creates or updates all tables. Order matters for foreign keys.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Role{},
		&User{},
		&UserRole{},
		&Major{},
		&AcademicYear{},
		&Class{},
		&Subject{},
		&Student{},
		&Teacher{},
		&Parent{},
		&Schedule{},
		&ViolationType{},
		&Violation{},
	)
}
