package bootstrap

import (
	"fmt"
	"log"
	"time"

	"anoa.com/sekolahadmin/internal/model"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed fills the reference data a fresh install needs: the role set, the
// default majors, the current academic year and, outside production, a
// ready-to-use admin account. It is idempotent.
func Seed(db *gorm.DB, appEnv string) error {
	if err := seedRoles(db); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if err := seedMajors(db); err != nil {
		return fmt.Errorf("seed majors: %w", err)
	}
	if err := seedAcademicYear(db); err != nil {
		return fmt.Errorf("seed academic year: %w", err)
	}
	if appEnv != "production" {
		if err := seedDevAdmin(db); err != nil {
			return fmt.Errorf("seed dev admin: %w", err)
		}
	}
	return nil
}

func seedRoles(db *gorm.DB) error {
	roles := []model.Role{
		{Name: "admin", Description: "Administrator sekolah", Permissions: pq.StringArray{"*"}},
		{Name: "teacher", Description: "Guru", Permissions: pq.StringArray{"students:read", "schedules:read", "violations:write"}},
		{Name: "student", Description: "Siswa", Permissions: pq.StringArray{"schedules:read"}},
		{Name: "parent", Description: "Orang tua / wali", Permissions: pq.StringArray{"students:read"}},
	}

	for i := range roles {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&roles[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func seedMajors(db *gorm.DB) error {
	majors := []model.Major{
		{Code: "TKJ", Name: "Teknik Komputer dan Jaringan"},
		{Code: "RPL", Name: "Rekayasa Perangkat Lunak"},
		{Code: "MM", Name: "Multimedia"},
	}

	for i := range majors {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).Create(&majors[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// seedAcademicYear creates and activates the school year the current date
// falls in. Indonesian school years run July to June.
func seedAcademicYear(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.AcademicYear{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	startYear := now.Year()
	if now.Month() < time.July {
		startYear--
	}

	year := model.AcademicYear{
		Year:      fmt.Sprintf("%d/%d", startYear, startYear+1),
		StartDate: time.Date(startYear, time.July, 1, 0, 0, 0, 0, time.Local),
		EndDate:   time.Date(startYear+1, time.June, 30, 0, 0, 0, 0, time.Local),
		IsActive:  true,
	}
	return db.Create(&year).Error
}

func seedDevAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	username := "admin"
	email := "admin@sekolah.local"
	name := "Administrator"
	hashStr := string(hash)
	user := model.User{
		Username:     &username,
		Email:        &email,
		Name:         &name,
		PasswordHash: &hashStr,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	var adminRole model.Role
	if err := db.First(&adminRole, "name = ?", "admin").Error; err != nil {
		return err
	}
	if err := db.Create(&model.UserRole{UserID: user.ID, RoleID: adminRole.ID}).Error; err != nil {
		return err
	}

	log.Println("seeded development admin account admin@sekolah.local")
	return nil
}
