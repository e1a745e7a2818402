// Package database manages the sqlite database connection, schema migration
// and the seed admin account for notepanel.
package database

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path"

	"notepanel/config"
	"notepanel/database/model"
	"notepanel/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultAdminEmail    = "admin@notepanel.local"
	defaultAdminPassword = "admin"
)

func initModels() error {
	models := []any{
		&model.User{},
		&model.Note{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initUser seeds the admin account when the users table is empty, so the
// admin flows are reachable on a fresh install.
func initUser() error {
	empty, err := isTableEmpty("users")
	if err != nil {
		log.Printf("Error checking if users table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}

	email := os.Getenv("NP_ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}
	password := os.Getenv("NP_ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:    email,
		Password: hash,
		IsAdmin:  true,
	}
	return db.Create(admin).Error
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface
	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	return initUser()
}

func CloseDB() error {
	if db == nil {
		return nil
	}
	if err := Checkpoint(); err != nil {
		log.Printf("error executing checkpoint: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

// IsDuplicated reports whether err is a unique-constraint violation.
func IsDuplicated(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Checkpoint flushes the sqlite WAL into the main database file.
func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
