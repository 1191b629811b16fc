package db

import (
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/TukaHeba/Task-System/internal/config"
)

const defaultParams = "parseTime=true&multiStatements=true"

// DSN builds the driver DSN from config. Times are read and written in UTC.
func DSN(conf *config.Config) (string, error) {
	params := conf.DbParams
	if params == "" {
		params = defaultParams
	}

	parsed, err := mysql.ParseDSN("/?" + params)
	if err != nil {
		return "", err
	}
	parsed.User = conf.DbUser
	parsed.Passwd = conf.DbPassword
	parsed.Net = "tcp"
	parsed.Addr = conf.DbHost + ":" + conf.DbPort
	parsed.DBName = conf.DbName
	parsed.Loc = time.UTC

	return parsed.FormatDSN(), nil
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn, err := DSN(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(conf.DbMaxOpenConns)
	db.SetMaxIdleConns(conf.DbMaxOpenConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}
