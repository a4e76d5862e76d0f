package mysql

import (
	"database/sql"
	"fmt"

	"github.com/relato-cidadao/relato-cidadao-be/config"
	db2 "github.com/relato-cidadao/relato-cidadao-be/db"
	"github.com/upper/db/v4"
	upperMySQL "github.com/upper/db/v4/adapter/mysql"
)

type MySQLDB struct {
	*UserDB
	*PostDB
	*CommentDB
	sess  db.Session
	sqlDB *sql.DB
}

func GetDatabase(cfg *config.Config) (db2.Database, error) {
	sqlDB, err := sql.Open("mysql",
		fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
			cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBName))
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.DBMaxConns)
	sqlDB.SetMaxOpenConns(cfg.DBMaxConns)
	sqlDB.SetConnMaxIdleTime(0)

	sess, err := upperMySQL.New(sqlDB)
	if err != nil {
		return nil, err
	}

	return &MySQLDB{
		UserDB:    getUserDB(sess),
		PostDB:    getPostDB(sess),
		CommentDB: getCommentDB(sess),
		sess:      sess,
		sqlDB:     sqlDB,
	}, nil
}

func (mdb *MySQLDB) GetSQLDB() *sql.DB {
	return mdb.sqlDB
}

func (mdb *MySQLDB) Close() error {
	return mdb.sess.Close()
}
