package seed

import (
	"database/sql"
	"errors"
	"fmt"
	"github.com/go-sql-driver/mysql"
)

type MyConn struct {
	Pref *Preference
	Conn *sql.DB
	Name string
}

func (m *MyConn) Open(p *Preference, d *DataSource) (err error) {
	if p.DatabaseType != "mysql" {
		return errors.New("unsupported DatabaseType, need mysql, but " + p.DatabaseType)
	}

	db, err := sql.Open("mysql", makeDsn(d))
	if err != nil {
		return
	}

	db.SetMaxOpenConns(p.ConnMaxOpen)
	db.SetMaxIdleConns(p.ConnMaxIdel)

	rs, err := db.Query(`SELECT DATABASE()`)
	if err != nil {
		return
	}
	defer rs.Close()

	// DATABASE() 无库时为 NULL
	var n sql.NullString
	if rs.Next() {
		err = rs.Scan(&n)
	}

	m.Pref = p
	m.Conn = db
	m.Name = n.String

	return
}

func makeDsn(d *DataSource) string {
	cnf := mysql.NewConfig()
	cnf.Net = "tcp"
	cnf.Addr = fmt.Sprintf("%s:%d", d.Host, d.Port)
	cnf.User = d.User
	cnf.Passwd = d.Pass
	cnf.DBName = d.Schema
	if len(d.Charset) > 0 {
		cnf.Params = map[string]string{"charset": d.Charset}
	}
	return cnf.FormatDSN()
}

func (m *MyConn) DbConn() (db *sql.DB) {
	return m.Conn
}
func (m *MyConn) DbName() string {
	return m.Name
}

// Exec 每条语句独立事务，成功即提交，互不影响
func (m *MyConn) Exec(qr string, args ...interface{}) (int64, error) {
	tx, err := m.Conn.Begin()
	if err != nil {
		return 0, err
	}

	rs, err := tx.Exec(qr, args...)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return rs.RowsAffected()
}

func (m *MyConn) Query(fn func(*sql.Rows) error, qr string, args ...interface{}) error {
	if rs, er := m.Conn.Query(qr, args...); er != nil {
		return er
	} else {
		defer rs.Close()
		return fn(rs)
	}
}

func (m *MyConn) Close() error {
	if m.Conn == nil {
		return nil
	}
	return m.Conn.Close()
}
