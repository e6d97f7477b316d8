package seed

import "database/sql"

// Conn 数据库链接，导入期间独占
type Conn interface {
	// Open 打开链接
	Open(p *Preference, d *DataSource) (err error)
	// DbConn 获得链接
	DbConn() (db *sql.DB)
	// DbName 数据库名
	DbName() string

	// Exec 单语句单事务，执行并提交
	Exec(qr string, args ...interface{}) (cnt int64, err error)
	// Query 执行查询
	Query(fn func(*sql.Rows) error, qr string, args ...interface{}) (err error)

	// Close 关闭链接
	Close() error
}
