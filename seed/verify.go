package seed

import (
	"database/sql"
	"sort"
	"strings"
)

// Verify runs only the read-only check queries against dest.
func Verify(pref *Preference, dest *DataSource, qrys map[string]string) error {
	if len(qrys) == 0 {
		return errorAndLog("no verify queries in config")
	}

	conn, err := openDbAndLog(pref, dest)
	if err != nil {
		return err
	}
	defer closeDbAndLog(conn)

	runVerify(conn, qrys)
	return nil
}

// runVerify 按 key 排序依次查询，失败只记日志，不影响导入结果
func runVerify(conn Conn, qrys map[string]string) (done, fail int) {
	keys := make([]string, 0, len(qrys))
	for k := range qrys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		qr := qrys[k]
		OutTrace("-- verify %s: %s", k, qr)
		err := conn.Query(printRows, qr)
		if err != nil {
			LogError("failed to verify, name=%s, err=%v", k, err)
			fail++
		} else {
			done++
		}
	}

	return
}

func printRows(rs *sql.Rows) error {
	cols, err := rs.Columns()
	if err != nil {
		return err
	}

	OutTrace("%s", strings.Join(cols, ", "))

	vals := make([]sql.RawBytes, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	for rs.Next() {
		if err := rs.Scan(ptrs...); err != nil {
			return err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			if v == nil {
				row[i] = "NULL"
			} else {
				row[i] = string(v)
			}
		}
		OutTrace("%s", strings.Join(row, ", "))
	}
	return rs.Err()
}
