package seed

// Outcome 单条语句的执行结果
type Outcome struct {
	Sql Sql   // 提交的语句
	Cnt int64 // 成功时影响的行数
	Err error // 失败原因，nil 即成功
}

func (o *Outcome) Failed() bool {
	return o.Err != nil
}

// Load imports every statement from the given files into dest, one
// commit per statement, and keeps going when a statement fails. A live
// run is followed by the verify queries; without risk the statements
// are printed only, nothing touches the db.
//
// Only a failed connection is returned as error. Statement failures are
// logged and counted, they never abort the run.
func Load(pref *Preference, dest *DataSource, file []FileEntity, qrys map[string]string, risk bool) error {

	var sqls Sqls
	for i := range file {
		sqls = append(sqls, SplitSqls(pref, &file[i])...)
	}

	LogTrace("load statements, sql-count=%d, file-count=%d", len(sqls), len(file))

	if !risk {
		cnt := len(sqls)
		for i, sql := range sqls {
			OutTrace("-- %3d/%d, line=%d, file=%s", i+1, cnt, sql.Head, sql.File)
			OutDebug("%s", sql.Text)
		}
		OutTrace("-- dry run only, NOT executed. use --agree to run")
		return nil
	}

	conn, err := openDbAndLog(pref, dest)
	if err != nil {
		return err
	}
	defer closeDbAndLog(conn)

	outs := runSqls(conn, sqls, pref.StmtPreview)

	done, fail := 0, 0
	for i := range outs {
		if outs[i].Failed() {
			fail++
		} else {
			done++
		}
	}
	OutTrace("-- db=%s, statements=%d, success=%d, failure=%d", conn.DbName(), len(outs), done, fail)

	if len(qrys) > 0 {
		runVerify(conn, qrys)
	}

	return nil
}

// runSqls 顺序执行，失败不中断后续语句
func runSqls(conn Conn, sqls Sqls, preview int) []Outcome {
	cnt := len(sqls)
	outs := make([]Outcome, 0, cnt)
	ddn := conn.DbName()

	for i, sql := range sqls {
		LogTrace("db=%s, %3d/%d, exec line=%d, file=%s, sql=%s", ddn, i+1, cnt, sql.Head, sql.File, previewSql(sql.Text, preview))
		a, err := conn.Exec(sql.Text)
		if err != nil {
			LogError("db=%s, %3d/%d, failed to exec, line=%d, file=%s, err=%v", ddn, i+1, cnt, sql.Head, sql.File, err)
			OutDebug("%s", sql.Text)
		} else {
			LogTrace("db=%s, %3d/%d, %d affects", ddn, i+1, cnt, a)
		}
		outs = append(outs, Outcome{sql, a, err})
	}

	return outs
}
