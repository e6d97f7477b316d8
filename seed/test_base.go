package seed

var (
	pref = &Preference{"mysql", []string{"#", "--"}, "2006-01-02 15:04:05.000", 80, 10, 2}
)

func makeFileEntity(text string) *FileEntity {
	return &FileEntity{"test.sql", text}
}

func sqlTexts(sqls Sqls) []string {
	rst := make([]string, 0, len(sqls))
	for _, s := range sqls {
		rst = append(rst, s.Text)
	}
	return rst
}
