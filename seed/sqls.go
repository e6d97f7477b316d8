package seed

import (
	"strings"
)

// Sql 一条可执行语句
type Sql struct {
	Head int    // 首行，1-based
	File string // 文件名或名字
	Text string // 正文部分，单行
}

type Sqls []Sql

// SplitSqls cuts a script into statements, line by line.
//
// Each line is trimmed. Blank lines and lines starting with a configured
// comment marker are dropped, even in the middle of a multi-line
// statement. The remaining lines are joined with single spaces, and a
// line ending in `;` closes the statement. A non-empty tail missing its
// closing `;` is still emitted as the last statement.
//
// The splitter knows nothing about string literals, so a line-ending `;`
// or a leading comment marker inside quotes will mis-split or drop
// content. Keep literals on one line and comments on their own lines.
func SplitSqls(pref *Preference, file *FileEntity) Sqls {
	LogTrace("split Sqls, file=%s", file.Path)

	lines := splitLinex(file.Text)
	sqls := make(Sqls, 0, 32)

	acc, head := "", 0
	for i, line := range lines {
		line = strings.TrimSpace(line)

		if len(line) == 0 || isCmntLine(pref, line) {
			continue
		}

		if len(acc) == 0 {
			head = i + 1
			acc = line
		} else {
			acc = acc + Joiner + line
		}

		if strings.HasSuffix(line, ";") {
			sqls = append(sqls, Sql{head, file.Path, acc})
			LogTrace("%3d, parsed statement, line=%d", len(sqls), head)
			acc = ""
		}
	}

	// 结尾缺分号的语句，宽容处理
	if len(acc) > 0 {
		sqls = append(sqls, Sql{head, file.Path, acc})
		LogTrace("%3d, parsed unterminated tail, line=%d", len(sqls), head)
	}

	return sqls
}

func isCmntLine(pref *Preference, str string) bool {
	for _, c := range pref.LineComment {
		if len(c) > 0 && strings.HasPrefix(str, c) {
			return true
		}
	}
	return false
}
