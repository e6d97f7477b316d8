package seed

import (
	"regexp"
)

var blankRegexp = regexp.MustCompile("[ \t]+")

func squashBlank(str string) string {
	return blankRegexp.ReplaceAllString(str, " ")
}

var crlfReg = regexp.MustCompile("[ \t]*(\r\n|\r|\n)[ \t]*") // 换行分割并去掉左右空白
func splitLinex(str string) []string {
	return crlfReg.Split(str, -1)
}

// previewSql 压缩空白并截断，用于进度日志
func previewSql(str string, max int) string {
	str = squashBlank(str)
	rs := []rune(str)
	if max > 0 && len(rs) > max {
		return string(rs[:max]) + "..."
	}
	return str
}
