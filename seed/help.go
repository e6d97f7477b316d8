package seed

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
)

func errorAndLog(m string, a ...interface{}) error {
	s := fmt.Sprintf(m, a...)
	LogError("%s", s)
	return errors.New(s)
}

func openDbAndLog(pref *Preference, db *DataSource) (conn *MyConn, err error) {
	LogTrace("try to open db=%s", db.Code)
	conn = &MyConn{}
	err = conn.Open(pref, db)

	if err == nil {
		LogTrace("successfully opened db=%s", db.Code)
	} else {
		LogError("failed to open db=%s, err=%v", db.Code, err)
	}

	return
}

func closeDbAndLog(conn Conn) {
	if err := conn.Close(); err != nil {
		LogError("failed to close db=%s, err=%v", conn.DbName(), err)
	} else {
		LogTrace("closed db=%s", conn.DbName())
	}
}

// public
func ExitIfError(err error, code int, format string, args ...interface{}) {
	if err != nil {
		args = append(args, err)
		log.Printf("[ERROR] "+format+", err=%v\n", args...)
		os.Exit(code)
	}
}

func ExitIfTrue(tru bool, code int, format string, args ...interface{}) {
	if tru {
		log.Printf("[ERROR] "+format+"\n", args...)
		os.Exit(code)
	}
}

func FileWalker(path []string, flag []string) ([]FileEntity, error) {

	sufx := make([]string, 0, len(flag))
	for _, v := range flag {
		if len(v) > 0 {
			sufx = append(sufx, strings.ToLower(v))
		}
	}

	var files []FileEntity
	var ff = func(p string, f os.FileInfo, e error) error {

		if e != nil {
			LogError("error=%v at a path=%q", e, p)
			return e
		}

		if f.IsDir() {
			return nil
		}

		h := false
		if len(sufx) > 0 {
			l := strings.ToLower(p)
			for _, v := range sufx {
				if strings.HasSuffix(l, v) {
					h = true
					break
				}
			}
		} else {
			h = true
		}

		if h {
			data, err := ioutil.ReadFile(p)
			if err != nil {
				LogError("can not read file=%s", p)
				return err
			}
			LogTrace("got file=%s", p)
			files = append(files, FileEntity{p, string(data)})
		}

		return nil
	}

	for _, p := range path {
		err := filepath.Walk(p, ff)
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
