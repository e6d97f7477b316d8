package seed

import (
	"errors"
	"github.com/pelletier/go-toml"
	"strings"
)

type Config struct {
	Preference Preference
	DataSource map[string]DataSource
	VerifyQury map[string]string
}

type Preference struct {
	DatabaseType string
	LineComment  []string
	FmtDateTime  string
	StmtPreview  int
	ConnMaxOpen  int
	ConnMaxIdel  int
}

type FileEntity struct {
	Path string
	Text string
}

type DataSource struct {
	Code    string
	Host    string
	Port    int
	User    string
	Pass    string
	Charset string
	Schema  string
}

//

func ParseToml(text string) (config *Config, err error) {

	conf, err := toml.Load(text)
	if err != nil {
		return
	}

	preference, err := parsePreference(conf)
	if err != nil {
		return
	}
	datasource, err := parseDataSource(conf)
	if err != nil {
		return
	}
	verifyqury, err := parseVerifyQury(conf)
	if err != nil {
		return
	}

	config = &Config{
		preference,
		datasource,
		verifyqury,
	}

	return
}

// verify 段可以没有，没有则跳过校验
func parseVerifyQury(conf *toml.Tree) (rst map[string]string, err error) {
	rst = make(map[string]string)
	tree, ok := conf.Get("verify").(*toml.Tree)
	if !ok {
		return
	}

	for k, v := range tree.ToMap() {
		switch v.(type) {
		case string:
			rst[k] = v.(string)
		default:
			err = errors.New("unsupported value, verify." + k)
			return
		}
	}
	return
}

func parseDataSource(conf *toml.Tree) (rst map[string]DataSource, err error) {
	tree, ok := conf.Get("datasource").(*toml.Tree)
	if !ok {
		err = errorAndLog("failed to parse datasource")
		return
	}

	rst = make(map[string]DataSource)
	for _, k := range tree.Keys() {
		sub, ok := tree.Get(k).(*toml.Tree)
		if !ok {
			err = errors.New("unsupported value, datasource." + k)
			return
		}
		rst[k] = DataSource{
			k,
			toString(sub, "host"),
			toInt(sub, "port"),
			toString(sub, "user"),
			toString(sub, "pass"),
			toString(sub, "charset"),
			toString(sub, "schema"),
		}
	}
	return
}

func parsePreference(conf *toml.Tree) (rst Preference, err error) {
	if tree, ok := conf.Get("preference").(*toml.Tree); ok {
		rst = Preference{
			toString(tree, "databasetype"),
			toArrString(tree, "linecomment"),
			toString(tree, "fmtdatetime"),
			toInt(tree, "stmtpreview"),
			toInt(tree, "connmaxopen"),
			toInt(tree, "connmaxidel"),
		}
	} else {
		err = errorAndLog("failed to parse preference")
	}
	return
}

func toInt(tree *toml.Tree, key string) (rst int) {
	if num, ok := tree.Get(key).(int64); ok {
		rst = int(num)
	} else {
		LogError("failed to get int, key=%s", key)
	}
	return
}

func toString(tree *toml.Tree, key string) (rst string) {
	if str, ok := tree.Get(key).(string); ok {
		rst = str
	} else {
		LogError("failed to get string, key=%s", key)
	}
	return
}

func toArrString(tree *toml.Tree, key string) (rst []string) {
	if arr, ok := tree.Get(key).([]interface{}); ok {
		rst = make([]string, 0, len(arr))
		for i := 0; i < len(arr); i++ {
			switch arr[i].(type) {
			case string:
				s := strings.TrimSpace(arr[i].(string))
				if len(s) > 0 {
					rst = append(rst, s)
				}
			default:
				LogError("get unsupported type while parsing key=%s", key)
			}
		}
	} else {
		LogError("failed to get array, key=%s", key)
	}
	return
}
