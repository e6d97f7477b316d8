package seed

const (
	LvlDebug = 300
	LvlTrace = 200
	LvlError = 100

	//
	EnvPass = "SQLSEED_PASS"

	// Joiner 语句内的行连接符
	Joiner = " "
)

var (
	MsgLevel = LvlDebug
)
