package seed

import (
	"fmt"
	"log"
)

func LogDebug(m string, a ...interface{}) {
	if MsgLevel >= LvlDebug {
		log.Printf("[DEBUG] "+m+"\n", a...)
	}
}

func LogTrace(m string, a ...interface{}) {
	if MsgLevel >= LvlTrace {
		log.Printf("[TRACE] "+m+"\n", a...)
	}
}

func LogError(m string, a ...interface{}) {
	if MsgLevel >= LvlError {
		log.Printf("[ERROR] "+m+"\n", a...)
	}
}

func OutTrace(m string, a ...interface{}) {
	if MsgLevel >= LvlTrace {
		fmt.Printf(m+"\n", a...)
	}
}

func OutDebug(m string, a ...interface{}) {
	if MsgLevel >= LvlDebug {
		fmt.Printf(m+"\n", a...)
	}
}
