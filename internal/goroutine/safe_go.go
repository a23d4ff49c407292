package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/ignatzorin/trustboard-backend/internal/logger"
)

// SafeGo запускает горутину с обработкой panic: падение фоновой задачи
// не должно ронять процесс целиком.
func SafeGo(fn func()) {
	go func() {
		defer recoverPanic()
		fn()
	}()
}

func recoverPanic() {
	if r := recover(); r != nil {
		if logger.Log != nil {
			logger.Log.Errorf("panic в горутине: %v\n%s", r, debug.Stack())
			return
		}
		fmt.Printf("[ERROR] panic в горутине: %v\n%s\n", r, debug.Stack())
	}
}
