package blockrt

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	objcabi "github.com/wippyai/objc-abi"
)

var (
	mu     sync.RWMutex
	active objcabi.BlockRuntime
)

// Install makes rt the process-wide block runtime. Blocks built before
// Install carry a nil isa; the runtime surface is consulted again at heap
// promotion, so installing before the first Copy is sufficient. Installing
// nil removes the runtime.
func Install(rt objcabi.BlockRuntime) {
	mu.Lock()
	active = rt
	mu.Unlock()

	Logger().Info("block runtime installed",
		zap.String("runtime", fmt.Sprintf("%T", rt)))
}

// Active returns the installed runtime, or nil when none is installed.
func Active() objcabi.BlockRuntime {
	mu.RLock()
	defer mu.RUnlock()
	return active
}
