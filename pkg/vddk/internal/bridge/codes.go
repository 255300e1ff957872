package bridge

// Native result codes the bridge itself needs to recognise or produce. Every
// other code is passed through untouched.
const (
	CodeOK             uint64 = 0
	CodeFail           uint64 = 1
	CodeOutOfMemory    uint64 = 2
	CodeInvalidArg     uint64 = 3
	CodeNotSupported   uint64 = 6
	CodeBufferTooSmall uint64 = 24
	CodeAsync          uint64 = 25000
)
