package bridge

const maxFetchAttempts = 4

// FetchFunc performs one native call against buf. A nil buf means zero
// capacity. It returns the required size reported by the native library and
// the native result code.
type FetchFunc func(buf []byte) (required int, code uint64)

// Fetch runs the size-discovery protocol: a zero-capacity call that reports
// CodeBufferTooSmall and the required size, then a call with a buffer of that
// size. If the value grows between the two calls the fill is retried. A value
// that is empty yields an empty, non-nil slice.
func Fetch(call FetchFunc) ([]byte, uint64) {
	required, code := call(nil)
	switch {
	case code == CodeOK:
		return []byte{}, CodeOK
	case code != CodeBufferTooSmall:
		return nil, code
	case required <= 0:
		return []byte{}, CodeOK
	}

	for attempt := 0; attempt < maxFetchAttempts; attempt++ {
		buf := make([]byte, required)
		next, code := call(buf)
		if code == CodeOK {
			return buf, CodeOK
		}
		if code != CodeBufferTooSmall || next <= len(buf) {
			return nil, code
		}
		required = next
	}
	return nil, CodeBufferTooSmall
}
