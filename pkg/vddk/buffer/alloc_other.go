//go:build !unix && !windows

package buffer

func osAlloc(int) ([]byte, error) {
	return nil, ErrUnsupported
}

func osFree([]byte) error {
	return ErrUnsupported
}
