package bridge

import "unsafe"

// GoString copies a NUL-terminated native string. A nil pointer yields nil so
// that an unset value stays distinguishable from an empty one.
func GoString(p unsafe.Pointer) *string {
	if p == nil {
		return nil
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	s := string(unsafe.Slice((*byte)(p), n))
	return &s
}

// GoStrings copies n native string pointers starting at arr. Nil entries stay
// nil.
func GoStrings(arr unsafe.Pointer, n int) []*string {
	out := make([]*string, n)
	if arr == nil || n == 0 {
		return out
	}
	for i, p := range unsafe.Slice((*unsafe.Pointer)(arr), n) {
		out[i] = GoString(p)
	}
	return out
}

// Ptr returns a pointer to a copy of s.
func Ptr(s string) *string {
	return &s
}

// Optional maps the empty string to nil and anything else to a pointer.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Value dereferences s, mapping nil to the empty string.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// CutNul returns the bytes of buf up to the first NUL as a string.
func CutNul(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// SplitNulList splits a list of NUL-terminated strings ending with an empty
// string. The result is never nil.
func SplitNulList(buf []byte) []string {
	out := []string{}
	for len(buf) > 0 {
		end := 0
		for end < len(buf) && buf[end] != 0 {
			end++
		}
		if end == 0 {
			break
		}
		out = append(out, string(buf[:end]))
		if end == len(buf) {
			break
		}
		buf = buf[end+1:]
	}
	return out
}
