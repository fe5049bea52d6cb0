package abiclient

// cString returns a NUL-terminated copy of s. The slice stays reachable for
// the duration of the call that receives its first element.
func cString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}
