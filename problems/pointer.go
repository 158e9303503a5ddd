package problems

// JSONPointer builds an RFC 6901 JSON Pointer from a document root and a list
// of raw (unescaped) path segments, escaping "~" and "/" in each segment.
func JSONPointer(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}
	var b []byte
	for _, seg := range segments {
		b = append(b, '/')
		for i := 0; i < len(seg); i++ {
			switch seg[i] {
			case '~':
				b = append(b, '~', '0')
			case '/':
				b = append(b, '~', '1')
			default:
				b = append(b, seg[i])
			}
		}
	}
	return string(b)
}
