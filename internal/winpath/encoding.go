package winpath

// The on-disk filename codec is distinct from the wide codec: it is the
// byte form paths take when handed to filesystem syscalls. Go strings
// already carry those raw bytes, so both directions are plain copies,
// kept as named seams so the two codecs stay separate.

func encodeFile(path string) []byte {
	return []byte(path)
}

func decodeFile(b []byte) string {
	return string(b)
}
