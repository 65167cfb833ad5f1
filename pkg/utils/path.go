// Package utils provides path inspection helpers.
package utils

import "strings"

// HasDriveScheme reports whether path starts with a Windows drive
// designator such as "C:".
func HasDriveScheme(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	drive := path[0]
	return (drive >= 'A' && drive <= 'Z') || (drive >= 'a' && drive <= 'z')
}

// IsUNCPath reports whether path is a UNC path (\\server\share) or an
// extended-length path (\\?\C:\...).
func IsUNCPath(path string) bool {
	return strings.HasPrefix(path, `\\`)
}

// LooksNative reports whether path already looks like a native Windows
// path rather than a POSIX one.
func LooksNative(path string) bool {
	return HasDriveScheme(path) || IsUNCPath(path) || strings.Contains(path, `\`)
}

// HasRootPrefix reports whether path starts at a drive-letter root or a
// UNC root, i.e. is absolute in native Windows terms.
func HasRootPrefix(path string) bool {
	if IsUNCPath(path) {
		return true
	}
	return HasDriveScheme(path) && len(path) > 2 && (path[2] == '\\' || path[2] == '/')
}
