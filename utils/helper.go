package utils

// RemoveString removes the first occurrence of s, preserving order.
func RemoveString(slice []string, s string) []string {
	for i, v := range slice {
		if v == s {
			return append(slice[:i:i], slice[i+1:]...)
		}
	}
	return slice
}
