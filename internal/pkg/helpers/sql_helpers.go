package helpers

// StringValue returns the pointed-to string, or "" for a NULL column.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Int32Ptr copies a nullable integer column into an *int, keeping NULL as nil.
func Int32Ptr(i *int32) *int {
	if i == nil {
		return nil
	}
	v := int(*i)
	return &v
}
