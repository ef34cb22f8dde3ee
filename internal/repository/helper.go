package repository

// PageVerify clamps a page size into [1, maxSize], using def for
// non-positive values.
func PageVerify(num *int64, def, maxSize int64) {
	if *num <= 0 {
		*num = def
	}
	if *num > maxSize {
		*num = maxSize
	}
}

// PageToSkip converts a 1-based page number into an offset.
func PageToSkip(page, size int64) int64 {
	if page < 1 {
		page = 1
	}
	return (page - 1) * size
}
