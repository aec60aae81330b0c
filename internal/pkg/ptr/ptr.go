package ptr

func Of[T any](v T) *T {
	return &v
}

// Map applies f to the pointed value, keeping nil as nil.
func Map[T, U any](p *T, f func(T) U) *U {
	if p == nil {
		return nil
	}
	u := f(*p)
	return &u
}
