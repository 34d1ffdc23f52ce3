package ports

// Random picks puzzle challenges. IntN returns a value in [0, n) and panics if n <= 0.
type Random interface {
	IntN(n int) int
}
