package queue

// Comparator reports the relative order of a and b: negative when a sorts
// first, zero when both share a rank, positive when a sorts after b.
type Comparator[T any] func(a, b T) int

// Number is the set of types the default comparator accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Compare is the default comparator for numeric types. It never subtracts,
// so unsigned values order correctly. NaN sorts before every other value and
// ranks equal to another NaN.
func Compare[T Number](a, b T) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func isNaN[T Number](x T) bool {
	return x != x
}

// Reverse inverts c, turning a min-first queue into a max-first one.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}
