package linear

// MapFindFirst applies fn to the elements of seq in order and returns the
// first defined result. fn is not evaluated past the first success.
// The boolean is false when every mapping is undefined or seq is empty.
//
// Example:
//
//	port, ok := linear.MapFindFirst(addrs, func(a string) (int, bool) {
//	  _, p, err := net.SplitHostPort(a)
//	  if err != nil {
//	    return 0, false
//	  }
//	  n, err := strconv.Atoi(p)
//	  return n, err == nil
//	})
func MapFindFirst[T, R any](seq []T, fn Mapper[T, R]) (R, bool) {
	for _, item := range seq {
		if r, ok := fn(item); ok {
			return r, true
		}
	}

	var zero R
	return zero, false
}

// MapFindLast is the reverse-order counterpart of MapFindFirst.
func MapFindLast[T, R any](seq []T, fn Mapper[T, R]) (R, bool) {
	for i := len(seq) - 1; i >= 0; i-- {
		if r, ok := fn(seq[i]); ok {
			return r, true
		}
	}

	var zero R
	return zero, false
}
