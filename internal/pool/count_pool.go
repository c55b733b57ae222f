package pool

import "sync"

var countSlicePool = sync.Pool{
	New: func() any { return &[]uint64{} },
}

// GetCountSlice retrieves a zeroed uint64 slice of length size from the pool.
//
// The caller must call the returned cleanup function to return the slice to
// the pool once it no longer references it.
//
// Example:
//
//	bins, cleanup := pool.GetCountSlice(columns)
//	defer cleanup()
func GetCountSlice(size int) ([]uint64, func()) {
	ptr, _ := countSlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { countSlicePool.Put(ptr) }
}
