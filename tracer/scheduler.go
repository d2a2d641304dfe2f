package tracer

import "sync"

// PixelCursor hands out the pixels of a frame in row-major order to any
// number of concurrent workers. Every pixel is handed out exactly once.
type PixelCursor struct {
	mutex sync.Mutex

	width  int
	height int

	// Index of the next pixel to hand out.
	next int
}

// Create a cursor for a width x height frame.
func NewPixelCursor(width, height int) *PixelCursor {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelCursor{
		width:  width,
		height: height,
	}
}

// Next claims the next pixel. The last return value is false once all pixels
// have been claimed.
func (c *PixelCursor) Next() (col, row int, ok bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.next >= c.width*c.height {
		return 0, 0, false
	}
	col, row = c.next%c.width, c.next/c.width
	c.next++
	return col, row, true
}

// Get the total number of pixels in the frame.
func (c *PixelCursor) Total() int {
	return c.width * c.height
}
