package pool

import "testing"

func TestSmallBufferPool(t *testing.T) {
	buf := GetSmallBuffer()
	if len(buf) != SmallBufferSize {
		t.Errorf("buffer size = %d, want %d", len(buf), SmallBufferSize)
	}
	copy(buf, []byte("test data"))
	PutSmallBuffer(buf)

	buf2 := GetSmallBuffer()
	if len(buf2) != SmallBufferSize {
		t.Errorf("buffer size = %d, want %d", len(buf2), SmallBufferSize)
	}
}

func TestMediumBufferPool(t *testing.T) {
	buf := GetMediumBuffer()
	if len(buf) != MediumBufferSize {
		t.Errorf("buffer size = %d, want %d", len(buf), MediumBufferSize)
	}
	PutMediumBuffer(buf)

	buf2 := GetMediumBuffer()
	if len(buf2) != MediumBufferSize {
		t.Errorf("buffer size = %d, want %d", len(buf2), MediumBufferSize)
	}
}

func TestLargeBufferPool(t *testing.T) {
	buf := GetLargeBuffer()
	if len(buf) != LargeBufferSize {
		t.Errorf("buffer size = %d, want %d", len(buf), LargeBufferSize)
	}
	PutLargeBuffer(buf)

	buf2 := GetLargeBuffer()
	if len(buf2) != LargeBufferSize {
		t.Errorf("buffer size = %d, want %d", len(buf2), LargeBufferSize)
	}
}

func TestGetBuffer(t *testing.T) {
	tests := []struct {
		size        int
		expectedCap int
	}{
		{100, SmallBufferSize},
		{512, SmallBufferSize},
		{1024, MediumBufferSize},
		{4096, MediumBufferSize},
		{8192, LargeBufferSize},
		{65535, LargeBufferSize},
	}

	for _, tt := range tests {
		buf := GetBuffer(tt.size)
		if cap(buf) != tt.expectedCap {
			t.Errorf("GetBuffer(%d) cap = %d, want %d", tt.size, cap(buf), tt.expectedCap)
		}
		PutBuffer(buf)
	}
}

func TestPutBuffer(t *testing.T) {
	small := GetSmallBuffer()
	PutBuffer(small)

	medium := GetMediumBuffer()
	PutBuffer(medium)

	large := GetLargeBuffer()
	PutBuffer(large)

	// Weird size - should be ignored, not panic.
	weird := make([]byte, 1234)
	PutBuffer(weird)
}

func TestPutSmallBufferUndersized(t *testing.T) {
	small := make([]byte, 100)
	PutSmallBuffer(small)
}

func BenchmarkSmallBufferPool(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := GetSmallBuffer()
		PutSmallBuffer(buf)
	}
}

func BenchmarkMediumBufferPool(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := GetMediumBuffer()
		PutMediumBuffer(buf)
	}
}

func BenchmarkLargeBufferPool(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := GetLargeBuffer()
		PutLargeBuffer(buf)
	}
}
