package queue

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamiq/pamiq-io/pkg/device"
)

func TestQueueOrder(t *testing.T) {
	ctx := context.Background()
	q := New(16)

	require.NoError(t, q.Write(ctx, []float32{1, 2, 3}, time.Second))
	require.NoError(t, q.Write(ctx, []float32{4, 5}, time.Second))

	dst := make([]float32, 5)
	n, err := q.Read(ctx, dst)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []float32{1, 2, 3, 4, 5}, dst)
}

func TestQueueWriteOverrun(t *testing.T) {
	ctx := context.Background()
	q := New(4)

	require.NoError(t, q.Write(ctx, []float32{1, 2, 3, 4}, 10*time.Millisecond))
	err := q.Write(ctx, []float32{5}, 10*time.Millisecond)
	require.ErrorIs(t, err, device.ErrBufferOverrun)

	// the queued prefix stays intact
	dst := make([]float32, 4)
	n, err := q.Read(ctx, dst)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []float32{1, 2, 3, 4}, dst)
}

func TestQueueEndWrites(t *testing.T) {
	ctx := context.Background()
	q := New(8)
	q.Push([]float32{1, 2})
	q.EndWrites()

	dst := make([]float32, 8)
	n, err := q.Read(ctx, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = q.Read(ctx, dst)
	require.ErrorIs(t, err, io.EOF)
}

func TestQueueWriteAfterEndWrites(t *testing.T) {
	ctx := context.Background()
	q := New(8)
	q.EndWrites()

	err := q.Write(ctx, []float32{1}, time.Second)
	require.ErrorIs(t, err, device.ErrClosed)
}

func TestReadFullUnblockedByDeviceStop(t *testing.T) {
	ctx := context.Background()
	q := New(8)
	q.Push([]float32{1, 2, 3})

	// a backend's stop handler ends the stream while a read is blocked
	go func() {
		time.Sleep(10 * time.Millisecond)
		q.EndWrites()
	}()

	dst := make([]float32, 8)
	done := make(chan struct{})
	var (
		n   int
		err error
	)
	go func() {
		n, err = q.ReadFull(ctx, dst)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ReadFull did not unblock after EndWrites")
	}
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 3, n)
	assert.Equal(t, []float32{1, 2, 3}, dst[:n])
}

func TestQueueCloseUnblocksReader(t *testing.T) {
	ctx := context.Background()
	q := New(8)

	errCh := make(chan error, 1)
	go func() {
		_, err := q.Read(ctx, make([]float32, 1))
		errCh <- err
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, q.Close())

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, device.ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("reader did not unblock after close")
	}
}

func TestQueuePushDropsOldest(t *testing.T) {
	q := New(4)
	q.Push([]float32{1, 2, 3, 4})
	q.Push([]float32{5, 6})
	assert.EqualValues(t, 2, q.Dropped())

	dst := make([]float32, 4)
	n := q.TryRead(dst)
	assert.Equal(t, 4, n)
	assert.Equal(t, []float32{3, 4, 5, 6}, dst)
}

func TestByteReaderSilenceAndEOF(t *testing.T) {
	q := New(8)
	r := &ByteReader{Queue: q}

	p := make([]byte, 16)
	n, err := r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 16, n, "open but empty queue yields silence")
	assert.Equal(t, make([]byte, 16), p)

	q.Push([]float32{1})
	n, err = r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	q.EndWrites()
	_, err = r.Read(p)
	require.ErrorIs(t, err, io.EOF)
}

func TestPushBytesRoundTrip(t *testing.T) {
	q := New(8)
	r := &ByteReader{Queue: q}

	src := New(8)
	src.Push([]float32{0.5, -0.25})
	srcReader := &ByteReader{Queue: src}
	p := make([]byte, 8)
	n, err := srcReader.Read(p)
	require.NoError(t, err)
	require.Equal(t, 8, n)

	PushBytes(q, p)
	out := make([]byte, 8)
	n, err = r.Read(out)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	require.Equal(t, p, out, spew.Sdump(p))
}
