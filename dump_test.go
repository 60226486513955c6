package vramdump

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDump() []byte {
	b := make([]byte, DefaultOffset+2*ChunkSize+3)
	for i := range b {
		b[i] = byte(i ^ i>>8)
	}
	return b
}

func writeTemp(t *testing.T, name string, b []byte) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.Nil(t, ioutil.WriteFile(file, b, 0644))
	return file
}

func TestReadDump(t *testing.T) {
	dump := testDump()
	file := writeTemp(t, "vram.bin", dump)

	tables := []struct {
		offset int64
		want   []byte
	}{
		{0, dump},
		{1, dump[1:]},
		{DefaultOffset, dump[DefaultOffset:]},
		{int64(len(dump)), []byte{}},
		{int64(len(dump)) + 1000, []byte{}},
	}

	for _, table := range tables {
		b, err := ReadDump(file, table.offset)
		require.Nil(t, err)
		assert.Equal(t, table.want, b, "offset %#x", table.offset)
	}
}

func TestReadDumpCompressed(t *testing.T) {
	dump := testDump()

	gz := new(bytes.Buffer)
	w := gzip.NewWriter(gz)
	_, err := w.Write(dump)
	require.Nil(t, err)
	require.Nil(t, w.Close())

	enc, err := zstd.NewWriter(nil)
	require.Nil(t, err)
	zst := enc.EncodeAll(dump, nil)
	require.Nil(t, enc.Close())

	tables := []struct {
		name string
		data []byte
	}{
		{"vram.bin.gz", gz.Bytes()},
		{"vram.bin.zst", zst},
		{"VRAM.BIN.GZ", gz.Bytes()},
		{"vram.zstd", zst},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			file := writeTemp(t, table.name, table.data)

			b, err := ReadDump(file, DefaultOffset)
			require.Nil(t, err)
			assert.Equal(t, dump[DefaultOffset:], b)

			b, err = ReadDump(file, int64(len(dump)))
			require.Nil(t, err)
			assert.Empty(t, b)
		})
	}
}

func TestReadDumpShort(t *testing.T) {
	file := writeTemp(t, "short.bin", []byte{0x1f})

	b, err := ReadDump(file, 0)
	require.Nil(t, err)
	assert.Equal(t, []byte{0x1f}, b)

	file = writeTemp(t, "empty.bin", nil)

	b, err = ReadDump(file, DefaultOffset)
	require.Nil(t, err)
	assert.Empty(t, b)
}

func TestReadDumpRawMagic(t *testing.T) {
	tables := []struct {
		name  string
		magic []byte
	}{
		{"gzip", []byte{0x1f, 0x8b, 0x00}},
		{"zstd", []byte{0x28, 0xb5, 0x2f, 0xfd}},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			dump := make([]byte, 2*ChunkSize)
			copy(dump, table.magic)
			file := writeTemp(t, "vram.bin", dump)

			b, err := ReadDump(file, 0)
			require.Nil(t, err)
			assert.Equal(t, dump, b)

			b, err = ReadDump(file, 1)
			require.Nil(t, err)
			assert.Equal(t, dump[1:], b)
		})
	}
}

func TestReadDumpErrors(t *testing.T) {
	_, err := ReadDump(filepath.Join(t.TempDir(), "missing.bin"), 0)
	assert.True(t, os.IsNotExist(err))

	file := writeTemp(t, "vram.bin", testDump())
	_, err = ReadDump(file, -1)
	assert.Equal(t, errNegativeOffset, err)
}
