package npy

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-inspector/internal/imaging"
)

// encode builds a version 1.0 .npy file by hand.
func encode(descr string, shape []int, data []byte) []byte {
	dims := make([]string, len(shape))
	for i, d := range shape {
		dims[i] = fmt.Sprint(d)
	}
	tuple := strings.Join(dims, ", ")
	if len(shape) == 1 {
		tuple += ","
	}
	header := fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': (%s), }", descr, tuple)
	pad := 64 - (10+len(header)+1)%64
	header += strings.Repeat(" ", pad%64) + "\n"

	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY")
	buf.Write([]byte{1, 0})
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	buf.WriteString(header)
	buf.Write(data)
	return buf.Bytes()
}

func TestDecodeGray(t *testing.T) {
	raw := encode("|u1", []int{2, 3}, []byte{1, 2, 3, 4, 5, 6})

	img, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 3, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, 1, img.Channels)
	assert.Equal(t, uint8(6), img.At(2, 1, 0))
}

func TestDecodeColor(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50, 60, 70, 80}
	raw := encode("|u1", []int{1, 2, 4}, data)

	img, err := Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Channels)
	assert.Equal(t, data, img.Pix)
	assert.Equal(t, uint8(70), img.At(1, 0, 2))
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name  string
		descr string
		shape []int
		data  []byte
	}{
		{"float_dtype", "<f8", []int{1, 1}, make([]byte, 8)},
		{"one_dim", "|u1", []int{4}, make([]byte, 4)},
		{"two_channels", "|u1", []int{1, 2, 2}, make([]byte, 4)},
		{"five_channels", "|u1", []int{1, 1, 5}, make([]byte, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(encode(tt.descr, tt.shape, tt.data)))
			assert.ErrorIs(t, err, imaging.ErrInvalidInput)
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not a numpy file"))
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.npy")
	require.NoError(t, os.WriteFile(path, encode("|u1", []int{1, 1, 3}, []byte{7, 8, 9}), 0o600))

	img, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []uint8{7, 8, 9}, img.Pix)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.npy"))
	assert.Error(t, err)
}
