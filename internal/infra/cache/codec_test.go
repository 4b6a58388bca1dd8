//go:build unit

package cache_test

import (
	"testing"

	"lms-api/internal/infra/cache"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedValue struct {
	Status  int
	Headers map[string]string
	Body    []byte
}

func TestNewCodec(t *testing.T) {
	tests := []struct {
		name    string
		codec   string
		wantErr bool
	}{
		{name: "empty defaults to json", codec: ""},
		{name: "json", codec: cache.CodecJSON},
		{name: "msgpack", codec: cache.CodecMsgpack},
		{name: "unknown", codec: "gob", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := cache.NewCodec(tt.codec)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, cache.ErrCodecNotFound)
				return
			}
			require.NoError(t, err)

			in := cachedValue{
				Status:  201,
				Headers: map[string]string{"Location": "/api/students/1"},
				Body:    []byte(`{"id":"1"}`),
			}
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out cachedValue
			require.NoError(t, c.Unmarshal(data, &out))
			if diff := cmp.Diff(in, out); diff != "" {
				t.Errorf("codec mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCodec_UnmarshalGarbage(t *testing.T) {
	for _, name := range []string{cache.CodecJSON, cache.CodecMsgpack} {
		c, err := cache.NewCodec(name)
		require.NoError(t, err)

		var out cachedValue
		assert.Error(t, c.Unmarshal([]byte{0xc1, 0x00}, &out), name)
	}
}
