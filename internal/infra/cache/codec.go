package cache

import (
	"lms-api/internal/pkg/errs"

	"github.com/goccy/go-json"
	"github.com/shamaton/msgpack/v2"
)

const (
	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

var ErrCodecNotFound = errs.New("codec not found")

// Codec converts cached values to and from bytes.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var codecs = map[string]func() Codec{
	CodecJSON:    func() Codec { return JSONCodec{} },
	CodecMsgpack: func() Codec { return MsgpackCodec{} },
}

func NewCodec(name string) (Codec, error) {
	if name == "" {
		name = CodecJSON
	}
	newCodec, ok := codecs[name]
	if !ok {
		return nil, errs.Wrap(ErrCodecNotFound, name)
	}
	return newCodec(), nil
}

type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal json")
	}
	return data, nil
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errs.Wrap(err, "failed to unmarshal json")
	}
	return nil
}

type MsgpackCodec struct{}

func (MsgpackCodec) Marshal(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal msgpack")
	}
	return data, nil
}

func (MsgpackCodec) Unmarshal(data []byte, v any) error {
	if err := msgpack.Unmarshal(data, v); err != nil {
		return errs.Wrap(err, "failed to unmarshal msgpack")
	}
	return nil
}
