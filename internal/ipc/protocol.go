package ipc

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// MessageType tags requests and responses
type MessageType int32

const (
	MessageTypeUnspecified MessageType = iota
	MessageTypeStatus
	MessageTypePointerPosition
	MessageTypeSetPointerPosition
	MessageTypeCurrentKeys
	MessageTypeKeysym
	MessageTypeUTF32
	MessageTypeError
)

var messageTypeNames = map[MessageType]string{
	MessageTypeUnspecified:        "UNSPECIFIED",
	MessageTypeStatus:             "STATUS",
	MessageTypePointerPosition:    "POINTER_POSITION",
	MessageTypeSetPointerPosition: "SET_POINTER_POSITION",
	MessageTypeCurrentKeys:        "CURRENT_KEYS",
	MessageTypeKeysym:             "KEYSYM",
	MessageTypeUTF32:              "UTF32",
	MessageTypeError:              "ERROR",
}

func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MessageType(%d)", int32(t))
}

// Request is one query sent to the daemon.
//
//	message Request {
//	  MessageType type = 1;
//	  uint32 key = 2;
//	  uint32 mods = 3;
//	  uint32 leds = 4;
//	  sint32 x = 5;
//	  sint32 y = 6;
//	}
type Request struct {
	Type MessageType
	Key  uint32
	Mods uint32
	Leds uint32
	X    int32
	Y    int32
}

// Response answers a Request with the same type, or MessageTypeError.
//
//	message Response {
//	  MessageType type = 1;
//	  sint32 x = 2;
//	  sint32 y = 3;
//	  repeated uint32 keys = 4 [packed = true];
//	  uint32 keysym = 5;
//	  string keysym_name = 6;
//	  uint32 utf32 = 7;
//	  string error = 8;
//	  string backend = 9;
//	}
type Response struct {
	Type       MessageType
	X          int32
	Y          int32
	Keys       []uint32
	Keysym     uint32
	KeysymName string
	UTF32      uint32
	Error      string
	Backend    string
}

var ErrMalformedMessage = errors.New("malformed message")

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendSint32(b []byte, num protowire.Number, v int32) []byte {
	return appendUint(b, num, protowire.EncodeZigZag(int64(v)))
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// Marshal encodes the request in protobuf wire format
func (r *Request) Marshal() []byte {
	var b []byte
	b = appendUint(b, 1, uint64(r.Type))
	b = appendUint(b, 2, uint64(r.Key))
	b = appendUint(b, 3, uint64(r.Mods))
	b = appendUint(b, 4, uint64(r.Leds))
	b = appendSint32(b, 5, r.X)
	b = appendSint32(b, 6, r.Y)
	return b
}

// Unmarshal decodes a request, skipping unknown fields
func (r *Request) Unmarshal(b []byte) error {
	*r = Request{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.VarintType {
			return skipField(num, typ, b)
		}
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		switch num {
		case 1:
			r.Type = MessageType(v)
		case 2:
			r.Key = uint32(v)
		case 3:
			r.Mods = uint32(v)
		case 4:
			r.Leds = uint32(v)
		case 5:
			r.X = int32(protowire.DecodeZigZag(v))
		case 6:
			r.Y = int32(protowire.DecodeZigZag(v))
		}
		return n, nil
	})
}

// Marshal encodes the response in protobuf wire format
func (r *Response) Marshal() []byte {
	var b []byte
	b = appendUint(b, 1, uint64(r.Type))
	b = appendSint32(b, 2, r.X)
	b = appendSint32(b, 3, r.Y)
	if len(r.Keys) > 0 {
		var packed []byte
		for _, k := range r.Keys {
			packed = protowire.AppendVarint(packed, uint64(k))
		}
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	b = appendUint(b, 5, uint64(r.Keysym))
	b = appendString(b, 6, r.KeysymName)
	b = appendUint(b, 7, uint64(r.UTF32))
	b = appendString(b, 8, r.Error)
	b = appendString(b, 9, r.Backend)
	return b
}

// Unmarshal decodes a response, skipping unknown fields. Keys are accepted
// packed or unpacked.
func (r *Response) Unmarshal(b []byte) error {
	*r = Response{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			switch num {
			case 1:
				r.Type = MessageType(v)
			case 2:
				r.X = int32(protowire.DecodeZigZag(v))
			case 3:
				r.Y = int32(protowire.DecodeZigZag(v))
			case 4:
				r.Keys = append(r.Keys, uint32(v))
			case 5:
				r.Keysym = uint32(v)
			case 7:
				r.UTF32 = uint32(v)
			}
			return n, nil

		case typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			switch num {
			case 4:
				for len(v) > 0 {
					k, m := protowire.ConsumeVarint(v)
					if m < 0 {
						return 0, protowire.ParseError(m)
					}
					r.Keys = append(r.Keys, uint32(k))
					v = v[m:]
				}
			case 6:
				r.KeysymName = string(v)
			case 8:
				r.Error = string(v)
			case 9:
				r.Backend = string(v)
			}
			return n, nil
		}
		return skipField(num, typ, b)
	})
}

func walkFields(b []byte, field func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformedMessage, protowire.ParseError(n))
		}
		b = b[n:]
		m, err := field(num, typ, b)
		if err != nil {
			return fmt.Errorf("%w: field %d: %v", ErrMalformedMessage, num, err)
		}
		b = b[m:]
	}
	return nil
}

func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

// NewErrorResponse wraps an error message
func NewErrorResponse(msg string) *Response {
	return &Response{Type: MessageTypeError, Error: msg}
}
