package protocol

import (
	"bytes"
	"fmt"
	"testing"
)

// encode returns the bytes m is encoded to.
func encode(m Marshaler) []byte {
	buf := bytes.NewBuffer(nil)
	m.Marshal(NewWriter(buf))
	return buf.Bytes()
}

// decode decodes data into m and returns the bytes left unread.
func decode(data []byte, items ItemTable, m Marshaler) (rest []byte, err error) {
	buf := bytes.NewBuffer(data)
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	m.Marshal(NewReader(buf, items))
	return buf.Bytes(), nil
}

func TestUUIDIsWrittenRaw(t *testing.T) {
	var x uuidValue
	for i := range x.id {
		x.id[i] = byte(i)
	}

	got := encode(&x)
	want := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}

	var decoded uuidValue
	if _, err := decode(got, nil, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.id != x.id {
		t.Errorf("got %v, want %v", decoded.id, x.id)
	}
}

func TestUUIDShortInput(t *testing.T) {
	var x uuidValue
	if _, err := decode(make([]byte, 15), nil, &x); err == nil {
		t.Fatal("expected an error decoding 15 bytes")
	}
}
