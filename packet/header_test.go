package packet

import (
	"bytes"
	"testing"
)

func TestHeader(t *testing.T) {
	tests := []struct {
		desc   string
		header Header
		ser    []byte
	}{
		{
			desc:   "Single byte ID",
			header: Header{PacketID: IDLogin},
			ser:    []byte{0x01},
		},
		{
			desc:   "Two byte ID",
			header: Header{PacketID: IDRequestNetworkSettings},
			ser:    []byte{0xc1, 0x01},
		},
		{
			desc:   "Sub client IDs",
			header: Header{PacketID: IDText, SenderSubClient: 1, TargetSubClient: 2},
			ser:    []byte{0x89, 0x48},
		},
		{
			desc:   "All bits set",
			header: Header{PacketID: 0x3ff, SenderSubClient: 3, TargetSubClient: 3},
			ser:    []byte{0xff, 0x7f},
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := tt.header.Write(buf); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tt.ser) {
				t.Fatalf("got %x, want %x", buf.Bytes(), tt.ser)
			}

			var header Header
			if err := header.Read(buf); err != nil {
				t.Fatalf("Read: %v", err)
			}
			if header != tt.header {
				t.Errorf("got %+v, want %+v", header, tt.header)
			}
		})
	}
}

func TestHeaderInvertible(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	for id := uint32(0); id <= 0x3ff; id++ {
		for sender := byte(0); sender <= 3; sender++ {
			for target := byte(0); target <= 3; target++ {
				buf.Reset()
				header := Header{PacketID: id, SenderSubClient: sender, TargetSubClient: target}
				if err := header.Write(buf); err != nil {
					t.Fatalf("Write %+v: %v", header, err)
				}
				var decoded Header
				if err := decoded.Read(buf); err != nil {
					t.Fatalf("Read %+v: %v", header, err)
				}
				if decoded != header {
					t.Fatalf("got %+v, want %+v", decoded, header)
				}
			}
		}
	}
}

func TestHeaderReadMasksID(t *testing.T) {
	// 0x4801 has bit 14 set, which lies outside of both the ID and the sub client IDs.
	var header Header
	if err := header.Read(bytes.NewBuffer([]byte{0x81, 0x90, 0x01})); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if want := (Header{PacketID: 0x01, SenderSubClient: 2}); header != want {
		t.Errorf("got %+v, want %+v", header, want)
	}
}

func TestHeaderReadEmpty(t *testing.T) {
	var header Header
	if err := header.Read(bytes.NewBuffer(nil)); err == nil {
		t.Fatal("expected an error reading an empty header")
	}
}
