package packet

import (
	"bytes"
	"testing"
)

func TestDisconnect(t *testing.T) {
	tests := []struct {
		desc    string
		pk      *Disconnect
		ser     []byte
		decoded *Disconnect
	}{
		{
			desc:    "Hidden",
			pk:      &Disconnect{HideDisconnectionScreen: true},
			ser:     []byte{0x05, 0x01},
			decoded: &Disconnect{HideDisconnectionScreen: true},
		},
		{
			desc:    "Visible",
			pk:      &Disconnect{Message: "x"},
			ser:     []byte{0x05, 0x00, 0x01, 'x'},
			decoded: &Disconnect{Message: "x"},
		},
		{
			desc:    "Hidden with message",
			pk:      &Disconnect{HideDisconnectionScreen: true, Message: "dropped"},
			ser:     []byte{0x05, 0x01},
			decoded: &Disconnect{HideDisconnectionScreen: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			data := Encode(tt.pk)
			if !bytes.Equal(data, tt.ser) {
				t.Fatalf("got %x, want %x", data, tt.ser)
			}
			pk, _, err := Decode(data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := pk.(*Disconnect); *got != *tt.decoded {
				t.Errorf("got %+v, want %+v", got, tt.decoded)
			}
		})
	}
}
