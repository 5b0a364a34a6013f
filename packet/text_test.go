package packet

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/cooldogedev/bedrockwire/protocol"
)

func TestTextLayout(t *testing.T) {
	tests := []struct {
		desc    string
		pk      *Text
		ser     []byte
		decoded *Text
	}{
		{
			desc:    "Chat",
			pk:      &Text{TextType: protocol.TextTypeChat, SourceName: "a", Message: "b"},
			ser:     []byte{0x09, 0x01, 0x00, 0x01, 'a', 0x01, 'b', 0x00, 0x00},
			decoded: &Text{TextType: protocol.TextTypeChat, SourceName: "a", Message: "b"},
		},
		{
			desc:    "Raw drops source and parameters",
			pk:      &Text{TextType: protocol.TextTypeRaw, SourceName: "a", Message: "b", Parameters: []string{"c"}},
			ser:     []byte{0x09, 0x00, 0x00, 0x01, 'b', 0x00, 0x00},
			decoded: &Text{TextType: protocol.TextTypeRaw, Message: "b"},
		},
		{
			desc:    "Translation",
			pk:      &Text{TextType: protocol.TextTypeTranslation, NeedsTranslation: true, Message: "m", Parameters: []string{"p", "q"}},
			ser:     []byte{0x09, 0x02, 0x01, 0x01, 'm', 0x02, 0x01, 'p', 0x01, 'q', 0x00, 0x00},
			decoded: &Text{TextType: protocol.TextTypeTranslation, NeedsTranslation: true, Message: "m", Parameters: []string{"p", "q"}},
		},
		{
			desc:    "XUID and platform chat ID",
			pk:      &Text{TextType: protocol.TextTypeTip, Message: "t", XUID: "1", PlatformChatID: "2"},
			ser:     []byte{0x09, 0x05, 0x00, 0x01, 't', 0x01, '1', 0x01, '2'},
			decoded: &Text{TextType: protocol.TextTypeTip, Message: "t", XUID: "1", PlatformChatID: "2"},
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
			if !reflect.DeepEqual(pk, tt.decoded) {
				t.Errorf("got %+v, want %+v", pk, tt.decoded)
			}
		})
	}
}

func TestTextUnknownType(t *testing.T) {
	pk, _, err := Decode([]byte{0x09, 0x20, 0x00, 0x00, 0x00})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := &Text{TextType: protocol.TextTypeInvalid}
	if !reflect.DeepEqual(pk, want) {
		t.Errorf("got %+v, want %+v", pk, want)
	}
}
