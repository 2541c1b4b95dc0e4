package abi

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestEncodeWord_Bool(t *testing.T) {
	got, err := EncodeWord(Bool(true))
	if err != nil {
		t.Fatalf("EncodeWord() error = %v", err)
	}
	if got[WordSize-1] != 1 || !bytes.Equal(got[:WordSize-1], make([]byte, WordSize-1)) {
		t.Errorf("EncodeWord(true) = %x, want a word with only the low byte set to 1", got)
	}

	got, err = EncodeWord(Bool(false))
	if err != nil {
		t.Fatalf("EncodeWord() error = %v", err)
	}
	if !bytes.Equal(got, make([]byte, WordSize)) {
		t.Errorf("EncodeWord(false) = %x, want all zero", got)
	}
}

func TestEncodeWord_Uint256(t *testing.T) {
	got, err := EncodeWord(Uint256(big.NewInt(1)))
	if err != nil {
		t.Fatalf("EncodeWord() error = %v", err)
	}
	want := make([]byte, WordSize)
	want[WordSize-1] = 1
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeWord(uint256(1)) = %x, want %x", got, want)
	}
}

func TestEncodeWord_Uint256Negative(t *testing.T) {
	_, err := EncodeWord(Uint256(big.NewInt(-1)))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("EncodeWord(uint256(-1)) error = %v, want ErrTypeMismatch", err)
	}
}

func TestEncodeWord_Int256Negative(t *testing.T) {
	got, err := EncodeWord(Int256(big.NewInt(-1)))
	if err != nil {
		t.Fatalf("EncodeWord() error = %v", err)
	}
	want := bytes.Repeat([]byte{0xFF}, WordSize)
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeWord(int256(-1)) = %x, want all-FF (two's complement)", got)
	}
}

func TestEncodeWord_Int256Positive(t *testing.T) {
	got, err := EncodeWord(Int256(big.NewInt(42)))
	if err != nil {
		t.Fatalf("EncodeWord() error = %v", err)
	}
	want := make([]byte, WordSize)
	want[WordSize-1] = 42
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeWord(int256(42)) = %x, want %x", got, want)
	}
}

func TestEncodeWord_Int256OutOfRange(t *testing.T) {
	tooBig := new(big.Int).Lsh(big.NewInt(1), 255) // == 2^255, exceeds int256Max
	_, err := EncodeWord(Int256(tooBig))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("EncodeWord(2^255) error = %v, want ErrTypeMismatch", err)
	}
}

func TestEncodeWord_Address(t *testing.T) {
	addr := common.HexToAddress("0x7099797d5e3139FeD0664BC1BCA0BcE1FB4Af5E9")
	got, err := EncodeWord(Address(addr))
	if err != nil {
		t.Fatalf("EncodeWord() error = %v", err)
	}
	if !bytes.Equal(got[:12], make([]byte, 12)) {
		t.Errorf("EncodeWord(address) high 12 bytes = %x, want zero", got[:12])
	}
	if !bytes.Equal(got[12:], addr.Bytes()) {
		t.Errorf("EncodeWord(address) low 20 bytes = %x, want %x", got[12:], addr.Bytes())
	}
}

func TestEncodeWord_FixedBytes(t *testing.T) {
	got, err := EncodeWord(FixedBytes(4, []byte{0xDE, 0xAD, 0xBE, 0xEF}))
	if err != nil {
		t.Fatalf("EncodeWord() error = %v", err)
	}
	want := make([]byte, WordSize)
	copy(want, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeWord(bytes4) = %x, want right-padded %x", got, want)
	}
}

func TestEncodeWord_FixedBytesTooLong(t *testing.T) {
	_, err := EncodeWord(FixedBytes(4, bytes.Repeat([]byte{0xAA}, 5)))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("EncodeWord() error = %v, want ErrTypeMismatch", err)
	}
}

func TestEncodeWord_RejectsDynamicTypes(t *testing.T) {
	_, err := EncodeWord(String("hello"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("EncodeWord(string) error = %v, want ErrUnsupportedType", err)
	}
}

func TestEncodeTopic_RejectsDynamicTypes(t *testing.T) {
	_, err := EncodeTopic(Bytes([]byte("hi")))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("EncodeTopic(bytes) error = %v, want ErrUnsupportedType", err)
	}
}

func TestEncodeTopic_MatchesStaticWord(t *testing.T) {
	v := Uint256(big.NewInt(7))
	topic, err := EncodeTopic(v)
	if err != nil {
		t.Fatalf("EncodeTopic() error = %v", err)
	}
	word, err := EncodeWord(v)
	if err != nil {
		t.Fatalf("EncodeWord() error = %v", err)
	}
	if !bytes.Equal(topic, word) {
		t.Errorf("EncodeTopic() = %x, want identical to EncodeWord() = %x", topic, word)
	}
}

func TestEncodeSequence_AllStatic(t *testing.T) {
	got, err := EncodeSequence([]Value{Uint256(big.NewInt(1)), Bool(true)})
	if err != nil {
		t.Fatalf("EncodeSequence() error = %v", err)
	}
	if len(got) != 2*WordSize {
		t.Fatalf("EncodeSequence() length = %d, want %d", len(got), 2*WordSize)
	}
}

func TestEncodeSequence_WithDynamicTail(t *testing.T) {
	got, err := EncodeSequence([]Value{Uint256(big.NewInt(5)), String("hi")})
	if err != nil {
		t.Fatalf("EncodeSequence() error = %v", err)
	}

	// head: word0 = 5, word1 = offset to tail (2 * 32 = 64)
	if len(got) < 4*WordSize {
		t.Fatalf("EncodeSequence() too short: %d bytes", len(got))
	}
	offsetWord := got[WordSize : 2*WordSize]
	wantOffset := make([]byte, WordSize)
	wantOffset[WordSize-1] = 64
	if !bytes.Equal(offsetWord, wantOffset) {
		t.Errorf("offset word = %x, want %x", offsetWord, wantOffset)
	}

	lengthWord := got[2*WordSize : 3*WordSize]
	wantLength := make([]byte, WordSize)
	wantLength[WordSize-1] = 2
	if !bytes.Equal(lengthWord, wantLength) {
		t.Errorf("length word = %x, want %x", lengthWord, wantLength)
	}

	dataWord := got[3*WordSize : 4*WordSize]
	wantData := make([]byte, WordSize)
	copy(wantData, []byte("hi"))
	if !bytes.Equal(dataWord, wantData) {
		t.Errorf("data word = %x, want %x", dataWord, wantData)
	}
}

func TestEncodeSequence_Empty(t *testing.T) {
	got, err := EncodeSequence(nil)
	if err != nil {
		t.Fatalf("EncodeSequence(nil) error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("EncodeSequence(nil) = %x, want empty", got)
	}
}
