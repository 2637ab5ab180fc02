package obf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	obf "github.com/JyotinderSingh/go-obf"
)

func TestIntHashBytesAreFixedWidth(t *testing.T) {
	assert.Len(t, obf.IntOf(int8(1)).HashBytes(), 8)
	assert.Len(t, obf.IntOf(uint64(1)).HashBytes(), 8)

	// Widening keeps equal values equal across integer types.
	assert.Equal(t, obf.IntOf(int8(-1)).HashBytes(), obf.IntOf(int64(-1)).HashBytes())
	assert.Equal(t, obf.IntOf(uint16(42)).HashBytes(), obf.IntOf(42).HashBytes())
	assert.NotEqual(t, obf.IntOf(41).HashBytes(), obf.IntOf(42).HashBytes())
}

func TestBytesElement(t *testing.T) {
	bf, err := obf.NewBasicFilter[obf.Bytes](0.01, 100)
	require.NoError(t, err)

	bf.Add(obf.Bytes("hello"))
	assert.True(t, bf.Contains(obf.Bytes([]byte("hello"))))
	assert.True(t, bf.Contains(obf.Bytes("hello")))

	// The empty element is a valid element.
	bf.Add(obf.Bytes{})
	assert.True(t, bf.Contains(obf.Bytes(nil)))
}

// Equal messages built separately hash the same.
func TestProtoElement(t *testing.T) {
	of, err := obf.NewOrdinalFilter[obf.Proto[*wrapperspb.StringValue]](0.01, 100)
	require.NoError(t, err)

	of.Add(obf.ProtoOf(wrapperspb.String("alice")))
	assert.True(t, of.Contains(obf.ProtoOf(wrapperspb.String("alice"))))
	assert.False(t, of.Contains(obf.ProtoOf(wrapperspb.String("mallory"))))
}

func TestProtoElementMapFieldsAreDeterministic(t *testing.T) {
	a, err := structpb.NewStruct(map[string]interface{}{"user": "alice", "id": 7, "admin": false})
	require.NoError(t, err)
	b, err := structpb.NewStruct(map[string]interface{}{"admin": false, "id": 7, "user": "alice"})
	require.NoError(t, err)

	assert.Equal(t, obf.ProtoOf(a).HashBytes(), obf.ProtoOf(b).HashBytes())

	bf, err := obf.NewBasicFilter[obf.Proto[*structpb.Struct]](0.01, 100)
	require.NoError(t, err)
	bf.Add(obf.ProtoOf(a))
	assert.True(t, bf.Contains(obf.ProtoOf(b)))
}
