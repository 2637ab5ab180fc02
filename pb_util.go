package obf

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

// Deterministic output keeps map fields in a stable order so equal messages
// produce equal bytes within a single binary.
var hashMarshalOptions = proto.MarshalOptions{Deterministic: true}

// Marshals any proto for hashing and panics if it fails.
func mustMarshal[T proto.Message](pb T) []byte {
	bytes, err := hashMarshalOptions.Marshal(pb)
	if err != nil {
		panic(fmt.Sprintf("Failed to marshal proto: %v", err))
	}
	return bytes
}

// Proto adapts a protobuf message to Hashable by hashing its deterministic
// wire encoding. Unknown fields are part of the encoding.
type Proto[M proto.Message] struct {
	Msg M
}

// ProtoOf wraps msg as a Proto element.
func ProtoOf[M proto.Message](msg M) Proto[M] {
	return Proto[M]{Msg: msg}
}

func (p Proto[M]) HashBytes() []byte {
	return mustMarshal(p.Msg)
}
