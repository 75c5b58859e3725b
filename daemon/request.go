package daemon

// requestTagListStorage identifies a ListStorageRequest payload; it plays
// the role of the oneof field tag a generated protobuf message would
// carry, kept deliberately minimal since generating the real
// aconfigd_protos stubs is out of scope here.
const requestTagListStorage byte = 0x01

// ListStorageRequest asks the daemon for every flag's current value,
// matching original_source's ProtoListStorageMessage{all: true}.
type ListStorageRequest struct {
	All bool
}

// Encode serializes r as [tag byte][all byte].
func (r ListStorageRequest) Encode() []byte {
	all := byte(0)
	if r.All {
		all = 1
	}

	return []byte{requestTagListStorage, all}
}

// DecodeListStorageRequest parses bytes produced by Encode.
func DecodeListStorageRequest(data []byte) (ListStorageRequest, bool) {
	if len(data) != 2 || data[0] != requestTagListStorage {
		return ListStorageRequest{}, false
	}

	return ListStorageRequest{All: data[1] != 0}, true
}
