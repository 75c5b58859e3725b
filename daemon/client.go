package daemon

import "net"

// DefaultSocketPath is the on-device aconfigd listen address.
const DefaultSocketPath = "/dev/socket/aconfigd"

// ListStorage sends a ListStorageRequest{All: true} to the daemon at
// socketPath and returns the raw response payload framed the same way
// the request was sent. Interpreting the response bytes is the caller's
// responsibility (spec §1 non-goal: daemon protocol business logic).
func ListStorage(socketPath string) ([]byte, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	req := ListStorageRequest{All: true}
	if err := WriteFrame(conn, req.Encode()); err != nil {
		return nil, err
	}

	if unixConn, ok := conn.(*net.UnixConn); ok {
		if err := unixConn.CloseWrite(); err != nil {
			return nil, err
		}
	}

	return ReadFrame(conn)
}
