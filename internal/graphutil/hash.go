package graphutil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// CalculateHash returns a deterministic SHA-256 hex digest of obj.
// encoding/json emits map keys in sorted order, so two structurally equal
// values always produce the same digest regardless of insertion order.
func CalculateHash(obj any) string {
	data, err := json.Marshal(obj)
	if err != nil {
		// Values that cannot be marshalled still need a stable digest.
		data = []byte(fmt.Sprint(obj))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
