package types

// ViewingKey is a non-spending key that allows the engine to detect wallet transactions.
type ViewingKey struct {
	Account uint32
	Key     []byte
}

// Encode returns the bech32 representation of the key using the "<hrp>view" prefix.
func (k ViewingKey) Encode(hrp string) string {
	return encodeBech32(hrp+"view", k.Key)
}
