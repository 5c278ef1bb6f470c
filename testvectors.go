package balloon

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// TestVector is a single pinned Balloon digest.
type TestVector struct {
	Name          string `json:"name"`
	Password      string `json:"password"`
	Salt          string `json:"salt"`
	SaltHex       string `json:"salt_hex,omitempty"` // Alternative hex-encoded salt
	SpaceCost     uint64 `json:"space_cost"`
	TimeCost      uint64 `json:"time_cost"`
	Delta         uint64 `json:"delta"`
	Primitive     string `json:"primitive,omitempty"` // Defaults to sha256
	LegacyCounter bool   `json:"legacy_counter,omitempty"`
	Expected      string `json:"expected"` // Hex-encoded expected digest
}

// TestVectorSuite contains all test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Source      string       `json:"source,omitempty"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// GetSalt returns the decoded salt bytes for a test vector.
// If SaltHex is set, it decodes from hex, otherwise uses Salt as UTF-8.
func (tv *TestVector) GetSalt() ([]byte, error) {
	if tv.SaltHex != "" {
		salt, err := hex.DecodeString(tv.SaltHex)
		if err != nil {
			return nil, fmt.Errorf("invalid salt hex: %w", err)
		}
		return salt, nil
	}
	return []byte(tv.Salt), nil
}

// GetConfig returns the hasher configuration described by the vector.
func (tv *TestVector) GetConfig() (Config, error) {
	p, ok := PrimitiveByName(tv.Primitive)
	if !ok {
		return Config{}, fmt.Errorf("unknown primitive: %s", tv.Primitive)
	}

	config := Config{
		SpaceCost: tv.SpaceCost,
		TimeCost:  tv.TimeCost,
		Delta:     tv.Delta,
		Primitive: p,
	}
	if tv.LegacyCounter {
		config.CounterMode = CounterPerStage
	}
	return config, nil
}

// GetExpected returns the decoded expected digest bytes.
func (tv *TestVector) GetExpected() ([]byte, error) {
	expected, err := hex.DecodeString(tv.Expected)
	if err != nil {
		return nil, fmt.Errorf("invalid expected digest: %w", err)
	}

	p, ok := PrimitiveByName(tv.Primitive)
	if !ok {
		return nil, fmt.Errorf("unknown primitive: %s", tv.Primitive)
	}
	if len(expected) != p.Size() {
		return nil, fmt.Errorf("expected digest must be %d bytes, got %d", p.Size(), len(expected))
	}
	return expected, nil
}

// Check computes the vector's digest and compares it with Expected.
// It returns the computed digest in hex.
func (tv *TestVector) Check() (string, bool, error) {
	config, err := tv.GetConfig()
	if err != nil {
		return "", false, err
	}
	salt, err := tv.GetSalt()
	if err != nil {
		return "", false, err
	}
	if _, err := tv.GetExpected(); err != nil {
		return "", false, err
	}

	h, err := New(config)
	if err != nil {
		return "", false, fmt.Errorf("vector %s: %w", tv.Name, err)
	}

	got := h.SumHex([]byte(tv.Password), salt)
	return got, compareTrace(tv.Name, tv.Expected, got), nil
}
