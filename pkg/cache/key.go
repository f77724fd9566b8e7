package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const keySeparator = "_"

// Key gera uma chave determinística a partir do nome da operação e dos argumentos.
// Objetos são serializados em JSON, com as chaves de mapas ordenadas, de modo que
// chamadas semanticamente iguais colidem independente da identidade dos objetos.
func Key(prefix string, args ...any) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, prefix)

	for _, arg := range args {
		parts = append(parts, keyPart(arg))
	}

	return strings.Join(parts, keySeparator)
}

// TokenHash resume um token de acesso para compor chaves sem expor o segredo.
func TokenHash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

func keyPart(arg any) string {
	switch v := arg.(type) {
	case nil:
		return "null"
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v)
	}

	// O valor genérico intermediário ordena as chaves de mapas e de structs.
	raw, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return string(raw)
	}

	normalized, err := json.Marshal(generic)
	if err != nil {
		return string(raw)
	}

	return string(normalized)
}
