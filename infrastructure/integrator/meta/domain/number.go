package metadomain

import (
	"bytes"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Number aceita valores numéricos enviados pela Graph API como string
// ("12.34") ou como número JSON.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}

	*n = Number(data)
	return nil
}

// Float converte o valor; valores ausentes ou inválidos viram 0.
func (n Number) Float(field string) float64 {
	if n == "" {
		return 0
	}

	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": string(n),
			"error": err.Error(),
		}).Debug("metadomain: valor numérico inválido, usando 0")
		return 0
	}

	if v < 0 {
		return 0
	}

	return v
}

func (n Number) Int(field string) int64 {
	return int64(n.Float(field))
}
